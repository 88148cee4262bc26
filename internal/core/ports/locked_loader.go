package ports

import "go.trai.ch/mend/internal/core/domain"

// LockedSetLoader reads the externally supplied locked-dependency document.
//
//go:generate go run go.uber.org/mock/mockgen -source=locked_loader.go -destination=mocks/mock_locked_loader.go -package=mocks
type LockedSetLoader interface {
	// Load reads the locked set from the given path. A missing file yields an
	// empty set, not an error; locking packages is optional.
	Load(path string) (domain.LockedSet, error)
}
