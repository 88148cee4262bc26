package ports

import "go.trai.ch/mend/internal/core/domain"

// ManifestStore loads and persists the project manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Load reads the manifest document at the given path.
	Load(path string) (*domain.Manifest, error)

	// Save overwrites the manifest document at the given path. The write is
	// synchronous; when Save returns nil the document is durable.
	Save(path string, m *domain.Manifest) error
}
