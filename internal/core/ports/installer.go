// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mend/internal/core/domain"
)

// Installer runs the external install tool against a project directory.
//
// The call blocks until the tool exits; there is no internal timeout. The
// returned outcome is tagged rather than an error so the retry controller
// stays decoupled from any one tool's diagnostic grammar.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install runs the install command with dir as the working directory.
	Install(ctx context.Context, dir string) domain.InstallOutcome
}
