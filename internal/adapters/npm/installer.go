// Package npm provides the install tool adapter.
package npm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.trai.ch/mend/internal/core/domain"
	"go.trai.ch/mend/internal/core/ports"
)

// DefaultCommand is the install invocation used when none is configured.
// Non-interactive mode keeps the tool from prompting and hanging the loop.
func DefaultCommand() []string {
	return []string{"yarn", "install", "--non-interactive"}
}

// Installer implements ports.Installer using os/exec.
type Installer struct {
	command []string
	logger  ports.Logger
}

// NewInstaller creates an Installer that runs the given command. The command
// is the full argv, e.g. ["yarn", "install", "--non-interactive"].
func NewInstaller(command []string, logger ports.Logger) *Installer {
	return &Installer{
		command: command,
		logger:  logger,
	}
}

// Install runs the install command with dir as the working directory and
// returns a tagged outcome. On failure the combined stdout/stderr is the
// diagnostic; the install tools interleave resolution errors across both
// streams, so they are captured into a single buffer.
func (i *Installer) Install(ctx context.Context, dir string) domain.InstallOutcome {
	if len(i.command) == 0 {
		return domain.InstallFailed(domain.ErrInstallCommandEmpty.Error())
	}

	name := i.command[0]
	args := i.command[1:]

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command is operator-configured
	cmd.Dir = dir

	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	if err := cmd.Run(); err != nil {
		exitCode := -1 // unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		i.logger.Warn(fmt.Sprintf("install command %q exited with code %d", name, exitCode))

		diagnostic := combined.String()
		if strings.TrimSpace(diagnostic) == "" {
			// The tool produced no output (e.g. binary not found); the exec
			// error text is the only signal available.
			diagnostic = err.Error()
		}
		return domain.InstallFailed(diagnostic)
	}

	return domain.Installed()
}
