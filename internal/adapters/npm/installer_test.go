package npm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mend/internal/adapters/npm"
	"go.trai.ch/mend/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func TestInstaller_Success(t *testing.T) {
	installer := npm.NewInstaller([]string{"true"}, newLogger(t))
	outcome := installer.Install(context.Background(), t.TempDir())
	assert.True(t, outcome.OK)
	assert.Empty(t, outcome.Diagnostic)
}

func TestInstaller_FailureCapturesCombinedOutput(t *testing.T) {
	installer := npm.NewInstaller(
		[]string{"sh", "-c", `echo resolving; echo 'error Couldn'"'"'t find package "left-pad"' >&2; exit 1`},
		newLogger(t),
	)

	outcome := installer.Install(context.Background(), t.TempDir())

	assert.False(t, outcome.OK)
	assert.Contains(t, outcome.Diagnostic, "resolving")
	assert.Contains(t, outcome.Diagnostic, `Couldn't find package "left-pad"`)
}

func TestInstaller_MissingBinaryYieldsDiagnostic(t *testing.T) {
	installer := npm.NewInstaller([]string{"definitely-not-a-real-tool-xyz"}, newLogger(t))
	outcome := installer.Install(context.Background(), t.TempDir())
	assert.False(t, outcome.OK)
	assert.NotEmpty(t, outcome.Diagnostic)
}

func TestInstaller_EmptyCommand(t *testing.T) {
	installer := npm.NewInstaller(nil, newLogger(t))
	outcome := installer.Install(context.Background(), t.TempDir())
	assert.False(t, outcome.OK)
	assert.NotEmpty(t, outcome.Diagnostic)
}

func TestInstaller_RunsInGivenDirectory(t *testing.T) {
	dir := t.TempDir()
	installer := npm.NewInstaller([]string{"sh", "-c", `test "$(pwd)" = "` + dir + `"`}, newLogger(t))
	outcome := installer.Install(context.Background(), dir)
	assert.True(t, outcome.OK)
}

func TestDefaultCommand(t *testing.T) {
	assert.NotEmpty(t, npm.DefaultCommand())
}
