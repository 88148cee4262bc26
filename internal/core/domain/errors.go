package domain

import "go.trai.ch/zerr"

var (
	// ErrUnclassifiableFailure is returned when an install failure matches none
	// of the known diagnostic shapes and cannot be attributed to a package.
	ErrUnclassifiableFailure = zerr.New("install failure diagnostic is unclassifiable")

	// ErrRetryBudgetExhausted is returned when the retry counter reaches the
	// budget without a successful install.
	ErrRetryBudgetExhausted = zerr.New("retry budget exhausted")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestWriteFailed is returned when persisting the manifest fails.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrLockedSetReadFailed is returned when the locked-dependency file cannot be read.
	ErrLockedSetReadFailed = zerr.New("failed to read locked dependency file")

	// ErrLockedSetParseFailed is returned when the locked-dependency file cannot be parsed.
	ErrLockedSetParseFailed = zerr.New("failed to parse locked dependency file")

	// ErrExportWriteFailed is returned when writing an audit export document fails.
	ErrExportWriteFailed = zerr.New("failed to write audit export")

	// ErrInstallCommandEmpty is returned when no install command is configured.
	ErrInstallCommandEmpty = zerr.New("install command is empty")
)
