// Package app implements the application layer for mend.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/mend/internal/adapters/fs"
	"go.trai.ch/mend/internal/core/domain"
	"go.trai.ch/mend/internal/core/ports"
	"go.trai.ch/mend/internal/engine/repair"
	"go.trai.ch/zerr"
)

// App represents the main application logic: load the manifest, strip locked
// packages, drive the retry loop, and always flush the audit export.
type App struct {
	manifests  ports.ManifestStore
	controller *repair.Controller
	sink       ports.AuditSink
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	manifests ports.ManifestStore,
	controller *repair.Controller,
	sink ports.AuditSink,
	logger ports.Logger,
) *App {
	return &App{
		manifests:  manifests,
		controller: controller,
		sink:       sink,
		logger:     logger,
	}
}

// RepairRequest carries the three plain inputs of a repair run.
type RepairRequest struct {
	// ProjectRoot is the directory holding the manifest; the install tool
	// runs with it as the working directory.
	ProjectRoot string
	// Locked is the read-only set of packages removed before any attempt.
	Locked domain.LockedSet
	// ExportDir receives the removal audit documents.
	ExportDir string
}

// RepairReport describes a finished run.
type RepairReport struct {
	Result repair.Result
	Record *domain.RemovalRecord
}

// Repair executes one repair run. The audit export runs on every terminal
// path; a report is returned even when the run itself failed, so callers can
// render what was removed before the failure.
func (a *App) Repair(ctx context.Context, req RepairRequest) (*RepairReport, error) {
	manifestPath := filepath.Join(req.ProjectRoot, fs.ManifestFilename)

	m, err := a.manifests.Load(manifestPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	rec := domain.NewRemovalRecord()
	report := &RepairReport{Record: rec}

	// Pre-filter: locked packages and install-time lifecycle scripts never
	// survive to the first attempt.
	removed := repair.PruneLocked(m, req.Locked, rec)
	removed += repair.PruneInstallScripts(m, rec)
	if removed > 0 {
		a.logger.Info(fmt.Sprintf("pre-filter removed %d entrie(s)", removed))
		if err := a.manifests.Save(manifestPath, m); err != nil {
			return report, a.finish(req.ExportDir, rec, zerr.Wrap(err, "failed to persist pre-filtered manifest"))
		}
	}

	res, runErr := a.controller.Run(ctx, req.ProjectRoot, manifestPath, m, rec)
	report.Result = res

	return report, a.finish(req.ExportDir, rec, runErr)
}

// finish flushes the audit export exactly once and joins a sink failure with
// the run error so neither is lost.
func (a *App) finish(exportDir string, rec *domain.RemovalRecord, runErr error) error {
	if err := a.sink.Export(exportDir, rec); err != nil {
		return errors.Join(runErr, zerr.Wrap(err, "audit export failed"))
	}
	return runErr
}
