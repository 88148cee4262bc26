// Package export writes the removal audit documents for a repair run.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/mend/internal/core/domain"
	"go.trai.ch/mend/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Document names written below the export directory.
const (
	FileLocalRemovals  = "removed-local.json"
	FileLockedRemovals = "removed-locked.json"
	FileScriptRemovals = "removed-scripts.json"
	FileSummary        = "summary.json"
)

// removalsDoc is the on-disk shape of a per-origin removal document.
type removalsDoc struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// scriptsDoc is the on-disk shape of the removed-scripts document.
type scriptsDoc struct {
	Scripts map[string]string `json:"scripts"`
}

// summaryDoc merges local and locked removals per kind alongside scripts.
type summaryDoc struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// Exporter implements ports.AuditSink writing indented JSON documents.
type Exporter struct {
	logger ports.Logger
}

// NewExporter creates an Exporter.
func NewExporter(logger ports.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Export writes the four removal documents below dir, creating the directory
// if needed. It runs unconditionally after every run: an aborted or exhausted
// run still produces a complete export of whatever was removed.
func (e *Exporter) Export(dir string, record *domain.RemovalRecord) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create export directory"), "dir", dir)
	}

	docs := map[string]any{
		FileLocalRemovals: removalsDoc{
			Dependencies:    record.LocalDependencies,
			DevDependencies: record.LocalDevDependencies,
		},
		FileLockedRemovals: removalsDoc{
			Dependencies:    record.LockedDependencies,
			DevDependencies: record.LockedDevDependencies,
		},
		FileScriptRemovals: scriptsDoc{
			Scripts: record.Scripts,
		},
		FileSummary: summaryDoc{
			Dependencies:    record.MergedDependencies(),
			DevDependencies: record.MergedDevDependencies(),
			Scripts:         record.Scripts,
		},
	}

	// The documents are independent; write them concurrently.
	var g errgroup.Group
	for name, doc := range docs {
		g.Go(func() error {
			return writeDoc(filepath.Join(dir, name), doc)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	e.logger.Info("removal audit exported to " + dir)
	return nil
}

func writeDoc(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal audit export")
	}
	data = append(data, '\n')

	//nolint:gosec // export documents are operator-facing reports
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", path)
	}
	return nil
}
