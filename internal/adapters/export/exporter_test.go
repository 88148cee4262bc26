package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mend/internal/adapters/export"
	"go.trai.ch/mend/internal/core/domain"
	"go.trai.ch/mend/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newExporter(t *testing.T) *export.Exporter {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return export.NewExporter(log)
}

func readDoc(t *testing.T, path string) map[string]map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestExporter_WritesAllDocuments(t *testing.T) {
	rec := domain.NewRemovalRecord()
	rec.LocalDependencies["left-pad"] = "1.0.0"
	rec.LockedDependencies["@acme/internal-lib"] = "2.1.0"
	rec.LocalDevDependencies["jest"] = "29.0.0"
	rec.Scripts["postinstall"] = "node setup.js"

	// The directory does not exist yet; Export must create it.
	dir := filepath.Join(t.TempDir(), "report", "run-1")
	require.NoError(t, newExporter(t).Export(dir, rec))

	local := readDoc(t, filepath.Join(dir, export.FileLocalRemovals))
	assert.Equal(t, map[string]string{"left-pad": "1.0.0"}, local["dependencies"])
	assert.Equal(t, map[string]string{"jest": "29.0.0"}, local["devDependencies"])

	locked := readDoc(t, filepath.Join(dir, export.FileLockedRemovals))
	assert.Equal(t, map[string]string{"@acme/internal-lib": "2.1.0"}, locked["dependencies"])
	assert.Empty(t, locked["devDependencies"])

	scripts := readDoc(t, filepath.Join(dir, export.FileScriptRemovals))
	assert.Equal(t, map[string]string{"postinstall": "node setup.js"}, scripts["scripts"])

	summary := readDoc(t, filepath.Join(dir, export.FileSummary))
	assert.Equal(t, map[string]string{
		"left-pad":           "1.0.0",
		"@acme/internal-lib": "2.1.0",
	}, summary["dependencies"])
	assert.Equal(t, map[string]string{"jest": "29.0.0"}, summary["devDependencies"])
	assert.Equal(t, map[string]string{"postinstall": "node setup.js"}, summary["scripts"])
}

func TestExporter_EmptyRecordStillExports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, newExporter(t).Export(dir, domain.NewRemovalRecord()))

	for _, name := range []string{
		export.FileLocalRemovals,
		export.FileLockedRemovals,
		export.FileScriptRemovals,
		export.FileSummary,
	} {
		doc := readDoc(t, filepath.Join(dir, name))
		for key, bucket := range doc {
			assert.Empty(t, bucket, "bucket %q in %s must be empty", key, name)
		}
	}
}

func TestExporter_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "taken")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// A regular file where the export directory should go.
	err := newExporter(t).Export(blocker, domain.NewRemovalRecord())
	assert.Error(t, err)
}
