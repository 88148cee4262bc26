package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mend/internal/adapters/config"
	"go.trai.ch/mend/internal/core/domain"
)

func TestLoad_LockedSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locked.yaml")
	doc := `
"@acme/internal-lib":
  name: "@acme/internal-lib"
  version: 2.1.0
"@acme/secrets":
  version: 0.9.0
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	set, err := config.Load(path)
	require.NoError(t, err)

	assert.Len(t, set, 2)
	assert.Equal(t, domain.LockedDependency{Name: "@acme/internal-lib", Version: "2.1.0"}, set["@acme/internal-lib"])
	// A descriptor without a name inherits its map key.
	assert.Equal(t, domain.LockedDependency{Name: "@acme/secrets", Version: "0.9.0"}, set["@acme/secrets"])
}

func TestLoad_MissingFileYieldsEmptySet(t *testing.T) {
	set, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestLoad_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locked.yaml")
	require.NoError(t, os.WriteFile(path, []byte("\t: not yaml"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestFileLockedSetLoader_ImplementsPort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locked.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`lodash: {version: "4.17.21"}`), 0o644))

	loader := &config.FileLockedSetLoader{}
	set, err := loader.Load(path)
	require.NoError(t, err)
	assert.True(t, set.Contains("lodash"))
}
