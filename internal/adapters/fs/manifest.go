// Package fs implements the filesystem-backed manifest store.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mend/internal/core/domain"
	"go.trai.ch/zerr"
)

// ManifestFilename is the manifest document name inside a project root.
const ManifestFilename = "package.json"

// ManifestStore implements ports.ManifestStore over plain files. It remembers
// the content hash of the last document written per path so repeated saves of
// an unchanged manifest skip the disk write.
type ManifestStore struct {
	mu   sync.Mutex
	sums map[string]uint64
}

// NewManifestStore creates a ManifestStore.
func NewManifestStore() *ManifestStore {
	return &ManifestStore{
		sums: make(map[string]uint64),
	}
}

// Load reads and decodes the manifest at path.
func (s *ManifestStore) Load(path string) (*domain.Manifest, error) {
	path = filepath.Clean(path)

	//nolint:gosec // path is provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	s.mu.Lock()
	s.sums[path] = xxhash.Sum64(data)
	s.mu.Unlock()

	return &m, nil
}

// Save overwrites the manifest at path. The write is synchronous: when Save
// returns nil the document on disk reflects the last completed prune.
func (s *ManifestStore) Save(path string, m *domain.Manifest) error {
	path = filepath.Clean(path)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}
	data = append(data, '\n')

	sum := xxhash.Sum64(data)
	s.mu.Lock()
	unchanged := s.sums[path] == sum
	s.mu.Unlock()
	if unchanged {
		return nil
	}

	//nolint:gosec // manifest is a project file, world-readable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}

	s.mu.Lock()
	s.sums[path] = sum
	s.mu.Unlock()

	return nil
}
