// Package config provides the locked-dependency set loader for mend.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mend/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileLockedSetLoader implements ports.LockedSetLoader using a YAML file.
type FileLockedSetLoader struct{}

// Load reads the locked set from the given path. A missing file yields an
// empty set; locking packages up front is optional.
func (l *FileLockedSetLoader) Load(path string) (domain.LockedSet, error) {
	return Load(path)
}

// DescriptorDTO is one locked-dependency entry in the configuration file.
type DescriptorDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Load reads a locked-dependency file and returns the domain set.
//
// The document is a mapping from package name to descriptor:
//
//	"@acme/internal-lib":
//	  name: "@acme/internal-lib"
//	  version: 2.1.0
//
// A descriptor with an empty name inherits its map key.
func Load(path string) (domain.LockedSet, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.LockedSet{}, nil
		}
		return nil, zerr.Wrap(err, domain.ErrLockedSetReadFailed.Error())
	}

	var raw map[string]DescriptorDTO
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockedSetParseFailed.Error())
	}

	set := make(domain.LockedSet, len(raw))
	for name, dto := range raw {
		if dto.Name == "" {
			dto.Name = name
		}
		set[name] = domain.LockedDependency{
			Name:    dto.Name,
			Version: dto.Version,
		}
	}

	return set, nil
}
