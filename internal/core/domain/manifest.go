// Package domain holds the core types for manifest repair.
package domain

import "encoding/json"

// Manifest is a mutable npm-style package manifest. Only the three mappings
// the repair loop touches are modeled as typed fields; every other top-level
// field of the document is carried through Extra untouched so a repaired
// manifest stays a valid project manifest.
type Manifest struct {
	Dependencies    map[string]string
	DevDependencies map[string]string
	Scripts         map[string]string

	// Extra holds the remaining top-level fields (name, version, license, ...)
	// in their original encoded form.
	Extra map[string]json.RawMessage
}

const (
	keyDependencies    = "dependencies"
	keyDevDependencies = "devDependencies"
	keyScripts         = "scripts"
)

// UnmarshalJSON decodes a package manifest, splitting the repairable mappings
// out of the raw document and keeping everything else in Extra.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw[keyDependencies]; ok {
		if err := json.Unmarshal(v, &m.Dependencies); err != nil {
			return err
		}
		delete(raw, keyDependencies)
	}
	if v, ok := raw[keyDevDependencies]; ok {
		if err := json.Unmarshal(v, &m.DevDependencies); err != nil {
			return err
		}
		delete(raw, keyDevDependencies)
	}
	if v, ok := raw[keyScripts]; ok {
		if err := json.Unmarshal(v, &m.Scripts); err != nil {
			return err
		}
		delete(raw, keyScripts)
	}

	m.Extra = raw
	return nil
}

// MarshalJSON re-assembles the full document. Mappings that were absent on
// load (nil) stay absent; mappings that were present but emptied by pruning
// are written as empty objects.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	raw := make(map[string]json.RawMessage, len(m.Extra)+3)
	for k, v := range m.Extra {
		raw[k] = v
	}

	for _, f := range []struct {
		key string
		val map[string]string
	}{
		{keyDependencies, m.Dependencies},
		{keyDevDependencies, m.DevDependencies},
		{keyScripts, m.Scripts},
	} {
		if f.val == nil {
			continue
		}
		enc, err := json.Marshal(f.val)
		if err != nil {
			return nil, err
		}
		raw[f.key] = enc
	}

	return json.Marshal(raw)
}

// EntryCount returns the number of entries across the dependency and
// devDependency maps. The retry budget is derived from this.
func (m *Manifest) EntryCount() int {
	return len(m.Dependencies) + len(m.DevDependencies)
}

// Clone returns a deep copy of the manifest's three mappings. Extra is shared;
// it is never mutated by the repair loop.
func (m *Manifest) Clone() *Manifest {
	return &Manifest{
		Dependencies:    cloneMap(m.Dependencies),
		DevDependencies: cloneMap(m.DevDependencies),
		Scripts:         cloneMap(m.Scripts),
		Extra:           m.Extra,
	}
}

func cloneMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
