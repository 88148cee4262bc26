package domain

// LockedDependency describes one entry of the externally supplied locked set.
type LockedDependency struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// LockedSet maps a package name to its locked descriptor. The repair loop
// treats it as read-only; membership alone decides removal.
type LockedSet map[string]LockedDependency

// Contains reports whether name is part of the locked set.
func (s LockedSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}
