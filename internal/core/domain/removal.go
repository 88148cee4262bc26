package domain

// Origin distinguishes why an entry was removed: implicated by an install
// diagnostic (local) or declared unresolvable up front (locked).
type Origin int

const (
	OriginLocal Origin = iota
	OriginLocked
)

// String returns the origin name used in log output.
func (o Origin) String() string {
	if o == OriginLocked {
		return "locked"
	}
	return "local"
}

// Kind distinguishes the manifest map an entry was removed from.
type Kind int

const (
	KindDependency Kind = iota
	KindDevDependency
)

// String returns the kind name used in log output.
func (k Kind) String() string {
	if k == KindDevDependency {
		return "devDependency"
	}
	return "dependency"
}

// RemovalRecord accumulates every entry removed during a run. The four
// dependency buckets partition removals by origin and kind; Scripts holds
// removed script entries. Buckets are append-only for the run's lifetime.
type RemovalRecord struct {
	LocalDependencies     map[string]string
	LocalDevDependencies  map[string]string
	LockedDependencies    map[string]string
	LockedDevDependencies map[string]string
	Scripts               map[string]string
}

// NewRemovalRecord returns an empty record with all buckets allocated.
func NewRemovalRecord() *RemovalRecord {
	return &RemovalRecord{
		LocalDependencies:     make(map[string]string),
		LocalDevDependencies:  make(map[string]string),
		LockedDependencies:    make(map[string]string),
		LockedDevDependencies: make(map[string]string),
		Scripts:               make(map[string]string),
	}
}

// Bucket selects the dependency bucket for the given origin and kind.
func (r *RemovalRecord) Bucket(origin Origin, kind Kind) map[string]string {
	switch {
	case origin == OriginLocal && kind == KindDependency:
		return r.LocalDependencies
	case origin == OriginLocal && kind == KindDevDependency:
		return r.LocalDevDependencies
	case origin == OriginLocked && kind == KindDependency:
		return r.LockedDependencies
	default:
		return r.LockedDevDependencies
	}
}

// Total returns the number of removed dependency entries across all four
// buckets, excluding scripts.
func (r *RemovalRecord) Total() int {
	return len(r.LocalDependencies) + len(r.LocalDevDependencies) +
		len(r.LockedDependencies) + len(r.LockedDevDependencies)
}

// MergedDependencies returns the union of the local and locked dependency
// buckets, used for the combined summary export.
func (r *RemovalRecord) MergedDependencies() map[string]string {
	return mergeMaps(r.LocalDependencies, r.LockedDependencies)
}

// MergedDevDependencies returns the union of the local and locked
// devDependency buckets.
func (r *RemovalRecord) MergedDevDependencies() map[string]string {
	return mergeMaps(r.LocalDevDependencies, r.LockedDevDependencies)
}

func mergeMaps(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
