// Package repair implements manifest pruning and the install retry loop.
package repair

import (
	"strings"

	"go.trai.ch/mend/internal/core/domain"
)

// Predicate decides whether a manifest entry name gets removed.
type Predicate func(name string) bool

// AliasPredicate matches an entry that is the alias itself, or one living
// under the alias as a path prefix. The two conditions are checked
// independently: alias "foo" removes "foo" and "foo/bar" but never "foobar".
func AliasPredicate(alias string) Predicate {
	prefix := alias + "/"
	return func(name string) bool {
		if name == alias {
			return true
		}
		return strings.HasPrefix(name, prefix)
	}
}

// LockedPredicate matches any entry that is a member of the locked set.
func LockedPredicate(set domain.LockedSet) Predicate {
	return set.Contains
}

// installHooks are the npm lifecycle scripts that execute during an install.
var installHooks = []string{"preinstall", "install", "postinstall", "prepare"}

// InstallHookPredicate matches the lifecycle scripts npm runs as part of an
// install attempt.
func InstallHookPredicate() Predicate {
	return func(name string) bool {
		for _, hook := range installHooks {
			if name == hook {
				return true
			}
		}
		return false
	}
}

// Prune moves every entry of entries satisfying pred into bucket and returns
// how many were moved. A nil entries map is a no-op. Pruning is idempotent:
// a removed entry is gone from the map and cannot be moved twice.
func Prune(entries map[string]string, pred Predicate, bucket map[string]string) int {
	removed := 0
	for name, version := range entries {
		if !pred(name) {
			continue
		}
		bucket[name] = version
		delete(entries, name)
		removed++
	}
	return removed
}

// PruneAlias removes every alias-matching entry from both dependency maps,
// recording them under the local origin. Returns the number of entries removed.
func PruneAlias(m *domain.Manifest, alias string, rec *domain.RemovalRecord) int {
	pred := AliasPredicate(alias)
	n := Prune(m.Dependencies, pred, rec.Bucket(domain.OriginLocal, domain.KindDependency))
	n += Prune(m.DevDependencies, pred, rec.Bucket(domain.OriginLocal, domain.KindDevDependency))
	return n
}

// PruneLocked removes every locked-set member from both dependency maps,
// recording them under the locked origin. Returns the number of entries removed.
func PruneLocked(m *domain.Manifest, set domain.LockedSet, rec *domain.RemovalRecord) int {
	pred := LockedPredicate(set)
	n := Prune(m.Dependencies, pred, rec.Bucket(domain.OriginLocked, domain.KindDependency))
	n += Prune(m.DevDependencies, pred, rec.Bucket(domain.OriginLocked, domain.KindDevDependency))
	return n
}

// PruneInstallScripts removes the lifecycle install hooks from the scripts
// map. They run during every install attempt and can fail for reasons
// unrelated to dependency resolution, which would poison classification.
func PruneInstallScripts(m *domain.Manifest, rec *domain.RemovalRecord) int {
	return Prune(m.Scripts, InstallHookPredicate(), rec.Scripts)
}
