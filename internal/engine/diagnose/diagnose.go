// Package diagnose classifies install-failure output into a package alias.
package diagnose

import (
	"net/url"
	"regexp"
	"strings"
)

// Matcher pairs one known diagnostic shape with its capture group. Matchers
// are evaluated in order; the first match wins.
type Matcher struct {
	Name string
	re   *regexp.Regexp
}

// Extract returns the raw (still percent-encoded) package reference captured
// from the diagnostic, or false if the shape does not match.
func (m Matcher) Extract(diagnostic string) (string, bool) {
	groups := m.re.FindStringSubmatch(diagnostic)
	if len(groups) < 2 {
		return "", false
	}
	return groups[1], true
}

// DefaultMatchers returns the ordered diagnostic shapes of the npm/yarn
// registry grammar. Order matters: the registry-URL shape is the most
// specific and must be tried first.
func DefaultMatchers() []Matcher {
	return []Matcher{
		{
			// e.g. https://registry.example.com/%40scope%2Fpkg: Not found
			Name: "registry-not-found-for-encoded-path",
			re:   regexp.MustCompile(`https?://[^\s"]+/([^/\s"]+?)"?: Not found`),
		},
		{
			// e.g. error Couldn't find package "left-pad"
			Name: "package-not-found-by-name",
			re:   regexp.MustCompile(`Couldn't find package "([^"]+)"`),
		},
		{
			// e.g. error Couldn't find any versions for "foo" that matches "^1.0.0"
			Name: "no-matching-version-for-name",
			re:   regexp.MustCompile(`Couldn't find any versions for "([^"]+)"`),
		},
	}
}

// Classifier turns a raw failure diagnostic into an optional alias.
type Classifier struct {
	matchers []Matcher
}

// New creates a Classifier with the default matcher list.
func New() *Classifier {
	return &Classifier{matchers: DefaultMatchers()}
}

// NewWithMatchers creates a Classifier with a custom ordered matcher list,
// letting the diagnostic grammar be swapped per package-manager ecosystem.
func NewWithMatchers(matchers []Matcher) *Classifier {
	return &Classifier{matchers: matchers}
}

// Classify returns the alias implicated by the diagnostic. The second return
// is false when no matcher fires: the failure cannot be attributed to a
// package and the caller must stop retrying.
func (c *Classifier) Classify(diagnostic string) (string, bool) {
	for _, m := range c.matchers {
		raw, ok := m.Extract(diagnostic)
		if !ok {
			continue
		}
		decoded, err := url.PathUnescape(raw)
		if err != nil {
			// Malformed escape in this capture; later shapes may still match.
			continue
		}
		if alias := aliasOf(decoded); alias != "" {
			return alias, true
		}
	}
	return "", false
}

// aliasOf reduces a decoded package reference to its removal key: the bare
// name for unscoped packages, the scope segment for "@scope/name".
func aliasOf(ref string) string {
	ref = strings.TrimSpace(ref)
	alias, _, _ := strings.Cut(ref, "/")
	return alias
}
