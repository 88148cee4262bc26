package diagnose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mend/internal/engine/diagnose"
)

func TestMatchers_Extract(t *testing.T) {
	matchers := diagnose.DefaultMatchers()
	require.Len(t, matchers, 3)
	byName := make(map[string]diagnose.Matcher, len(matchers))
	for _, m := range matchers {
		byName[m.Name] = m
	}

	tests := []struct {
		name       string
		matcher    string
		diagnostic string
		want       string
		wantMatch  bool
	}{
		{
			name:       "registry not found, encoded scoped path",
			matcher:    "registry-not-found-for-encoded-path",
			diagnostic: `https://registry.example.com/%40scope%2Fpkg: Not found`,
			want:       "%40scope%2Fpkg",
			wantMatch:  true,
		},
		{
			name:       "registry not found, quoted url",
			matcher:    "registry-not-found-for-encoded-path",
			diagnostic: `error An unexpected error occurred: "https://registry.yarnpkg.com/%40acme%2funpublished: Not found".`,
			want:       "%40acme%2funpublished",
			wantMatch:  true,
		},
		{
			name:       "registry not found, plain package",
			matcher:    "registry-not-found-for-encoded-path",
			diagnostic: `https://registry.yarnpkg.com/ghost-pkg: Not found`,
			want:       "ghost-pkg",
			wantMatch:  true,
		},
		{
			name:       "package not found by name",
			matcher:    "package-not-found-by-name",
			diagnostic: `error Couldn't find package "left-pad" required by "my-app"`,
			want:       "left-pad",
			wantMatch:  true,
		},
		{
			name:       "no matching version",
			matcher:    "no-matching-version-for-name",
			diagnostic: `error Couldn't find any versions for "flaky-lib" that matches "^9.0.0"`,
			want:       "flaky-lib",
			wantMatch:  true,
		},
		{
			name:       "unrelated text does not match",
			matcher:    "package-not-found-by-name",
			diagnostic: "ENOSPC: no space left on device",
			wantMatch:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := byName[tt.matcher]
			require.True(t, ok, "matcher %q not registered", tt.matcher)

			got, matched := m.Extract(tt.diagnostic)
			assert.Equal(t, tt.wantMatch, matched)
			if tt.wantMatch {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name       string
		diagnostic string
		wantAlias  string
		wantOK     bool
	}{
		{
			name:       "encoded scoped package yields scope alias",
			diagnostic: `https://registry.example.com/%40scope%2Fpkg: Not found`,
			wantAlias:  "@scope",
			wantOK:     true,
		},
		{
			name:       "unscoped package yields bare name",
			diagnostic: `error Couldn't find package "left-pad"`,
			wantAlias:  "left-pad",
			wantOK:     true,
		},
		{
			name:       "scoped package name yields scope alias",
			diagnostic: `error Couldn't find package "@acme/widgets"`,
			wantAlias:  "@acme",
			wantOK:     true,
		},
		{
			name:       "version mismatch yields name",
			diagnostic: `error Couldn't find any versions for "flaky-lib" that matches "^9.0.0"`,
			wantAlias:  "flaky-lib",
			wantOK:     true,
		},
		{
			name:       "registry shape wins over later shapes",
			diagnostic: `https://registry.example.com/first: Not found; also Couldn't find package "second"`,
			wantAlias:  "first",
			wantOK:     true,
		},
		{
			name:       "unrecognized diagnostic gives no signal",
			diagnostic: "EACCES: permission denied, mkdir '/usr/lib/node_modules'",
			wantOK:     false,
		},
		{
			name:       "empty diagnostic gives no signal",
			diagnostic: "",
			wantOK:     false,
		},
	}

	c := diagnose.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alias, ok := c.Classify(tt.diagnostic)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantAlias, alias)
		})
	}
}

func TestClassifier_CustomMatchers(t *testing.T) {
	c := diagnose.NewWithMatchers(nil)
	_, ok := c.Classify(`error Couldn't find package "left-pad"`)
	assert.False(t, ok, "classifier without matchers must return no signal")
}
