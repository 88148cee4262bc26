package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mend/internal/core/domain"
)

func TestRemovalRecord_BucketRouting(t *testing.T) {
	rec := domain.NewRemovalRecord()

	rec.Bucket(domain.OriginLocal, domain.KindDependency)["a"] = "1"
	rec.Bucket(domain.OriginLocal, domain.KindDevDependency)["b"] = "2"
	rec.Bucket(domain.OriginLocked, domain.KindDependency)["c"] = "3"
	rec.Bucket(domain.OriginLocked, domain.KindDevDependency)["d"] = "4"

	assert.Equal(t, map[string]string{"a": "1"}, rec.LocalDependencies)
	assert.Equal(t, map[string]string{"b": "2"}, rec.LocalDevDependencies)
	assert.Equal(t, map[string]string{"c": "3"}, rec.LockedDependencies)
	assert.Equal(t, map[string]string{"d": "4"}, rec.LockedDevDependencies)
	assert.Equal(t, 4, rec.Total())
}

func TestRemovalRecord_MergedViews(t *testing.T) {
	rec := domain.NewRemovalRecord()
	rec.LocalDependencies["a"] = "1"
	rec.LockedDependencies["b"] = "2"
	rec.LocalDevDependencies["c"] = "3"
	rec.LockedDevDependencies["d"] = "4"

	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, rec.MergedDependencies())
	assert.Equal(t, map[string]string{"c": "3", "d": "4"}, rec.MergedDevDependencies())
}

func TestOriginAndKindStrings(t *testing.T) {
	assert.Equal(t, "local", domain.OriginLocal.String())
	assert.Equal(t, "locked", domain.OriginLocked.String())
	assert.Equal(t, "dependency", domain.KindDependency.String())
	assert.Equal(t, "devDependency", domain.KindDevDependency.String())
}

func TestLockedSet_Contains(t *testing.T) {
	set := domain.LockedSet{
		"@acme/internal-lib": {Name: "@acme/internal-lib", Version: "2.1.0"},
	}
	assert.True(t, set.Contains("@acme/internal-lib"))
	assert.False(t, set.Contains("lodash"))
}
