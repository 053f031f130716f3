//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/test/domain/entitybuilders"
)

func TestDependencySet(t *testing.T) {
	t.Parallel()

	t.Run("should ignore empty names", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewDependencySet("a", "")

		// when
		set.Add("")

		// then
		assert.Equal(t, 1, set.Len())
		assert.True(t, set.Contains("a"))
	})

	t.Run("should return sorted names and never nil", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewDependencySet("zeta", "alpha", "mu")

		// when
		sorted := set.Sorted()
		empty := entities.NewDependencySet().Sorted()

		// then
		assert.Equal(t, []string{"alpha", "mu", "zeta"}, sorted)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("should compute the difference without touching either operand", func(t *testing.T) {
		t.Parallel()

		// given
		left := entities.NewDependencySet("a", "b", "c")
		right := entities.NewDependencySet("b", "d")

		// when
		diff := left.Difference(right)

		// then
		assert.Equal(t, []string{"a", "c"}, diff.Sorted())
		assert.Equal(t, 3, left.Len())
		assert.Equal(t, 2, right.Len())
	})
}

func TestNewDependencyDelta(t *testing.T) {
	t.Parallel()

	before := entities.NewDependencySet("foo", "bar", "shared")
	after := entities.NewDependencySet("baz", "shared")

	t.Run("should compute added and removed names for a modification", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewChangeRecordBuilder().BuildChangeRecord()

		// when
		delta := entities.NewDependencyDelta(record, before, after)

		// then
		assert.Equal(t, []string{"baz"}, delta.NewDeps.Sorted())
		assert.Equal(t, []string{"bar", "foo"}, delta.RemovedDeps.Sorted())
		for name := range delta.NewDeps {
			assert.False(t, delta.RemovedDeps.Contains(name))
		}
	})

	t.Run("should never remove anything for an added file", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewChangeRecordBuilder().WithStatus(entities.StatusAdded).BuildChangeRecord()

		// when
		delta := entities.NewDependencyDelta(record, before, after)

		// then
		assert.Equal(t, []string{"baz", "shared"}, delta.NewDeps.Sorted())
		assert.Empty(t, delta.RemovedDeps.Sorted())
	})

	t.Run("should never add anything for a deleted file", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewChangeRecordBuilder().WithStatus(entities.StatusDeleted).BuildChangeRecord()

		// when
		delta := entities.NewDependencyDelta(record, before, after)

		// then
		assert.Empty(t, delta.NewDeps.Sorted())
		assert.Equal(t, []string{"bar", "foo", "shared"}, delta.RemovedDeps.Sorted())
	})

	t.Run("should carry both filenames for a rename", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewChangeRecordBuilder().
			WithRenameFrom("old_requirements.txt").
			BuildChangeRecord()
		same := entities.NewDependencySet("foo")

		// when
		delta := entities.NewDependencyDelta(record, same, same)

		// then
		assert.True(t, delta.IsEmpty())
		assert.Equal(t, entities.StatusRenamed, delta.Status)
		assert.Equal(t, "old_requirements.txt", delta.OldFilename)
		assert.Equal(t, "requirements.txt", delta.Filename)
		assert.Equal(t, record, delta.Record())
	})

	t.Run("should accept nil snapshots", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewChangeRecordBuilder().BuildChangeRecord()

		// when
		delta := entities.NewDependencyDelta(record, nil, nil)

		// then
		assert.True(t, delta.IsEmpty())
	})
}
