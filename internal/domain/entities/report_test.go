//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

func TestReport(t *testing.T) {
	t.Parallel()

	t.Run("should list languages sorted and keep discovery order within one", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewReport("main", "feature")

		// when
		report.Add(entities.DependencyDelta{Filename: "web/package.json", Language: "javascript"})
		report.Add(entities.DependencyDelta{Filename: "requirements.txt", Language: "python"})
		report.Add(entities.DependencyDelta{Filename: "api/package.json", Language: "javascript"})

		// then
		assert.Equal(t, []string{"javascript", "python"}, report.Languages())
		deltas := report.Deltas("javascript")
		assert.Len(t, deltas, 2)
		assert.Equal(t, "web/package.json", deltas[0].Filename)
		assert.Equal(t, "api/package.json", deltas[1].Filename)
		assert.Equal(t, 3, report.FileCount())
		assert.False(t, report.IsEmpty())
	})

	t.Run("should be empty when nothing was added", func(t *testing.T) {
		t.Parallel()

		// given
		report := entities.NewReport("main", "feature")

		// then
		assert.True(t, report.IsEmpty())
		assert.Empty(t, report.Languages())
		assert.Nil(t, report.Deltas("go"))
	})
}
