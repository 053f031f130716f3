//go:build unit

package python_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdiff/internal/infrastructure/repositories/python"
)

func TestTOMLParserRepository_Parse(t *testing.T) {
	t.Parallel()

	t.Run("should read PEP 621 dependencies and strip extras and markers", func(t *testing.T) {
		t.Parallel()

		// given
		parser := python.NewTOMLParserRepository()
		content := `
[project]
name = "demo"
dependencies = [
  "requests[socks]>=2.31; python_version >= '3.8'",
  "click",
  "rich (>=13)",
]

[project.optional-dependencies]
test = ["pytest==8.0"]
`

		// when
		deps, err := parser.Parse("pyproject.toml", content)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"click", "pytest", "requests", "rich"}, deps.Sorted())
	})

	t.Run("should read Poetry tables without the python constraint", func(t *testing.T) {
		t.Parallel()

		// given
		parser := python.NewTOMLParserRepository()
		content := `
[tool.poetry.dependencies]
python = "^3.11"
django = "^5.0"

[tool.poetry.group.dev.dependencies]
black = "^24.0"
`

		// when
		deps, err := parser.Parse("backend/pyproject.toml", content)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"black", "django"}, deps.Sorted())
	})

	t.Run("should read Pipfile packages", func(t *testing.T) {
		t.Parallel()

		// given
		parser := python.NewTOMLParserRepository()
		content := `
[packages]
flask = "*"

[dev-packages]
pytest = ">=8"

[requires]
python_version = "3.12"
`

		// when
		deps, err := parser.Parse("Pipfile", content)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"flask", "pytest"}, deps.Sorted())
	})

	t.Run("should return error for malformed TOML", func(t *testing.T) {
		t.Parallel()

		// given
		parser := python.NewTOMLParserRepository()

		// when
		deps, err := parser.Parse("pyproject.toml", "[project\nname = ")

		// then
		require.Error(t, err)
		assert.Equal(t, 0, deps.Len())
	})

	t.Run("should not support lock files", func(t *testing.T) {
		t.Parallel()

		// given
		parser := python.NewTOMLParserRepository()

		// then
		assert.False(t, parser.Supports("Pipfile.lock"))
		assert.False(t, parser.Supports("poetry.lock"))
		assert.True(t, parser.Supports("apps/web/Pipfile"))
	})
}
