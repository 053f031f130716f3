//go:build unit

package dart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdiff/internal/infrastructure/repositories/dart"
)

func TestPubspecParserRepository_Parse(t *testing.T) {
	t.Parallel()

	t.Run("should read dependencies and dev_dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		parser := dart.NewParserRepository()
		content := `name: app
environment:
  sdk: ">=3.0.0 <4.0.0"
dependencies:
  flutter:
    sdk: flutter
  http: ^1.2.0
dev_dependencies:
  flutter_test:
    sdk: flutter
`

		// when
		deps, err := parser.Parse("pubspec.yaml", content)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"flutter", "flutter_test", "http"}, deps.Sorted())
	})

	t.Run("should return error for malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		parser := dart.NewParserRepository()

		// when
		_, err := parser.Parse("pubspec.yaml", "dependencies: [unclosed")

		// then
		require.Error(t, err)
	})
}
