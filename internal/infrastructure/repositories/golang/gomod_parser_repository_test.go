//go:build unit

package golang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdiff/internal/infrastructure/repositories/golang"
)

func TestGoModParserRepository_Parse(t *testing.T) {
	t.Parallel()

	t.Run("should return direct and indirect requirements", func(t *testing.T) {
		t.Parallel()

		// given
		parser := golang.NewParserRepository()
		content := `module example.com/app

go 1.22

require github.com/spf13/cobra v1.10.2

require (
	github.com/sirupsen/logrus v1.9.4
	golang.org/x/sys v0.42.0 // indirect
)

replace github.com/sirupsen/logrus => ../logrus
`

		// when
		deps, err := parser.Parse("go.mod", content)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"github.com/sirupsen/logrus",
			"github.com/spf13/cobra",
			"golang.org/x/sys",
		}, deps.Sorted())
	})

	t.Run("should return error for malformed go.mod", func(t *testing.T) {
		t.Parallel()

		// given
		parser := golang.NewParserRepository()

		// when
		_, err := parser.Parse("go.mod", "require (\n\tgithub.com/foo\n")

		// then
		require.Error(t, err)
	})

	t.Run("should support go.mod but not go.sum", func(t *testing.T) {
		t.Parallel()

		// given
		parser := golang.NewParserRepository()

		// then
		assert.True(t, parser.Supports("tools/go.mod"))
		assert.False(t, parser.Supports("go.sum"))
	})
}
