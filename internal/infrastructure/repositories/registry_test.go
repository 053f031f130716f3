//go:build unit

package repositories_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	infraRepos "github.com/rios0rios0/depdiff/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/depdiff/test/infrastructure/repositorydoubles"
)

func TestParserRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should pick the first parser supporting the file", func(t *testing.T) {
		t.Parallel()

		// given
		specific := &doubles.SpyParserRepository{ParserName: "specific", Suffix: "composer.json"}
		generic := &doubles.SpyParserRepository{ParserName: "generic", Suffix: ".json"}
		reg := infraRepos.NewParserRegistry()
		reg.Register(specific)
		reg.Register(generic)

		// when
		forComposer := reg.For("composer.json")
		forPackage := reg.For("package.json")
		forUnknown := reg.For("Gemfile")

		// then
		assert.Equal(t, "specific", forComposer.Name())
		assert.Equal(t, "generic", forPackage.Name())
		assert.Nil(t, forUnknown)
		assert.Equal(t, []string{"specific", "generic"}, reg.Names())
	})

	t.Run("should return an empty set when the parser fails", func(t *testing.T) {
		t.Parallel()

		// given
		failing := &doubles.SpyParserRepository{
			ParserName: "failing",
			Suffix:     ".json",
			Result:     entities.NewDependencySet("partial"),
			ParseErr:   errors.New("boom"),
		}
		reg := infraRepos.NewParserRegistry()
		reg.Register(failing)

		// when
		deps := reg.Parse("package.json", "{")

		// then
		assert.Equal(t, 0, deps.Len())
		assert.Equal(t, []string{"package.json"}, failing.ParsedFiles)
	})

	t.Run("should return an empty set for unsupported manifests", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewParserRegistry()

		// when
		deps := reg.Parse("Gemfile", "gem 'rails'")

		// then
		require.NotNil(t, deps)
		assert.Equal(t, 0, deps.Len())
	})

	t.Run("should route every supported manifest in the default registry", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewDefaultParserRegistry()

		// then
		assert.Equal(t, "requirements", reg.For("requirements.txt").Name())
		assert.Equal(t, "composer", reg.For("composer.json").Name())
		assert.Equal(t, "json", reg.For("package.json").Name())
		assert.Equal(t, "gomod", reg.For("go.mod").Name())
		assert.Equal(t, "cargo", reg.For("Cargo.toml").Name())
		assert.Equal(t, "pubspec", reg.For("pubspec.yaml").Name())
		assert.Equal(t, "terraform", reg.For(".terraform.lock.hcl").Name())
		assert.Equal(t, "python-toml", reg.For("pyproject.toml").Name())
		assert.Equal(t, "nuget-lock", reg.For("packages.lock.json").Name())
		assert.Nil(t, reg.For("Gemfile.lock"))
	})

	t.Run("should not report target frameworks of a NuGet lock file as packages", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewDefaultParserRegistry()
		content := `{"version": 1, "dependencies": {"net8.0": {"Newtonsoft.Json": {"resolved": "13.0.3"}}}}`

		// when
		deps := reg.Parse("packages.lock.json", content)

		// then
		assert.Equal(t, []string{"Newtonsoft.Json"}, deps.Sorted())
	})
}

func TestVCSRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should build the backend bound to the repository directory", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewDefaultVCSRegistry()

		// when
		cli, cliErr := reg.Get(entities.BackendGitCLI, ".")
		goGit, goGitErr := reg.Get(entities.BackendGoGit, ".")

		// then
		require.NoError(t, cliErr)
		require.NoError(t, goGitErr)
		assert.Equal(t, entities.BackendGitCLI, cli.Name())
		assert.Equal(t, entities.BackendGoGit, goGit.Name())
		assert.Equal(t, []string{"git", "go-git"}, reg.Names())
	})

	t.Run("should return error for an unknown backend", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewVCSRegistry()

		// when
		_, err := reg.Get("svn", ".")

		// then
		require.Error(t, err)
	})
}

func TestReporterRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should expose the text and json formats", func(t *testing.T) {
		t.Parallel()

		// given
		reg := infraRepos.NewDefaultReporterRegistry()

		// when
		text, textErr := reg.Get("text")
		jsonRep, jsonErr := reg.Get("json")
		_, unknownErr := reg.Get("xml")

		// then
		require.NoError(t, textErr)
		require.NoError(t, jsonErr)
		assert.Equal(t, "text", text.Name())
		assert.Equal(t, "json", jsonRep.Name())
		require.Error(t, unknownErr)
	})
}
