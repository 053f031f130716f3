package rust

import (
	"fmt"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const (
	parserName    = "cargo"
	cargoManifest = "Cargo.toml"
)

type cargoDocument struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
	Workspace         struct {
		Dependencies map[string]any `toml:"dependencies"`
	} `toml:"workspace"`
}

// CargoParserRepository reads the dependency tables of a Cargo.toml manifest.
type CargoParserRepository struct{}

// NewParserRepository creates the Cargo.toml parser.
func NewParserRepository() repositories.ParserRepository {
	return &CargoParserRepository{}
}

func (p *CargoParserRepository) Name() string { return parserName }

func (p *CargoParserRepository) Supports(filename string) bool {
	return path.Base(filename) == cargoManifest
}

func (p *CargoParserRepository) Parse(filename, content string) (entities.DependencySet, error) {
	deps := entities.NewDependencySet()
	if strings.TrimSpace(content) == "" {
		return deps, nil
	}

	var doc cargoDocument
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		return deps, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	for _, section := range []map[string]any{
		doc.Dependencies,
		doc.DevDependencies,
		doc.BuildDependencies,
		doc.Workspace.Dependencies,
	} {
		for name := range section {
			deps.Add(name)
		}
	}
	return deps, nil
}
