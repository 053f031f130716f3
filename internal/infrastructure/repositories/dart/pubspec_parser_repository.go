package dart

import (
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const (
	parserName      = "pubspec"
	pubspecManifest = "pubspec.yaml"
)

type pubspecDocument struct {
	Dependencies        map[string]any `yaml:"dependencies"`
	DevDependencies     map[string]any `yaml:"dev_dependencies"`
	DependencyOverrides map[string]any `yaml:"dependency_overrides"`
}

// PubspecParserRepository reads the dependency maps of a Dart/Flutter pubspec.yaml.
type PubspecParserRepository struct{}

// NewParserRepository creates the pubspec.yaml parser.
func NewParserRepository() repositories.ParserRepository {
	return &PubspecParserRepository{}
}

func (p *PubspecParserRepository) Name() string { return parserName }

func (p *PubspecParserRepository) Supports(filename string) bool {
	return path.Base(filename) == pubspecManifest
}

func (p *PubspecParserRepository) Parse(filename, content string) (entities.DependencySet, error) {
	deps := entities.NewDependencySet()
	if strings.TrimSpace(content) == "" {
		return deps, nil
	}

	var doc pubspecDocument
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return deps, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	for _, section := range []map[string]any{doc.Dependencies, doc.DevDependencies, doc.DependencyOverrides} {
		for name := range section {
			deps.Add(name)
		}
	}
	return deps, nil
}
