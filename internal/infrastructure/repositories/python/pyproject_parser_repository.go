package python

import (
	"fmt"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const (
	tomlParserName = "python-toml"

	pyprojectFile = "pyproject.toml"
	pipfileFile   = "Pipfile"
)

type pyprojectDocument struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies    map[string]any `toml:"dependencies"`
			DevDependencies map[string]any `toml:"dev-dependencies"`
			Group           map[string]struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

type pipfileDocument struct {
	Packages    map[string]any `toml:"packages"`
	DevPackages map[string]any `toml:"dev-packages"`
}

// TOMLParserRepository reads pyproject.toml (PEP 621 and Poetry) and Pipfile manifests.
type TOMLParserRepository struct{}

// NewTOMLParserRepository creates the pyproject.toml / Pipfile parser.
func NewTOMLParserRepository() repositories.ParserRepository {
	return &TOMLParserRepository{}
}

func (p *TOMLParserRepository) Name() string { return tomlParserName }

func (p *TOMLParserRepository) Supports(filename string) bool {
	base := path.Base(filename)
	return base == pyprojectFile || base == pipfileFile
}

func (p *TOMLParserRepository) Parse(filename, content string) (entities.DependencySet, error) {
	deps := entities.NewDependencySet()
	if strings.TrimSpace(content) == "" {
		return deps, nil
	}

	if path.Base(filename) == pipfileFile {
		var doc pipfileDocument
		if err := toml.Unmarshal([]byte(content), &doc); err != nil {
			return deps, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
		addKeys(deps, doc.Packages)
		addKeys(deps, doc.DevPackages)
		return deps, nil
	}

	var doc pyprojectDocument
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		return deps, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	for _, requirement := range doc.Project.Dependencies {
		deps.Add(pep508Name(requirement))
	}
	for _, group := range doc.Project.OptionalDependencies {
		for _, requirement := range group {
			deps.Add(pep508Name(requirement))
		}
	}

	addKeys(deps, doc.Tool.Poetry.Dependencies)
	addKeys(deps, doc.Tool.Poetry.DevDependencies)
	for _, group := range doc.Tool.Poetry.Group {
		addKeys(deps, group.Dependencies)
	}

	return deps, nil
}

// pep508Name strips environment markers and extras before truncating at the
// version operator: "requests[socks]>=2; python_version>'3'" yields "requests".
func pep508Name(requirement string) string {
	if idx := strings.IndexAny(requirement, ";["); idx >= 0 {
		requirement = requirement[:idx]
	}
	name := ExtractPackageName(requirement)
	if idx := strings.IndexAny(name, " ("); idx >= 0 {
		name = name[:idx]
	}
	return name
}

func addKeys(deps entities.DependencySet, section map[string]any) {
	for name := range section {
		if name == "python" {
			continue
		}
		deps.Add(name)
	}
}
