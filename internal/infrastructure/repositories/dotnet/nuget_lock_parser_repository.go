package dotnet

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const (
	parserName   = "nuget-lock"
	lockManifest = "packages.lock.json"
)

// lockDocument mirrors packages.lock.json: dependencies are grouped per target
// framework moniker ("net8.0", "net6.0/linux-x64") before the package names.
type lockDocument struct {
	Dependencies map[string]map[string]json.RawMessage `json:"dependencies"`
}

// NuGetLockParserRepository reads the packages pinned in a NuGet lock file.
type NuGetLockParserRepository struct{}

// NewParserRepository creates the packages.lock.json parser.
func NewParserRepository() repositories.ParserRepository {
	return &NuGetLockParserRepository{}
}

func (p *NuGetLockParserRepository) Name() string { return parserName }

func (p *NuGetLockParserRepository) Supports(filename string) bool {
	return path.Base(filename) == lockManifest
}

// Parse unions the package names of every target framework.
func (p *NuGetLockParserRepository) Parse(filename, content string) (entities.DependencySet, error) {
	deps := entities.NewDependencySet()
	if strings.TrimSpace(content) == "" {
		return deps, nil
	}

	var doc lockDocument
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return deps, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	for _, packages := range doc.Dependencies {
		for name := range packages {
			deps.Add(name)
		}
	}
	return deps, nil
}
