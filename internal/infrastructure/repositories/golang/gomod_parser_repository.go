package golang

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const (
	parserName = "gomod"
	goModFile  = "go.mod"
)

// GoModParserRepository reads the require directives of a go.mod file.
type GoModParserRepository struct{}

// NewParserRepository creates the go.mod parser.
func NewParserRepository() repositories.ParserRepository {
	return &GoModParserRepository{}
}

func (p *GoModParserRepository) Name() string { return parserName }

func (p *GoModParserRepository) Supports(filename string) bool {
	return path.Base(filename) == goModFile
}

// Parse returns the module paths of every require directive, direct or indirect.
func (p *GoModParserRepository) Parse(filename, content string) (entities.DependencySet, error) {
	deps := entities.NewDependencySet()
	if strings.TrimSpace(content) == "" {
		return deps, nil
	}

	file, err := modfile.ParseLax(filename, []byte(content), nil)
	if err != nil {
		return deps, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	for _, req := range file.Require {
		deps.Add(req.Mod.Path)
	}
	return deps, nil
}
