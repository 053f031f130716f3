package structured

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const parserName = "json"

// manifestNames are the npm files whose top-level sections map names to versions.
//
//nolint:gochecknoglobals // read-only lookup list
var manifestNames = map[string]bool{
	"package.json":        true,
	"package-lock.json":   true,
	"npm-shrinkwrap.json": true,
}

// sectionKeys are the top-level keys whose entries are dependency names.
//
//nolint:gochecknoglobals // read-only lookup list
var sectionKeys = []string{
	"dependencies",
	"devDependencies",
	"peerDependencies",
	"optionalDependencies",
}

// JSONParserRepository reads key/value manifests such as package.json. Every key
// of the known dependency sections is a dependency name.
type JSONParserRepository struct{}

// NewParserRepository creates the generic JSON manifest parser.
func NewParserRepository() repositories.ParserRepository {
	return &JSONParserRepository{}
}

func (p *JSONParserRepository) Name() string { return parserName }

// Supports returns true for the npm manifests. Other JSON manifests nest their
// packages differently and have dedicated parsers.
func (p *JSONParserRepository) Supports(filename string) bool {
	return manifestNames[path.Base(filename)]
}

// Parse unions the keys of all dependency sections present in the document.
// Sections that are not objects are ignored.
func (p *JSONParserRepository) Parse(filename, content string) (entities.DependencySet, error) {
	deps := entities.NewDependencySet()
	if strings.TrimSpace(content) == "" {
		return deps, nil
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &document); err != nil {
		return deps, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	for _, key := range sectionKeys {
		raw, ok := document[key]
		if !ok {
			continue
		}

		var section map[string]json.RawMessage
		if err := json.Unmarshal(raw, &section); err != nil {
			continue
		}
		for name := range section {
			deps.Add(name)
		}
	}

	return deps, nil
}
