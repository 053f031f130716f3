package python

import (
	"path"
	"strings"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const requirementsParserName = "requirements"

// versionOperators mark where a package name ends on a pinned line. ">" and "<"
// also cover ">=" and "<=".
//
//nolint:gochecknoglobals // read-only lookup list
var versionOperators = []string{"==", "!=", "~=", ">", "<"}

// RequirementsParserRepository reads line-oriented, version-pinned lists such as
// requirements.txt.
type RequirementsParserRepository struct{}

// NewRequirementsParserRepository creates the requirements.txt parser.
func NewRequirementsParserRepository() repositories.ParserRepository {
	return &RequirementsParserRepository{}
}

func (p *RequirementsParserRepository) Name() string { return requirementsParserName }

// Supports returns true for requirements.txt and requirements.in style files.
func (p *RequirementsParserRepository) Supports(filename string) bool {
	base := path.Base(filename)
	return strings.HasSuffix(base, "requirements.txt") || strings.HasSuffix(base, "requirements.in")
}

// Parse extracts one package name per non-empty, non-comment line. pip option
// lines ("-r base.txt", "-e .", "--index-url ...") name no package.
func (p *RequirementsParserRepository) Parse(_, content string) (entities.DependencySet, error) {
	deps := entities.NewDependencySet()
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		deps.Add(ExtractPackageName(line))
	}
	return deps, nil
}

// ExtractPackageName truncates a requirement at its first version operator
// and trims the remainder. "foo>=1.0" yields "foo".
func ExtractPackageName(requirement string) string {
	cut := len(requirement)
	for _, op := range versionOperators {
		if idx := strings.Index(requirement, op); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(requirement[:cut])
}
