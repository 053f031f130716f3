package repositories

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depdiff/internal/domain/repositories"
)

// ParserRegistry manages the registered manifest parsers. Lookup follows
// registration order, so specific formats must be registered before generic ones.
type ParserRegistry struct {
	parsers []domainRepos.ParserRepository
}

// NewParserRegistry creates an empty parser registry.
func NewParserRegistry() *ParserRegistry {
	return &ParserRegistry{}
}

// Register appends a parser to the lookup chain.
func (r *ParserRegistry) Register(p domainRepos.ParserRepository) {
	r.parsers = append(r.parsers, p)
}

// For returns the first parser supporting filename, or nil if none does.
func (r *ParserRegistry) For(filename string) domainRepos.ParserRepository {
	for _, p := range r.parsers {
		if p.Supports(filename) {
			return p
		}
	}
	return nil
}

// Parse extracts the dependency set of a manifest snapshot. Unsupported formats
// yield an empty set silently; parse failures are logged and yield an empty set.
func (r *ParserRegistry) Parse(filename, content string) entities.DependencySet {
	p := r.For(filename)
	if p == nil {
		logger.Debugf("No parser for %s, treating it as declaring no dependencies", filename)
		return entities.NewDependencySet()
	}

	deps, err := p.Parse(filename, content)
	if err != nil {
		logger.Errorf("[%s] Error parsing %s: %v", p.Name(), filename, err)
		return entities.NewDependencySet()
	}
	if deps == nil {
		return entities.NewDependencySet()
	}
	return deps
}

// Names returns the registered parser names in lookup order.
func (r *ParserRegistry) Names() []string {
	names := make([]string, 0, len(r.parsers))
	for _, p := range r.parsers {
		names = append(names, p.Name())
	}
	return names
}
