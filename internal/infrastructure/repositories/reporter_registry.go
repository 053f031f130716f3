package repositories

import (
	"fmt"

	domainRepos "github.com/rios0rios0/depdiff/internal/domain/repositories"
)

// ReporterRegistry manages the available output formats.
type ReporterRegistry struct {
	reporters map[string]domainRepos.ReporterRepository
}

// NewReporterRegistry creates an empty reporter registry.
func NewReporterRegistry() *ReporterRegistry {
	return &ReporterRegistry{
		reporters: make(map[string]domainRepos.ReporterRepository),
	}
}

// Register adds a reporter under its name.
func (r *ReporterRegistry) Register(rep domainRepos.ReporterRepository) {
	r.reporters[rep.Name()] = rep
}

// Get returns the reporter with the given name.
func (r *ReporterRegistry) Get(name string) (domainRepos.ReporterRepository, error) {
	rep, ok := r.reporters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %q", name)
	}
	return rep, nil
}
