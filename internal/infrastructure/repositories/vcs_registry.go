package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/depdiff/internal/domain/repositories"
)

// VCSFactory is a constructor function that creates a VCSRepository for a working copy.
type VCSFactory func(repoDir string) domainRepos.VCSRepository

// VCSRegistry manages all registered version-control backends.
type VCSRegistry struct {
	backends map[string]VCSFactory
}

// NewVCSRegistry creates an empty backend registry.
func NewVCSRegistry() *VCSRegistry {
	return &VCSRegistry{
		backends: make(map[string]VCSFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "git").
func (r *VCSRegistry) Register(name string, factory VCSFactory) {
	r.backends[name] = factory
}

// Get returns a backend instance bound to repoDir.
func (r *VCSRegistry) Get(name, repoDir string) (domainRepos.VCSRepository, error) {
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %q", name)
	}
	return factory(repoDir), nil
}

// Names returns the sorted list of registered backend names.
func (r *VCSRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
