package repositories

import (
	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

// ParserRepository extracts dependency names from one manifest format.
type ParserRepository interface {
	// Name returns the parser identifier (e.g. "requirements", "gomod").
	Name() string

	// Supports returns true if the parser understands the given manifest path.
	Supports(filename string) bool

	// Parse returns the dependency names declared in content. Empty content
	// yields an empty set; malformed content yields an error.
	Parse(filename, content string) (entities.DependencySet, error)
}
