package php

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const (
	parserName       = "composer"
	composerManifest = "composer.json"
)

type composerDocument struct {
	Require    map[string]json.RawMessage `json:"require"`
	RequireDev map[string]json.RawMessage `json:"require-dev"`
}

// ComposerParserRepository reads the require sections of composer.json.
// Platform requirements (php, ext-*, lib-*) are not packages and are skipped.
type ComposerParserRepository struct{}

// NewParserRepository creates the composer.json parser.
func NewParserRepository() repositories.ParserRepository {
	return &ComposerParserRepository{}
}

func (p *ComposerParserRepository) Name() string { return parserName }

func (p *ComposerParserRepository) Supports(filename string) bool {
	return path.Base(filename) == composerManifest
}

func (p *ComposerParserRepository) Parse(filename, content string) (entities.DependencySet, error) {
	deps := entities.NewDependencySet()
	if strings.TrimSpace(content) == "" {
		return deps, nil
	}

	var doc composerDocument
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return deps, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	for _, section := range []map[string]json.RawMessage{doc.Require, doc.RequireDev} {
		for name := range section {
			if isPlatformPackage(name) {
				continue
			}
			deps.Add(name)
		}
	}
	return deps, nil
}

func isPlatformPackage(name string) bool {
	return name == "php" ||
		strings.HasPrefix(name, "ext-") ||
		strings.HasPrefix(name, "lib-")
}
