package reporters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const JSONFormat = "json"

// FileDependencies is the JSON shape of one manifest's delta.
type FileDependencies struct {
	NewDeps     []string `json:"new_deps"`
	RemovedDeps []string `json:"removed_deps"`
}

// JSONReporterRepository renders a report as {language: {filename: deps}}.
// Files without any added or removed dependency, and languages left empty by
// that rule, are omitted.
type JSONReporterRepository struct{}

// NewJSONReporterRepository creates the JSON reporter.
func NewJSONReporterRepository() repositories.ReporterRepository {
	return &JSONReporterRepository{}
}

func (r *JSONReporterRepository) Name() string { return JSONFormat }

func (r *JSONReporterRepository) Render(
	w io.Writer,
	report *entities.Report,
	_ entities.RenderOptions,
) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(BuildDocument(report)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// BuildDocument converts a report into the JSON document structure.
func BuildDocument(report *entities.Report) map[string]map[string]FileDependencies {
	document := make(map[string]map[string]FileDependencies)
	for _, language := range report.Languages() {
		files := make(map[string]FileDependencies)
		for _, delta := range report.Deltas(language) {
			if delta.IsEmpty() {
				continue
			}
			files[delta.Filename] = FileDependencies{
				NewDeps:     delta.NewDeps.Sorted(),
				RemovedDeps: delta.RemovedDeps.Sorted(),
			}
		}
		if len(files) > 0 {
			document[language] = files
		}
	}
	return document
}
