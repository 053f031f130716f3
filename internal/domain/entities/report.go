package entities

import "sort"

// Report groups the dependency deltas of a branch comparison by language.
// Within a language, deltas keep the order in which changes were discovered.
type Report struct {
	BaseBranch   string
	TargetBranch string

	deltas map[string][]DependencyDelta
}

// NewReport creates an empty report for the given branch pair.
func NewReport(baseBranch, targetBranch string) *Report {
	return &Report{
		BaseBranch:   baseBranch,
		TargetBranch: targetBranch,
		deltas:       make(map[string][]DependencyDelta),
	}
}

// Add appends a delta under its language.
func (r *Report) Add(delta DependencyDelta) {
	r.deltas[delta.Language] = append(r.deltas[delta.Language], delta)
}

// Languages returns the languages holding at least one delta, sorted.
func (r *Report) Languages() []string {
	languages := make([]string, 0, len(r.deltas))
	for language, deltas := range r.deltas {
		if len(deltas) > 0 {
			languages = append(languages, language)
		}
	}
	sort.Strings(languages)
	return languages
}

// Deltas returns the deltas collected for a language in discovery order.
func (r *Report) Deltas(language string) []DependencyDelta {
	return r.deltas[language]
}

// FileCount returns the number of manifest changes in the report.
func (r *Report) FileCount() int {
	count := 0
	for _, deltas := range r.deltas {
		count += len(deltas)
	}
	return count
}

// IsEmpty reports whether no manifest change was collected.
func (r *Report) IsEmpty() bool {
	return r.FileCount() == 0
}

// RenderOptions tunes how a report is written out.
type RenderOptions struct {
	Color bool
}
