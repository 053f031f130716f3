package reporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const (
	TextFormat = "text"

	noChangesMessage = "No dependency manifest changes found."
)

//nolint:gochecknoglobals // immutable styles
var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// TextReporterRepository renders a report as indented, human-readable text.
type TextReporterRepository struct{}

// NewTextReporterRepository creates the text reporter.
func NewTextReporterRepository() repositories.ReporterRepository {
	return &TextReporterRepository{}
}

func (r *TextReporterRepository) Name() string { return TextFormat }

// Render prints languages in sorted order and files in discovery order, each
// followed by its added and removed dependencies.
func (r *TextReporterRepository) Render(
	w io.Writer,
	report *entities.Report,
	opts entities.RenderOptions,
) error {
	if report.IsEmpty() {
		_, err := fmt.Fprintln(w, noChangesMessage)
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dependency changes from %s to %s:\n", report.BaseBranch, report.TargetBranch)

	for _, language := range report.Languages() {
		sb.WriteString("\n")
		sb.WriteString(paint(headerStyle, language+":", opts.Color))
		sb.WriteString("\n")

		for _, delta := range report.Deltas(language) {
			fmt.Fprintf(&sb, "  %s %s\n", delta.Status, delta.Record().DisplayName())
			for _, name := range delta.NewDeps.Sorted() {
				sb.WriteString(paint(addedStyle, "    + "+name, opts.Color))
				sb.WriteString("\n")
			}
			for _, name := range delta.RemovedDeps.Sorted() {
				sb.WriteString(paint(removedStyle, "    - "+name, opts.Color))
				sb.WriteString("\n")
			}
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func paint(style lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return style.Render(text)
}
