package repositories

import (
	"io"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

// ReporterRepository renders a comparison report in one output format.
type ReporterRepository interface {
	Name() string
	Render(w io.Writer, report *entities.Report, opts entities.RenderOptions) error
}
