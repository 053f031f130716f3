package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	dartRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/dart"
	dotnetRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/dotnet"
	gitCLIRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/gitcli"
	goGitRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/gogit"
	goRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/golang"
	phpRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/php"
	pyRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/python"
	"github.com/rios0rios0/depdiff/internal/infrastructure/repositories/reporters"
	rustRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/rust"
	"github.com/rios0rios0/depdiff/internal/infrastructure/repositories/structured"
	tfRepo "github.com/rios0rios0/depdiff/internal/infrastructure/repositories/terraform"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewDefaultVCSRegistry); err != nil {
		return err
	}
	if err := container.Provide(NewDefaultParserRegistry); err != nil {
		return err
	}
	if err := container.Provide(NewDefaultReporterRegistry); err != nil {
		return err
	}
	return nil
}

// NewDefaultVCSRegistry returns a registry holding the git CLI and go-git backends.
func NewDefaultVCSRegistry() *VCSRegistry {
	reg := NewVCSRegistry()
	reg.Register(entities.BackendGitCLI, gitCLIRepo.NewVCSRepository)
	reg.Register(entities.BackendGoGit, goGitRepo.NewVCSRepository)
	return reg
}

// NewDefaultParserRegistry returns a registry with every manifest parser.
// The npm JSON parser is registered last.
func NewDefaultParserRegistry() *ParserRegistry {
	reg := NewParserRegistry()
	reg.Register(pyRepo.NewRequirementsParserRepository())
	reg.Register(pyRepo.NewTOMLParserRepository())
	reg.Register(goRepo.NewParserRepository())
	reg.Register(rustRepo.NewParserRepository())
	reg.Register(phpRepo.NewParserRepository())
	reg.Register(dartRepo.NewParserRepository())
	reg.Register(dotnetRepo.NewParserRepository())
	reg.Register(tfRepo.NewParserRepository())
	reg.Register(structured.NewParserRepository())
	return reg
}

// NewDefaultReporterRegistry returns a registry with the text and JSON reporters.
func NewDefaultReporterRegistry() *ReporterRegistry {
	reg := NewReporterRegistry()
	reg.Register(reporters.NewTextReporterRepository())
	reg.Register(reporters.NewJSONReporterRepository())
	return reg
}
