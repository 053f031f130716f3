package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depdiff/internal/infrastructure/repositories"
	"github.com/rios0rios0/depdiff/internal/infrastructure/repositories/reporters"
)

// Compare is the interface for the branch comparison command.
type Compare interface {
	Execute(ctx context.Context, opts CompareOptions) (*entities.Report, error)
}

// CompareOptions holds runtime options for a single comparison.
type CompareOptions struct {
	TargetBranch string
	BaseBranch   string // If empty, the branch checked out in RepoDir is used
	Backend      string
	RepoDir      string
	JSON         bool
	Color        bool
	Verbose      bool
	Output       io.Writer // Defaults to standard output
}

// CompareCommand orchestrates the comparison flow:
// list changed paths -> keep manifests -> diff dependency sets -> render.
type CompareCommand struct {
	vcsRegistry      *infraRepos.VCSRegistry
	parserRegistry   *infraRepos.ParserRegistry
	reporterRegistry *infraRepos.ReporterRegistry
}

// NewCompareCommand creates a new CompareCommand with the given registries.
func NewCompareCommand(
	vcsRegistry *infraRepos.VCSRegistry,
	parserRegistry *infraRepos.ParserRegistry,
	reporterRegistry *infraRepos.ReporterRegistry,
) *CompareCommand {
	return &CompareCommand{
		vcsRegistry:      vcsRegistry,
		parserRegistry:   parserRegistry,
		reporterRegistry: reporterRegistry,
	}
}

// Execute compares the target branch against the base branch and renders the result.
func (it *CompareCommand) Execute(ctx context.Context, opts CompareOptions) (*entities.Report, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	vcs, err := it.vcsRegistry.Get(opts.Backend, opts.RepoDir)
	if err != nil {
		return nil, err
	}

	format := reporters.TextFormat
	if opts.JSON {
		format = reporters.JSONFormat
	}
	reporter, err := it.reporterRegistry.Get(format)
	if err != nil {
		return nil, err
	}

	baseBranch := opts.BaseBranch
	if baseBranch == "" {
		baseBranch = vcs.CurrentBranch(ctx)
	}
	logger.Debugf("[%s] Comparing %s against %s in %s", vcs.Name(), opts.TargetBranch, baseBranch, opts.RepoDir)

	lines, err := vcs.Diff(ctx, baseBranch, opts.TargetBranch)
	if err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}

	report, err := it.analyze(ctx, vcs, lines, baseBranch, opts.TargetBranch)
	if err != nil {
		return nil, err
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	if renderErr := reporter.Render(output, report, entities.RenderOptions{Color: opts.Color}); renderErr != nil {
		return nil, fmt.Errorf("failed to render report: %w", renderErr)
	}
	return report, nil
}

// analyze classifies the raw diff lines and computes a delta for every changed manifest.
func (it *CompareCommand) analyze(
	ctx context.Context,
	vcs repositories.VCSRepository,
	lines []string,
	baseBranch, targetBranch string,
) (*entities.Report, error) {
	report := entities.NewReport(baseBranch, targetBranch)

	for _, line := range lines {
		record, ok := entities.ParseChangeLine(line)
		if !ok {
			logger.Debugf("Skipping unrecognised diff line %q", line)
			continue
		}

		record, ok = entities.Classify(record)
		if !ok {
			continue
		}

		delta, err := it.analyzeChange(ctx, vcs, record, baseBranch, targetBranch)
		if err != nil {
			return nil, err
		}
		report.Add(delta)
	}

	logger.Debugf("Collected %d manifest changes out of %d changed paths", report.FileCount(), len(lines))
	return report, nil
}

// analyzeChange fetches the snapshots relevant to the change status and diffs them.
func (it *CompareCommand) analyzeChange(
	ctx context.Context,
	vcs repositories.VCSRepository,
	record entities.ChangeRecord,
	baseBranch, targetBranch string,
) (entities.DependencyDelta, error) {
	before := entities.NewDependencySet()
	after := entities.NewDependencySet()

	switch record.Status {
	case entities.StatusAdded:
		deps, err := it.snapshot(ctx, vcs, record.Filename, targetBranch)
		if err != nil {
			return entities.DependencyDelta{}, err
		}
		after = deps
	case entities.StatusDeleted:
		deps, err := it.snapshot(ctx, vcs, record.Filename, baseBranch)
		if err != nil {
			return entities.DependencyDelta{}, err
		}
		before = deps
	case entities.StatusModified, entities.StatusRenamed:
		oldPath := record.Filename
		if record.IsRename() {
			oldPath = record.OldFilename
		}

		var err error
		if before, err = it.snapshot(ctx, vcs, oldPath, baseBranch); err != nil {
			return entities.DependencyDelta{}, err
		}
		if after, err = it.snapshot(ctx, vcs, record.Filename, targetBranch); err != nil {
			return entities.DependencyDelta{}, err
		}
	}

	return entities.NewDependencyDelta(record, before, after), nil
}

// snapshot parses the dependency set of path as committed on branch. A path that
// does not exist on the branch parses as empty content.
func (it *CompareCommand) snapshot(
	ctx context.Context,
	vcs repositories.VCSRepository,
	path, branch string,
) (entities.DependencySet, error) {
	content, found, err := vcs.FileContent(ctx, path, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s on %s: %w", path, branch, err)
	}
	if !found {
		content = ""
	}
	return it.parserRegistry.Parse(path, content), nil
}
