package commands

import (
	"context"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

// Analyze exports analyze for testing.
func (it *CompareCommand) Analyze(
	ctx context.Context,
	vcs repositories.VCSRepository,
	lines []string,
	baseBranch, targetBranch string,
) (*entities.Report, error) {
	return it.analyze(ctx, vcs, lines, baseBranch, targetBranch)
}
