package repositories

import (
	"context"
)

// VCSRepository abstracts the version-control queries needed to compare two branches.
// Implementations either shell out to the git binary or read the object database directly.
type VCSRepository interface {
	// Name returns the backend identifier (e.g. "git", "go-git").
	Name() string

	// CurrentBranch returns the branch checked out in the working copy,
	// or entities.UnknownBranch when it cannot be resolved.
	CurrentBranch(ctx context.Context) string

	// Diff lists the paths that changed between base and target, one
	// "status<TAB>path" or "status<TAB>old<TAB>new" line per path. A failing
	// query is reported and yields an empty list; only a backend that cannot
	// run at all returns an error.
	Diff(ctx context.Context, base, target string) ([]string, error)

	// FileContent returns the committed content of path on branch. The boolean is
	// false when the path does not exist there.
	FileContent(ctx context.Context, path, branch string) (string, bool, error)
}
