package gogit

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const backendName = entities.BackendGoGit

// GoGitVCSRepository implements repositories.VCSRepository on top of go-git,
// reading commits and blobs straight from the object database without a git binary.
type GoGitVCSRepository struct {
	repoDir string
}

// NewVCSRepository creates a go-git backend for the working copy at repoDir.
func NewVCSRepository(repoDir string) repositories.VCSRepository {
	return &GoGitVCSRepository{repoDir: repoDir}
}

func (r *GoGitVCSRepository) Name() string { return backendName }

// CurrentBranch returns the short name of the branch HEAD points to.
func (r *GoGitVCSRepository) CurrentBranch(_ context.Context) string {
	repo, err := r.open()
	if err != nil {
		logger.Warnf("Failed to resolve the current branch: %v", err)
		return entities.UnknownBranch
	}

	head, err := repo.Head()
	if err != nil {
		logger.Warnf("Failed to resolve the current branch: %v", err)
		return entities.UnknownBranch
	}
	if !head.Name().IsBranch() {
		logger.Warnf("HEAD is detached at %s", head.Hash())
		return entities.UnknownBranch
	}
	return head.Name().Short()
}

// Diff compares the trees of both references with rename detection and emits
// the changes in "git diff --name-status" form.
func (r *GoGitVCSRepository) Diff(ctx context.Context, base, target string) ([]string, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}

	baseTree, err := resolveTree(repo, base)
	if err != nil {
		logger.Errorf("Error getting git diff between %s and %s: %v", base, target, err)
		return []string{}, nil
	}
	targetTree, err := resolveTree(repo, target)
	if err != nil {
		logger.Errorf("Error getting git diff between %s and %s: %v", base, target, err)
		return []string{}, nil
	}

	changes, err := object.DiffTreeWithOptions(ctx, baseTree, targetTree, object.DefaultDiffTreeOptions)
	if err != nil {
		logger.Errorf("Error getting git diff between %s and %s: %v", base, target, err)
		return []string{}, nil
	}

	lines := make([]string, 0, len(changes))
	for _, change := range changes {
		line, ok := formatChange(change)
		if !ok {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// FileContent reads path from the tree of branch.
func (r *GoGitVCSRepository) FileContent(_ context.Context, path, branch string) (string, bool, error) {
	repo, err := r.open()
	if err != nil {
		return "", false, err
	}

	tree, err := resolveTree(repo, branch)
	if err != nil {
		logger.Debugf("Cannot read %s from %s: %v", path, branch, err)
		return "", false, nil
	}

	file, err := tree.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) || errors.Is(err, object.ErrDirectoryNotFound) {
			logger.Debugf("%s does not exist on %s", path, branch)
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s on %s: %w", path, branch, err)
	}

	content, err := file.Contents()
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s on %s: %w", path, branch, err)
	}
	return content, true, nil
}

func (r *GoGitVCSRepository) open() (*git.Repository, error) {
	//nolint:exhaustruct // only DetectDotGit is relevant
	repo, err := git.PlainOpenWithOptions(r.repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %q: %w", r.repoDir, err)
	}
	return repo, nil
}

func resolveTree(repo *git.Repository, revision string) (*object.Tree, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("unknown revision %q: %w", revision, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}
	return commit.Tree()
}

func formatChange(change *object.Change) (string, bool) {
	action, err := change.Action()
	if err != nil {
		logger.Debugf("Skipping change with unknown action: %v", err)
		return "", false
	}

	switch action {
	case merkletrie.Insert:
		return string(entities.StatusAdded) + "\t" + change.To.Name, true
	case merkletrie.Delete:
		return string(entities.StatusDeleted) + "\t" + change.From.Name, true
	case merkletrie.Modify:
		if change.From.Name != change.To.Name {
			return string(entities.StatusRenamed) + "\t" + change.From.Name + "\t" + change.To.Name, true
		}
		return string(entities.StatusModified) + "\t" + change.To.Name, true
	default:
		return "", false
	}
}
