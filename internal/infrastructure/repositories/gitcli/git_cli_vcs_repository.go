package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

const (
	backendName   = entities.BackendGitCLI
	defaultBinary = "git"
)

// GitCLIVCSRepository implements repositories.VCSRepository by running the git binary
// inside the working copy. Every query spawns a process; there are no retries.
type GitCLIVCSRepository struct {
	repoDir string
	binary  string
}

// NewVCSRepository creates a git CLI backend for the working copy at repoDir.
func NewVCSRepository(repoDir string) repositories.VCSRepository {
	return &GitCLIVCSRepository{repoDir: repoDir, binary: defaultBinary}
}

// NewVCSRepositoryWithBinary creates a backend running the given git executable.
func NewVCSRepositoryWithBinary(repoDir, binary string) *GitCLIVCSRepository {
	return &GitCLIVCSRepository{repoDir: repoDir, binary: binary}
}

func (r *GitCLIVCSRepository) Name() string { return backendName }

// CurrentBranch resolves HEAD's symbolic reference.
func (r *GitCLIVCSRepository) CurrentBranch(ctx context.Context) string {
	output, err := r.run(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		logger.Warnf("Failed to resolve the current branch: %v", err)
		return entities.UnknownBranch
	}

	branch := strings.TrimSpace(output)
	if branch == "" {
		return entities.UnknownBranch
	}
	return branch
}

// Diff runs "git diff --name-status" between the two references.
func (r *GitCLIVCSRepository) Diff(ctx context.Context, base, target string) ([]string, error) {
	output, err := r.run(ctx, "diff", "--name-status", "-M", base, target)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Errorf("Error getting git diff between %s and %s: %v", base, target, err)
			return []string{}, nil
		}
		return nil, err
	}

	lines := []string{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// FileContent runs "git show branch:path". A non-zero exit means the path
// does not exist on that branch.
func (r *GitCLIVCSRepository) FileContent(ctx context.Context, path, branch string) (string, bool, error) {
	output, err := r.run(ctx, "show", branch+":"+path)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debugf("%s does not exist on %s", path, branch)
			return "", false, nil
		}
		return "", false, err
	}
	return output, true, nil
}

// run executes a git subcommand. Paths are printed verbatim so that diff output
// can be fed back to "git show" even when it holds non-ASCII characters.
func (r *GitCLIVCSRepository) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, append([]string{"-c", "core.quotePath=false"}, args...)...)
	cmd.Dir = r.repoDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("Running %s %s", r.binary, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s %s: %w: %s", r.binary, args[0], err, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("failed to run %s: %w", r.binary, err)
	}
	return stdout.String(), nil
}
