//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depdiff/internal/domain/entities"
	"github.com/rios0rios0/depdiff/internal/domain/repositories"
)

// StubVCSRepository implements repositories.VCSRepository with canned outputs.
type StubVCSRepository struct {
	// --- CurrentBranch ---
	Branch string

	// --- Diff ---
	DiffLines []string
	DiffErr   error
	DiffCalls []DiffCall

	// --- FileContent ---
	// Files maps "branch:path" to the committed content.
	Files        map[string]string
	ContentErr   error
	ContentCalls []string
}

// DiffCall records a single invocation of Diff.
type DiffCall struct {
	Base   string
	Target string
}

var _ repositories.VCSRepository = (*StubVCSRepository)(nil)

func (s *StubVCSRepository) Name() string { return "stub" }

func (s *StubVCSRepository) CurrentBranch(_ context.Context) string {
	if s.Branch == "" {
		return entities.UnknownBranch
	}
	return s.Branch
}

func (s *StubVCSRepository) Diff(_ context.Context, base, target string) ([]string, error) {
	s.DiffCalls = append(s.DiffCalls, DiffCall{Base: base, Target: target})
	if s.DiffErr != nil {
		return nil, s.DiffErr
	}
	return s.DiffLines, nil
}

func (s *StubVCSRepository) FileContent(_ context.Context, path, branch string) (string, bool, error) {
	key := branch + ":" + path
	s.ContentCalls = append(s.ContentCalls, key)
	if s.ContentErr != nil {
		return "", false, s.ContentErr
	}
	content, ok := s.Files[key]
	return content, ok, nil
}

// WithFile registers content for path on branch and returns the stub for chaining.
func (s *StubVCSRepository) WithFile(branch, path, content string) *StubVCSRepository {
	if s.Files == nil {
		s.Files = make(map[string]string)
	}
	s.Files[branch+":"+path] = content
	return s
}

// SpyParserRepository implements repositories.ParserRepository as a configurable spy.
type SpyParserRepository struct {
	ParserName  string
	Suffix      string
	Result      entities.DependencySet
	ParseErr    error
	ParsedFiles []string
}

var _ repositories.ParserRepository = (*SpyParserRepository)(nil)

func (p *SpyParserRepository) Name() string { return p.ParserName }

func (p *SpyParserRepository) Supports(filename string) bool {
	return len(filename) >= len(p.Suffix) && filename[len(filename)-len(p.Suffix):] == p.Suffix
}

func (p *SpyParserRepository) Parse(filename, _ string) (entities.DependencySet, error) {
	p.ParsedFiles = append(p.ParsedFiles, filename)
	return p.Result, p.ParseErr
}
