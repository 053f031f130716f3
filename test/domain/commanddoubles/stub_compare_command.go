//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depdiff/internal/domain/commands"
	"github.com/rios0rios0/depdiff/internal/domain/entities"
)

// StubCompareCommand is a stub implementation of commands.Compare.
type StubCompareCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.Report
	LastOpts         commands.CompareOptions
}

var _ commands.Compare = (*StubCompareCommand)(nil)

func (s *StubCompareCommand) Execute(
	_ context.Context,
	opts commands.CompareOptions,
) (*entities.Report, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
