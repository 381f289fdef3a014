package queue

import (
	"context"
	"fmt"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
)

// StubExecutor is a no-op executor for tests and local smoke runs.
// It succeeds immediately unless the context is already dead.
type StubExecutor struct{}

// NewStubExecutor creates a new StubExecutor.
func NewStubExecutor() *StubExecutor {
	return &StubExecutor{}
}

// Execute implements JobExecutor.
func (s *StubExecutor) Execute(ctx context.Context, job *ent.AnalysisJob) *ExecutionResult {
	if err := ctx.Err(); err != nil {
		return &ExecutionResult{
			Status:    analysisjob.StatusFailed,
			Retryable: true,
			Error:     fmt.Errorf("execution interrupted: %w", err),
		}
	}
	return &ExecutionResult{
		Status:     analysisjob.StatusSucceeded,
		AnalysisID: "ANL-00000000-00000000",
	}
}
