package jobs

import (
	"context"

	"github.com/voxdrive/voxdrive-backend/usecases"
	"github.com/voxdrive/voxdrive-backend/utils"
)

// ProcessExecutionQueue drains the execution queue once: every queued entry is
// claimed, its scenario played against the assistant, and its final status
// persisted.
func ProcessExecutionQueue(ctx context.Context, uc usecases.Usecases) error {
	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "Start processing the test execution queue")

	runner := uc.NewScenarioRunner()
	if err := runner.RunPendingEntries(ctx); err != nil {
		logger.ErrorContext(ctx, "Error processing the test execution queue")
		return err
	}

	logger.InfoContext(ctx, "Done processing the test execution queue")
	return nil
}
