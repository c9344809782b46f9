package jobs

import (
	"context"

	"github.com/adhocore/gronx/pkg/tasker"

	"github.com/voxdrive/voxdrive-backend/usecases"
	"github.com/voxdrive/voxdrive-backend/utils"
)

func errToReturnCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// RunScheduler runs the worker's periodic jobs until the context is canceled.
func RunScheduler(ctx context.Context, uc usecases.Usecases) {
	taskr := tasker.New(tasker.Option{
		Verbose: true,
	}).WithContext(ctx)

	notConcurrent := false
	taskr.Task("* * * * *", func(ctx context.Context) (int, error) {
		logger := utils.LoggerFromContext(ctx).With("job", "process_execution_queue")
		ctx = utils.StoreLoggerInContext(ctx, logger)
		err := ProcessExecutionQueue(ctx, uc)
		return errToReturnCode(err), err
	}, notConcurrent)

	taskr.Run()
}
