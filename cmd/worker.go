package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/voxdrive/voxdrive-backend/jobs"
	"github.com/voxdrive/voxdrive-backend/utils"
)

func RunWorker() error {
	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	uc, err := usecasesFromEnv(ctx)
	if err != nil {
		return err
	}

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "Starting the execution queue worker")
	jobs.RunScheduler(notify, uc)
	return nil
}
