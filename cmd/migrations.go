package cmd

import (
	"context"
	"fmt"

	"github.com/voxdrive/voxdrive-backend/repositories"
	"github.com/voxdrive/voxdrive-backend/utils"
)

func RunMigrations() error {
	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	migrater := repositories.NewMigrater(pgConfigFromEnv().GetConnectionString())
	if err := migrater.Run(ctx); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("Error running migrations: %v", err))
		return err
	}
	return nil
}
