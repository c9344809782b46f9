package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/voxdrive/voxdrive-backend/api"
	"github.com/voxdrive/voxdrive-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:  utils.GetEnv("ENV", "development"),
		Port: utils.GetEnv("PORT", "8080"),
	}

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	uc, err := usecasesFromEnv(ctx)
	if err != nil {
		return err
	}

	server := api.New(ctx, apiConfig, uc, logger)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, fmt.Sprintf("Starting server on port %s", apiConfig.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, fmt.Sprintf("Error starting server: %v", err))
		}
	}()

	<-notify.Done()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
