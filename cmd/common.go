package cmd

import (
	"context"

	"github.com/voxdrive/voxdrive-backend/infra"
	"github.com/voxdrive/voxdrive-backend/repositories"
	"github.com/voxdrive/voxdrive-backend/usecases"
	"github.com/voxdrive/voxdrive-backend/utils"
)

func pgConfigFromEnv() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "voxdrive"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", "localhost"),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", "postgres"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}

func usecasesFromEnv(ctx context.Context) (usecases.Usecases, error) {
	pgConfig := pgConfigFromEnv()

	pool, err := infra.NewPostgresConnectionPool(ctx,
		pgConfig.GetConnectionString(), pgConfig.MaxPoolConnections)
	if err != nil {
		return usecases.Usecases{}, err
	}

	return usecases.Usecases{
		Repository:              repositories.NewVoxdriveDbRepository(),
		ExecutorGetter:          repositories.NewExecutorGetter(pool),
		AssistantDriver:         repositories.FakeAssistantDriver{},
		ResultReporter:          repositories.LoggingScenarioResultReporter{},
		WorkerConcurrency:       utils.GetEnv("WORKER_CONCURRENCY", 4),
		ResponseTimeThresholdMs: utils.GetEnv("RESPONSE_TIME_THRESHOLD_MS", 3000.0),
	}, nil
}
