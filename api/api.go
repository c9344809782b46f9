package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voxdrive/voxdrive-backend/usecases"
	"github.com/voxdrive/voxdrive-backend/utils"
)

type Configuration struct {
	Env  string
	Port string
}

func New(ctx context.Context, conf Configuration, uc usecases.Usecases, logger *slog.Logger) *http.Server {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	addRoutes(r, uc)

	return &http.Server{
		Addr:              ":" + conf.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLiveness())

	r.POST("/queue", handleEnqueue(uc))
	r.POST("/queue/dequeue", handleDequeue(uc))
	r.POST("/queue/process", handleProcessQueue(uc))
	r.GET("/queue/stats", handleQueueStats(uc))
	r.PATCH("/queue/:queue_entry_id/status", handleUpdateQueueEntryStatus(uc))
	r.POST("/queue/:queue_entry_id/resume", handleResumeQueueEntry(uc))

	r.POST("/expected-outcomes/:outcome_id/alternates", handleAddAcceptableAlternate(uc))
	r.DELETE("/expected-outcomes/:outcome_id/alternates", handleRemoveAcceptableAlternate(uc))
}

func handleLiveness() func(c *gin.Context) {
	return func(c *gin.Context) {
		c.Status(http.StatusOK)
	}
}
