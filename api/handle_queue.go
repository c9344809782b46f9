package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voxdrive/voxdrive-backend/dto"
	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/usecases"
)

type QueueEntryUriInput struct {
	QueueEntryId string `uri:"queue_entry_id" binding:"required,uuid"`
}

func handleEnqueue(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var data dto.CreateQueueEntryBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewExecutionQueueUsecase()
		entry, err := usecase.Enqueue(ctx, models.CreateQueueEntryInput{
			TestScenarioId: data.TestScenarioId,
			TestRunId:      data.TestRunId,
			Priority:       data.PriorityOrDefault(),
		})

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"queue_entry": dto.AdaptQueueEntryDto(entry)})
	}
}

func handleDequeue(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewExecutionQueueUsecase()
		entry, err := usecase.Dequeue(ctx)

		if presentError(ctx, c, err) {
			return
		}
		if entry == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, gin.H{"queue_entry": dto.AdaptQueueEntryDto(*entry)})
	}
}

func handleUpdateQueueEntryStatus(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uriInput QueueEntryUriInput
		if err := c.ShouldBindUri(&uriInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var data dto.UpdateQueueEntryStatusBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewExecutionQueueUsecase()
		entry, err := usecase.UpdateStatus(ctx, uriInput.QueueEntryId, data.Status)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"queue_entry": dto.AdaptQueueEntryDto(entry)})
	}
}

func handleResumeQueueEntry(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var uriInput QueueEntryUriInput
		if err := c.ShouldBindUri(&uriInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewExecutionQueueUsecase()
		entry, err := usecase.ResumeEntry(ctx, uriInput.QueueEntryId)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"queue_entry": dto.AdaptQueueEntryDto(entry)})
	}
}

// handleProcessQueue drains the queue synchronously, as the worker job does on
// its schedule, and returns the result of every scenario it ran. Useful to run
// a just-enqueued scenario without waiting for the next tick.
func handleProcessQueue(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		collector := usecases.NewScenarioResultCollector(uc.ResultReporter)
		runner := uc.NewScenarioRunnerWithReporter(collector)
		if err := runner.RunPendingEntries(ctx); err != nil {
			presentError(ctx, c, err)
			return
		}

		reports := make([]dto.ScenarioRunReportDto, 0)
		for _, collected := range collector.Results() {
			reports = append(reports, dto.ScenarioRunReportDto{
				QueueEntryId: collected.Entry.Id,
				Result:       dto.AdaptScenarioResultDto(collected.Result),
			})
		}
		c.JSON(http.StatusOK, gin.H{"runs": reports})
	}
}

func handleQueueStats(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewExecutionQueueUsecase()
		stats, err := usecase.Stats(ctx)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": dto.AdaptQueueStatsDto(stats)})
	}
}
