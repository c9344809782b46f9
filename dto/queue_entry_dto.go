package dto

import (
	"time"

	"github.com/voxdrive/voxdrive-backend/models"
)

type QueueEntryDto struct {
	Id             string    `json:"id"`
	TestScenarioId string    `json:"test_scenario_id"`
	TestRunId      string    `json:"test_run_id"`
	Priority       int       `json:"priority"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func AdaptQueueEntryDto(entry models.QueueEntry) QueueEntryDto {
	return QueueEntryDto{
		Id:             entry.Id,
		TestScenarioId: entry.TestScenarioId,
		TestRunId:      entry.TestRunId,
		Priority:       entry.Priority,
		Status:         entry.Status.String(),
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}

type CreateQueueEntryBody struct {
	TestScenarioId string `json:"test_scenario_id" binding:"required,uuid"`
	TestRunId      string `json:"test_run_id" binding:"required,uuid"`

	// Priority defaults when omitted; an explicit out-of-range value
	// (including 0) is rejected.
	Priority *int `json:"priority"`
}

func (body CreateQueueEntryBody) PriorityOrDefault() int {
	if body.Priority == nil {
		return models.DefaultQueuePriority
	}
	return *body.Priority
}

type UpdateQueueEntryStatusBody struct {
	Status string `json:"status" binding:"required"`
}

type QueueStatsDto struct {
	Total                  int            `json:"total"`
	CountsByStatus         map[string]int `json:"counts_by_status"`
	AverageQueuedPriority  float64        `json:"average_queued_priority"`
	OldestQueuedAgeSeconds *float64       `json:"oldest_queued_age_seconds,omitempty"`
}

func AdaptQueueStatsDto(stats models.QueueStats) QueueStatsDto {
	return QueueStatsDto{
		Total:                  stats.Total,
		CountsByStatus:         stats.CountsByStatus,
		AverageQueuedPriority:  stats.AverageQueuedPriority,
		OldestQueuedAgeSeconds: stats.OldestQueuedAgeSeconds,
	}
}
