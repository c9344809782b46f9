package dbmodels

import (
	"time"

	"github.com/voxdrive/voxdrive-backend/models"
)

type DBQueueEntry struct {
	Id             string    `db:"id"`
	TestScenarioId string    `db:"test_scenario_id"`
	TestRunId      string    `db:"test_run_id"`
	Priority       int       `db:"priority"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

const TABLE_QUEUE_ENTRIES = "test_execution_queue"

var SelectQueueEntryColumns = []string{
	"id",
	"test_scenario_id",
	"test_run_id",
	"priority",
	"status",
	"created_at",
	"updated_at",
}

func AdaptQueueEntry(db DBQueueEntry) (models.QueueEntry, error) {
	status, err := models.QueueEntryStatusFrom(db.Status)
	if err != nil {
		return models.QueueEntry{}, err
	}
	return models.QueueEntry{
		Id:             db.Id,
		TestScenarioId: db.TestScenarioId,
		TestRunId:      db.TestRunId,
		Priority:       db.Priority,
		Status:         status,
		CreatedAt:      db.CreatedAt,
		UpdatedAt:      db.UpdatedAt,
	}, nil
}
