package models

import (
	"time"
)

const (
	MinQueuePriority     = 1
	MaxQueuePriority     = 10
	DefaultQueuePriority = 5
)

// QueueEntry is one unit of dispatchable work: "run this scenario for that test
// run". Its status column is the single piece of shared mutable state between
// concurrent workers.
type QueueEntry struct {
	Id             string
	TestScenarioId string
	TestRunId      string
	Priority       int
	Status         QueueEntryStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type QueueEntryStatus int

const (
	QueueEntryQueued QueueEntryStatus = iota
	QueueEntryProcessing
	QueueEntryCompleted
	QueueEntryFailed
	QueueEntryWaitingForApproval
)

func (s QueueEntryStatus) String() string {
	switch s {
	case QueueEntryQueued:
		return "queued"
	case QueueEntryProcessing:
		return "processing"
	case QueueEntryCompleted:
		return "completed"
	case QueueEntryFailed:
		return "failed"
	case QueueEntryWaitingForApproval:
		return "waiting_for_approval"
	}
	return "queued"
}

// QueueEntryStatusFrom parses a status string, returning ErrInvalidStatus for
// anything outside the recognized lifecycle.
func QueueEntryStatusFrom(s string) (QueueEntryStatus, error) {
	switch s {
	case "queued":
		return QueueEntryQueued, nil
	case "processing":
		return QueueEntryProcessing, nil
	case "completed":
		return QueueEntryCompleted, nil
	case "failed":
		return QueueEntryFailed, nil
	case "waiting_for_approval":
		return QueueEntryWaitingForApproval, nil
	}
	return QueueEntryQueued, ErrInvalidStatus
}

type CreateQueueEntryInput struct {
	TestScenarioId string
	TestRunId      string
	Priority       int
}

func (input CreateQueueEntryInput) Validate() error {
	if input.Priority < MinQueuePriority || input.Priority > MaxQueuePriority {
		return ErrInvalidPriority
	}
	return nil
}

type UpdateQueueEntryStatusInput struct {
	Id     string
	Status QueueEntryStatus

	// CurrentStatusCondition is used for optimistic locking: the update only
	// applies if the entry still holds this status.
	CurrentStatusCondition *QueueEntryStatus
}

type QueueStats struct {
	Total                 int
	CountsByStatus        map[string]int
	AverageQueuedPriority float64

	// OldestQueuedAgeSeconds is nil when no entry is queued.
	OldestQueuedAgeSeconds *float64
}
