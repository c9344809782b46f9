package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/repositories"
)

type ExecutionQueueRepository struct {
	mock.Mock
}

func (r *ExecutionQueueRepository) CreateQueueEntry(ctx context.Context, exec repositories.Executor,
	input models.CreateQueueEntryInput, newQueueEntryId string,
) error {
	args := r.Called(exec, input, newQueueEntryId)
	return args.Error(0)
}

func (r *ExecutionQueueRepository) GetQueueEntry(ctx context.Context, exec repositories.Executor,
	id string,
) (models.QueueEntry, error) {
	args := r.Called(exec, id)
	return args.Get(0).(models.QueueEntry), args.Error(1)
}

func (r *ExecutionQueueRepository) NextQueuedEntryForUpdate(ctx context.Context,
	tx repositories.Transaction,
) (*models.QueueEntry, error) {
	args := r.Called(tx)
	entry, _ := args.Get(0).(*models.QueueEntry)
	return entry, args.Error(1)
}

func (r *ExecutionQueueRepository) UpdateQueueEntryStatus(ctx context.Context, exec repositories.Executor,
	input models.UpdateQueueEntryStatusInput,
) (bool, error) {
	args := r.Called(exec, input)
	return args.Bool(0), args.Error(1)
}

func (r *ExecutionQueueRepository) CountQueueEntriesByStatus(ctx context.Context,
	exec repositories.Executor,
) (map[string]int, error) {
	args := r.Called(exec)
	return args.Get(0).(map[string]int), args.Error(1)
}

func (r *ExecutionQueueRepository) QueuedEntryAggregates(ctx context.Context,
	exec repositories.Executor,
) (*float64, *time.Time, error) {
	args := r.Called(exec)
	averagePriority, _ := args.Get(0).(*float64)
	oldestCreatedAt, _ := args.Get(1).(*time.Time)
	return averagePriority, oldestCreatedAt, args.Error(2)
}
