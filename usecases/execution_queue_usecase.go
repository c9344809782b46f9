package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/repositories"
	"github.com/voxdrive/voxdrive-backend/usecases/executor_factory"
	"github.com/voxdrive/voxdrive-backend/utils"
)

type ExecutionQueueRepository interface {
	CreateQueueEntry(ctx context.Context, exec repositories.Executor,
		input models.CreateQueueEntryInput, newQueueEntryId string) error
	GetQueueEntry(ctx context.Context, exec repositories.Executor, id string) (models.QueueEntry, error)
	NextQueuedEntryForUpdate(ctx context.Context, tx repositories.Transaction) (*models.QueueEntry, error)
	UpdateQueueEntryStatus(ctx context.Context, exec repositories.Executor,
		input models.UpdateQueueEntryStatusInput) (bool, error)
	CountQueueEntriesByStatus(ctx context.Context, exec repositories.Executor) (map[string]int, error)
	QueuedEntryAggregates(ctx context.Context, exec repositories.Executor) (*float64, *time.Time, error)
}

// ExecutionQueueUsecase is the scheduling side of the orchestration engine:
// a priority-ordered work queue over persisted entries, claimed atomically by
// concurrent workers.
type ExecutionQueueUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         ExecutionQueueRepository
}

func NewExecutionQueueUsecase(
	executorFactory executor_factory.ExecutorFactory,
	transactionFactory executor_factory.TransactionFactory,
	repository ExecutionQueueRepository,
) ExecutionQueueUsecase {
	return ExecutionQueueUsecase{
		executorFactory:    executorFactory,
		transactionFactory: transactionFactory,
		repository:         repository,
	}
}

// Enqueue creates a queue entry in the queued state. The priority must lie in
// [1,10]; violations are rejected before any state change. Callers that want
// the default priority pass models.DefaultQueuePriority explicitly.
func (usecase ExecutionQueueUsecase) Enqueue(ctx context.Context, input models.CreateQueueEntryInput) (models.QueueEntry, error) {
	if err := input.Validate(); err != nil {
		return models.QueueEntry{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	newQueueEntryId := uuid.NewString()
	if err := usecase.repository.CreateQueueEntry(ctx, exec, input, newQueueEntryId); err != nil {
		if repositories.IsUniqueViolationError(err) {
			return models.QueueEntry{}, errors.Wrap(models.ConflictError,
				fmt.Sprintf("queue entry %s already exists", newQueueEntryId))
		}
		return models.QueueEntry{}, err
	}
	return usecase.repository.GetQueueEntry(ctx, exec, newQueueEntryId)
}

// Dequeue claims the queued entry with the highest priority, ties broken by
// earliest creation time. Selection and the transition to processing happen in
// one transaction over a locking read that skips rows claimed by concurrent
// workers, so at most one worker ever holds a given entry. An empty queue is a
// normal nil result.
func (usecase ExecutionQueueUsecase) Dequeue(ctx context.Context) (*models.QueueEntry, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (*models.QueueEntry, error) {
			entry, err := usecase.repository.NextQueuedEntryForUpdate(ctx, tx)
			if err != nil || entry == nil {
				return nil, err
			}

			currentStatus := models.QueueEntryQueued
			done, err := usecase.repository.UpdateQueueEntryStatus(ctx, tx, models.UpdateQueueEntryStatusInput{
				Id:                     entry.Id,
				Status:                 models.QueueEntryProcessing,
				CurrentStatusCondition: &currentStatus,
			})
			if err != nil {
				return nil, err
			}
			if !done {
				// The row is locked by this transaction, so losing the
				// conditional update here means the entry left the queued
				// state in the meantime; treat it as an empty poll.
				return nil, nil
			}

			entry.Status = models.QueueEntryProcessing
			return entry, nil
		})
}

// UpdateStatus applies an explicit transition. Requesting the entry's current
// status is an idempotent no-op.
func (usecase ExecutionQueueUsecase) UpdateStatus(ctx context.Context, id string, newStatus string) (models.QueueEntry, error) {
	status, err := models.QueueEntryStatusFrom(newStatus)
	if err != nil {
		return models.QueueEntry{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	entry, err := usecase.repository.GetQueueEntry(ctx, exec, id)
	if err != nil {
		return models.QueueEntry{}, err
	}
	if entry.Status == status {
		return entry, nil
	}

	if _, err := usecase.repository.UpdateQueueEntryStatus(ctx, exec, models.UpdateQueueEntryStatusInput{
		Id:     id,
		Status: status,
	}); err != nil {
		return models.QueueEntry{}, err
	}
	return usecase.repository.GetQueueEntry(ctx, exec, id)
}

// ResumeEntry moves a waiting_for_approval entry back to queued so a worker
// can pick the scenario up again after a human confirmed the pending step.
func (usecase ExecutionQueueUsecase) ResumeEntry(ctx context.Context, id string) (models.QueueEntry, error) {
	exec := usecase.executorFactory.NewExecutor()
	if _, err := usecase.repository.GetQueueEntry(ctx, exec, id); err != nil {
		return models.QueueEntry{}, err
	}

	currentStatus := models.QueueEntryWaitingForApproval
	done, err := usecase.repository.UpdateQueueEntryStatus(ctx, exec, models.UpdateQueueEntryStatusInput{
		Id:                     id,
		Status:                 models.QueueEntryQueued,
		CurrentStatusCondition: &currentStatus,
	})
	if err != nil {
		return models.QueueEntry{}, err
	}
	if !done {
		return models.QueueEntry{}, models.ErrEntryNotResumable
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, fmt.Sprintf("Queue entry %s resumed", id))
	return usecase.repository.GetQueueEntry(ctx, exec, id)
}

// Stats reports the queue composition: totals per status, average priority of
// the queued subset and the age of its oldest entry.
func (usecase ExecutionQueueUsecase) Stats(ctx context.Context) (models.QueueStats, error) {
	exec := usecase.executorFactory.NewExecutor()

	countsByStatus, err := usecase.repository.CountQueueEntriesByStatus(ctx, exec)
	if err != nil {
		return models.QueueStats{}, err
	}

	stats := models.QueueStats{
		CountsByStatus: countsByStatus,
	}
	for _, count := range countsByStatus {
		stats.Total += count
	}

	averagePriority, oldestCreatedAt, err := usecase.repository.QueuedEntryAggregates(ctx, exec)
	if err != nil {
		return models.QueueStats{}, err
	}
	if averagePriority != nil {
		stats.AverageQueuedPriority = *averagePriority
	}
	if oldestCreatedAt != nil {
		age := time.Since(*oldestCreatedAt).Seconds()
		stats.OldestQueuedAgeSeconds = &age
	}
	return stats, nil
}
