package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/repositories/dbmodels"
)

func (repo *VoxdriveDbRepository) CreateQueueEntry(
	ctx context.Context,
	exec Executor,
	input models.CreateQueueEntryInput,
	newQueueEntryId string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_QUEUE_ENTRIES).
			Columns(
				"id",
				"test_scenario_id",
				"test_run_id",
				"priority",
				"status",
			).
			Values(
				newQueueEntryId,
				input.TestScenarioId,
				input.TestRunId,
				input.Priority,
				models.QueueEntryQueued.String(),
			),
	)
	return err
}

func (repo *VoxdriveDbRepository) GetQueueEntry(ctx context.Context, exec Executor, id string) (models.QueueEntry, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectQueueEntryColumns...).
		From(dbmodels.TABLE_QUEUE_ENTRIES).
		Where(squirrel.Eq{"id": id})

	entry, err := SqlToModel(ctx, exec, query, dbmodels.AdaptQueueEntry)
	if errors.Is(err, models.NotFoundError) {
		return models.QueueEntry{}, errors.Wrap(models.ErrUnknownQueueEntry, id)
	}
	return entry, err
}

// NextQueuedEntryForUpdate selects the queued entry to claim next: highest
// priority first, oldest creation time within a priority band. It must run
// inside a transaction; the row is locked until commit, and rows locked by
// concurrent workers are skipped so two pollers never select the same entry.
func (repo *VoxdriveDbRepository) NextQueuedEntryForUpdate(ctx context.Context, tx Transaction) (*models.QueueEntry, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectQueueEntryColumns...).
		From(dbmodels.TABLE_QUEUE_ENTRIES).
		Where(squirrel.Eq{"status": models.QueueEntryQueued.String()}).
		OrderBy("priority DESC", "created_at ASC").
		Limit(1).
		Suffix("FOR UPDATE SKIP LOCKED")

	return SqlToOptionalModel(ctx, tx, query, dbmodels.AdaptQueueEntry)
}

// UpdateQueueEntryStatus applies a status transition. When
// CurrentStatusCondition is set the update is guarded by it (optimistic
// locking) and the returned boolean reports whether this caller won the
// transition.
func (repo *VoxdriveDbRepository) UpdateQueueEntryStatus(
	ctx context.Context,
	exec Executor,
	input models.UpdateQueueEntryStatusInput,
) (bool, error) {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_QUEUE_ENTRIES).
		Set("status", input.Status.String()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": input.Id})

	if input.CurrentStatusCondition != nil {
		query = query.Where(squirrel.Eq{"status": input.CurrentStatusCondition.String()})
	}

	tag, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type dbStatusCount struct {
	Status string
	Count  int
}

func (repo *VoxdriveDbRepository) CountQueueEntriesByStatus(ctx context.Context, exec Executor) (map[string]int, error) {
	query := NewQueryBuilder().
		Select("status", "count(*)").
		From(dbmodels.TABLE_QUEUE_ENTRIES).
		GroupBy("status")

	counts, err := SqlToListOfRow(ctx, exec, query, func(row pgx.CollectableRow) (dbStatusCount, error) {
		var result dbStatusCount
		err := row.Scan(&result.Status, &result.Count)
		return result, err
	})
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int, len(counts))
	for _, count := range counts {
		byStatus[count.Status] = count.Count
	}
	return byStatus, nil
}

type queuedAggregates struct {
	AveragePriority *float64
	OldestCreatedAt *time.Time
}

// QueuedEntryAggregates returns the average priority and oldest creation time
// over the queued subset. Both values are nil when the queue is empty.
func (repo *VoxdriveDbRepository) QueuedEntryAggregates(
	ctx context.Context,
	exec Executor,
) (averagePriority *float64, oldestCreatedAt *time.Time, err error) {
	query := NewQueryBuilder().
		Select("avg(priority)", "min(created_at)").
		From(dbmodels.TABLE_QUEUE_ENTRIES).
		Where(squirrel.Eq{"status": models.QueueEntryQueued.String()})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, nil, errors.Wrap(err, "can't build sql query")
	}

	var aggregates queuedAggregates
	if err := exec.QueryRow(ctx, sql, args...).Scan(
		&aggregates.AveragePriority,
		&aggregates.OldestCreatedAt,
	); err != nil {
		return nil, nil, errors.Wrap(err, "error computing queue aggregates")
	}
	return aggregates.AveragePriority, aggregates.OldestCreatedAt, nil
}
