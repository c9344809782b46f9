package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/voxdrive/voxdrive-backend/models"
)

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func ExecBuilder(ctx context.Context, exec Executor, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, errors.Wrap(err, "can't build sql query")
	}
	tag, err := exec.Exec(ctx, sql, args...)
	if err != nil {
		return pgconn.CommandTag{}, errors.Wrap(err, fmt.Sprintf("error executing sql query: %s", sql))
	}
	return tag, nil
}

func SqlToListOfModels[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("error executing sql query: %s", sql))
	}

	dbModels, err := pgx.CollectRows(rows, pgx.RowToStructByName[DBModel])
	if err != nil {
		return nil, errors.Wrap(err, "error collecting rows")
	}

	out := make([]Model, len(dbModels))
	for i := range dbModels {
		out[i], err = adapter(dbModels[i])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func SqlToOptionalModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	results, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}

	numberOfResults := len(results)
	if numberOfResults == 0 {
		return nil, nil
	}

	model := results[0]
	if numberOfResults > 1 {
		return nil, errors.Newf("expected 1 or 0 %T, got %d rows in the result", model, numberOfResults)
	}
	return &model, nil
}

func SqlToModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	model, err := SqlToOptionalModel(ctx, exec, query, adapter)
	var zeroModel Model
	if err != nil {
		return zeroModel, err
	}
	if model == nil {
		return zeroModel, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zeroModel))
	}
	return *model, nil
}

func SqlToListOfRow[Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(row pgx.CollectableRow) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("error executing sql query: %s", sql))
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Model, error) {
		return adapter(row)
	})
}
