package executor_factory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/voxdrive/voxdrive-backend/repositories"
)

// ExecutorFactoryStub hands out a pgxmock pool so repository tests can assert
// on the SQL that usecases produce.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

func (stub ExecutorFactoryStub) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	return fn(transactionStub{PgExecutorStub{stub.Mock}})
}

type transactionStub struct {
	PgExecutorStub
}

func (transactionStub) RawTx() pgx.Tx {
	return nil
}
