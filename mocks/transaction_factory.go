package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/voxdrive/voxdrive-backend/repositories"
)

type TransactionFactory struct {
	mock.Mock
	TxMock *Transaction
}

func (t *TransactionFactory) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	args := t.Called(ctx, fn)
	err := fn(t.TxMock)
	if err != nil {
		return err
	}
	return args.Error(0)
}

type ExecutorFactory struct {
	mock.Mock
	ExecMock *Executor
}

func (e *ExecutorFactory) NewExecutor() repositories.Executor {
	e.Called()
	return e.ExecMock
}
