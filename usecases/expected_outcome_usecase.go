package usecases

import (
	"context"

	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/repositories"
	"github.com/voxdrive/voxdrive-backend/usecases/executor_factory"
)

type ExpectedOutcomeRepository interface {
	GetExpectedOutcome(ctx context.Context, exec repositories.Executor, id string) (models.ExpectedOutcome, error)
	UpdateAcceptableAlternates(ctx context.Context, exec repositories.Executor,
		outcomeId string, alternates []string) error
}

// ExpectedOutcomeUsecase manages the acceptable-alternates list of an outcome.
// Adding is idempotent and removing an absent alternate is a no-op, so the
// persisted list never contains duplicates.
type ExpectedOutcomeUsecase struct {
	transactionFactory executor_factory.TransactionFactory
	repository         ExpectedOutcomeRepository
}

func NewExpectedOutcomeUsecase(
	transactionFactory executor_factory.TransactionFactory,
	repository ExpectedOutcomeRepository,
) ExpectedOutcomeUsecase {
	return ExpectedOutcomeUsecase{
		transactionFactory: transactionFactory,
		repository:         repository,
	}
}

func (usecase ExpectedOutcomeUsecase) AddAcceptableAlternate(
	ctx context.Context,
	outcomeId string,
	alternate string,
) (models.ExpectedOutcome, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ExpectedOutcome, error) {
			outcome, err := usecase.repository.GetExpectedOutcome(ctx, tx, outcomeId)
			if err != nil {
				return models.ExpectedOutcome{}, err
			}

			outcome.AddAcceptableAlternate(alternate)
			if err := usecase.repository.UpdateAcceptableAlternates(
				ctx, tx, outcomeId, outcome.AcceptableAlternates); err != nil {
				return models.ExpectedOutcome{}, err
			}
			return outcome, nil
		})
}

func (usecase ExpectedOutcomeUsecase) RemoveAcceptableAlternate(
	ctx context.Context,
	outcomeId string,
	alternate string,
) (models.ExpectedOutcome, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.ExpectedOutcome, error) {
			outcome, err := usecase.repository.GetExpectedOutcome(ctx, tx, outcomeId)
			if err != nil {
				return models.ExpectedOutcome{}, err
			}

			outcome.RemoveAcceptableAlternate(alternate)
			if err := usecase.repository.UpdateAcceptableAlternates(
				ctx, tx, outcomeId, outcome.AcceptableAlternates); err != nil {
				return models.ExpectedOutcome{}, err
			}
			return outcome, nil
		})
}
