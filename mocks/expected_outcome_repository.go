package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/repositories"
)

type ExpectedOutcomeRepository struct {
	mock.Mock
}

func (r *ExpectedOutcomeRepository) GetExpectedOutcome(ctx context.Context, exec repositories.Executor,
	id string,
) (models.ExpectedOutcome, error) {
	args := r.Called(exec, id)
	return args.Get(0).(models.ExpectedOutcome), args.Error(1)
}

func (r *ExpectedOutcomeRepository) UpdateAcceptableAlternates(ctx context.Context, exec repositories.Executor,
	outcomeId string, alternates []string,
) error {
	args := r.Called(exec, outcomeId, alternates)
	return args.Error(0)
}
