package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/repositories"
)

type ScenarioRunnerRepository struct {
	mock.Mock
}

func (r *ScenarioRunnerRepository) GetScenarioScript(ctx context.Context, exec repositories.Executor,
	scriptId string,
) (models.ScenarioScript, error) {
	args := r.Called(exec, scriptId)
	return args.Get(0).(models.ScenarioScript), args.Error(1)
}

func (r *ScenarioRunnerRepository) UpdateQueueEntryStatus(ctx context.Context, exec repositories.Executor,
	input models.UpdateQueueEntryStatusInput,
) (bool, error) {
	args := r.Called(exec, input)
	return args.Bool(0), args.Error(1)
}

type AssistantDriver struct {
	mock.Mock
}

func (d *AssistantDriver) Respond(ctx context.Context, step models.ScenarioStep) (string, error) {
	args := d.Called(step)
	return args.String(0), args.Error(1)
}

type ScenarioResultReporter struct {
	mock.Mock
}

func (r *ScenarioResultReporter) ReportScenarioResult(ctx context.Context, entry models.QueueEntry,
	result models.ScenarioResult,
) error {
	args := r.Called(entry, result)
	return args.Error(0)
}
