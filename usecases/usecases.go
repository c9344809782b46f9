package usecases

import (
	"github.com/voxdrive/voxdrive-backend/repositories"
	"github.com/voxdrive/voxdrive-backend/usecases/executor_factory"
)

// Usecases is the composition root: it owns the repository and the database
// executor getter and builds each usecase with its dependencies.
type Usecases struct {
	Repository     *repositories.VoxdriveDbRepository
	ExecutorGetter repositories.ExecutorGetter

	AssistantDriver AssistantDriver
	ResultReporter  ScenarioResultReporter

	WorkerConcurrency       int
	ResponseTimeThresholdMs float64
}

func (u Usecases) NewExecutorFactory() executor_factory.DbExecutorFactory {
	return executor_factory.NewDbExecutorFactory(u.ExecutorGetter)
}

func (u Usecases) NewExecutionQueueUsecase() ExecutionQueueUsecase {
	return NewExecutionQueueUsecase(
		u.NewExecutorFactory(),
		u.NewExecutorFactory(),
		u.Repository,
	)
}

func (u Usecases) NewExpectedOutcomeUsecase() ExpectedOutcomeUsecase {
	return NewExpectedOutcomeUsecase(
		u.NewExecutorFactory(),
		u.Repository,
	)
}

func (u Usecases) NewStepOrchestrator() StepOrchestrator {
	return NewStepOrchestrator()
}

func (u Usecases) NewScenarioRunner() ScenarioRunner {
	return u.NewScenarioRunnerWithReporter(u.ResultReporter)
}

// NewScenarioRunnerWithReporter builds a runner delivering results to the
// given reporter instead of the configured one, e.g. a collector for a caller
// that wants the results back.
func (u Usecases) NewScenarioRunnerWithReporter(reporter ScenarioResultReporter) ScenarioRunner {
	return NewScenarioRunner(
		u.NewExecutorFactory(),
		u.Repository,
		u.NewExecutionQueueUsecase(),
		u.AssistantDriver,
		reporter,
		u.WorkerConcurrency,
		u.ResponseTimeThresholdMs,
	)
}
