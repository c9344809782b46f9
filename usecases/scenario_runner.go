package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/repositories"
	"github.com/voxdrive/voxdrive-backend/usecases/executor_factory"
	"github.com/voxdrive/voxdrive-backend/utils"
)

type ScenarioRunnerRepository interface {
	GetScenarioScript(ctx context.Context, exec repositories.Executor, scriptId string) (models.ScenarioScript, error)
	UpdateQueueEntryStatus(ctx context.Context, exec repositories.Executor,
		input models.UpdateQueueEntryStatusInput) (bool, error)
}

// AssistantDriver plays one conversational turn against the voice assistant
// under test and returns its transcribed answer.
type AssistantDriver interface {
	Respond(ctx context.Context, step models.ScenarioStep) (string, error)
}

// ScenarioResultReporter hands finished results to the reporting collaborator.
type ScenarioResultReporter interface {
	ReportScenarioResult(ctx context.Context, entry models.QueueEntry, result models.ScenarioResult) error
}

// ScenarioRunner is the worker side of the engine: it drains the execution
// queue, plays each claimed scenario against the assistant and persists the
// outcome as the entry's final status. Independent scenarios run concurrently;
// the turns of one scenario run strictly in order.
type ScenarioRunner struct {
	executorFactory executor_factory.ExecutorFactory
	repository      ScenarioRunnerRepository
	queue           ExecutionQueueUsecase
	orchestrator    StepOrchestrator
	timeValidator   ResponseTimeValidator
	driver          AssistantDriver
	reporter        ScenarioResultReporter
	maxConcurrency  int

	// responseTimeThresholdMs is the latency a single assistant answer is
	// scored against; 0 disables timing scores.
	responseTimeThresholdMs float64
}

func NewScenarioRunner(
	executorFactory executor_factory.ExecutorFactory,
	repository ScenarioRunnerRepository,
	queue ExecutionQueueUsecase,
	driver AssistantDriver,
	reporter ScenarioResultReporter,
	maxConcurrency int,
	responseTimeThresholdMs float64,
) ScenarioRunner {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return ScenarioRunner{
		executorFactory:         executorFactory,
		repository:              repository,
		queue:                   queue,
		orchestrator:            NewStepOrchestrator(),
		timeValidator:           NewResponseTimeValidator(),
		driver:                  driver,
		reporter:                reporter,
		maxConcurrency:          maxConcurrency,
		responseTimeThresholdMs: responseTimeThresholdMs,
	}
}

// RunPendingEntries drains the queue: it keeps claiming entries until a poll
// comes back empty, running up to maxConcurrency scenarios in parallel.
func (runner ScenarioRunner) RunPendingEntries(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runner.maxConcurrency)

	for {
		entry, err := retry.DoWithData(
			func() (*models.QueueEntry, error) {
				return runner.queue.Dequeue(groupCtx)
			},
			retry.Context(groupCtx),
			retry.Attempts(3),
			retry.LastErrorOnly(true),
		)
		if err != nil {
			return errors.Join(err, group.Wait())
		}
		if entry == nil {
			break
		}

		logger.InfoContext(ctx, fmt.Sprintf("Claimed queue entry %s (priority %d)", entry.Id, entry.Priority))
		group.Go(func() error {
			return runner.runClaimedEntry(groupCtx, *entry)
		})
	}

	return group.Wait()
}

// runClaimedEntry executes one already-claimed scenario and settles the
// entry's final status.
func (runner ScenarioRunner) runClaimedEntry(ctx context.Context, entry models.QueueEntry) error {
	exec := runner.executorFactory.NewExecutor()
	logger := utils.LoggerFromContext(ctx)

	script, err := runner.repository.GetScenarioScript(ctx, exec, entry.TestScenarioId)
	if err != nil {
		return errors.Join(err, runner.settleEntry(ctx, entry.Id, models.QueueEntryFailed))
	}

	responses, latenciesMs, err := runner.collectResponses(ctx, script)
	if err != nil {
		return errors.Join(err, runner.settleEntry(ctx, entry.Id, models.QueueEntryFailed))
	}

	result := runner.orchestrator.ExecuteScenario(script, responses)

	if runner.responseTimeThresholdMs > 0 && len(latenciesMs) > 0 {
		timingScore := runner.timeValidator.ValidateSamples(latenciesMs, runner.responseTimeThresholdMs)
		logger.InfoContext(ctx, fmt.Sprintf(
			"Scenario %s response time score %.2f over %d turns", script.Id, timingScore, len(latenciesMs)))
	}

	if runner.reporter != nil {
		if err := runner.reporter.ReportScenarioResult(ctx, entry, result); err != nil {
			logger.ErrorContext(ctx, fmt.Sprintf("Could not report result for entry %s: %v", entry.Id, err))
		}
	}

	finalStatus := models.QueueEntryFailed
	switch {
	case runner.awaitsConfirmation(script, result):
		finalStatus = models.QueueEntryWaitingForApproval
	case result.Passed:
		finalStatus = models.QueueEntryCompleted
	}

	logger.InfoContext(ctx, fmt.Sprintf(
		"Scenario %s finished: %d/%d steps passed, overall score %.2f, entry %s -> %s",
		script.Id, result.SuccessfulSteps, result.TotalSteps, result.OverallScore, entry.Id, finalStatus))

	return runner.settleEntry(ctx, entry.Id, finalStatus)
}

// collectResponses plays the scenario's turns in order. A turn the driver
// cannot answer is recorded as an empty response rather than aborting, so the
// scenario still produces a complete scored trail.
func (runner ScenarioRunner) collectResponses(
	ctx context.Context,
	script models.ScenarioScript,
) (map[int]string, []float64, error) {
	responses := make(map[int]string, len(script.Steps))
	latenciesMs := make([]float64, 0, len(script.Steps))
	for _, step := range script.Steps {
		start := time.Now()
		response, err := runner.driver.Respond(ctx, step)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, err
			}
			utils.LoggerFromContext(ctx).ErrorContext(ctx, fmt.Sprintf(
				"Assistant gave no answer for step %d of scenario %s: %v", step.StepOrder, script.Id, err))
			response = ""
		} else {
			latenciesMs = append(latenciesMs, float64(time.Since(start).Milliseconds()))
		}
		responses[step.StepOrder] = response
	}
	return responses, latenciesMs, nil
}

// awaitsConfirmation reports whether a failed confirmation-required step asked
// to wait for a human before the scenario can be settled.
func (runner ScenarioRunner) awaitsConfirmation(script models.ScenarioScript, result models.ScenarioResult) bool {
	for i, step := range script.Steps {
		if i >= len(result.StepResults) || result.StepResults[i].Passed {
			continue
		}
		if step.FollowUpAction != models.FollowUpAwaitConfirmation {
			continue
		}
		if step.Outcome != nil && step.Outcome.ConfirmationRequired {
			followUp := runner.orchestrator.ProcessFollowUp(step.FollowUpAction)
			if followUp.Status == models.FollowUpStatusPending {
				return true
			}
		}
	}
	return false
}

// settleEntry moves a processing entry to its terminal (or resumable) status.
// The transition is guarded by the processing status so a concurrent explicit
// status update cannot be overwritten.
func (runner ScenarioRunner) settleEntry(ctx context.Context, entryId string, status models.QueueEntryStatus) error {
	exec := runner.executorFactory.NewExecutor()

	currentStatus := models.QueueEntryProcessing
	done, err := runner.repository.UpdateQueueEntryStatus(ctx, exec, models.UpdateQueueEntryStatusInput{
		Id:                     entryId,
		Status:                 status,
		CurrentStatusCondition: &currentStatus,
	})
	if err != nil {
		return err
	}
	if !done {
		utils.LoggerFromContext(ctx).InfoContext(ctx, fmt.Sprintf(
			"Queue entry %s already left the processing state", entryId))
	}
	return nil
}
