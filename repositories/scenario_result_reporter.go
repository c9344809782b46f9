package repositories

import (
	"context"
	"fmt"

	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/utils"
)

// LoggingScenarioResultReporter forwards scenario results to the logs. The
// full reporting pipeline (dashboards, exports) consumes them from a separate
// service; this reporter is what the worker binary ships with.
type LoggingScenarioResultReporter struct{}

func (r LoggingScenarioResultReporter) ReportScenarioResult(
	ctx context.Context,
	entry models.QueueEntry,
	result models.ScenarioResult,
) error {
	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, fmt.Sprintf(
		"Scenario result for run %s: passed=%t partial=%t recovered=%t score=%.2f (%d/%d steps)",
		entry.TestRunId, result.Passed, result.PartialSuccess, result.Recovered,
		result.OverallScore, result.SuccessfulSteps, result.TotalSteps))

	for i, stepResult := range result.StepResults {
		if stepResult.Passed || stepResult.Tolerance == nil {
			continue
		}
		report := stepResult.Tolerance
		logger.InfoContext(ctx, fmt.Sprintf(
			"Step %d failed: score=%.2f missing entities=%v forbidden phrases=%v tone confidence=%.2f length ok=%t",
			i+1, stepResult.Score, report.Entities.MissingEntities,
			report.ForbiddenPhrases.FoundPhrases, report.Tone.Confidence, report.Length.Passed))
		if report.Alternate.BestAlternate != "" {
			logger.InfoContext(ctx, fmt.Sprintf(
				"Step %d closest acceptable alternate: %q (similarity %.2f)",
				i+1, report.Alternate.BestAlternate, report.Alternate.BestSimilarity))
		}
	}
	return nil
}
