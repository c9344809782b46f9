package usecases

import (
	"strings"
	"time"

	"github.com/voxdrive/voxdrive-backend/models"
)

// StepOrchestrator scores one conversational turn and sequences multiple turns
// into a scenario result. It keeps no state between calls.
type StepOrchestrator struct {
	evaluator ToleranceEvaluator
}

func NewStepOrchestrator() StepOrchestrator {
	return StepOrchestrator{
		evaluator: NewToleranceEvaluator(),
	}
}

// ValidateStep scores the assistant's answer for one step. Steps without an
// expected outcome auto-pass. Literal content is compared by word-set
// (Jaccard) similarity; a structured contains-rule scores by the fraction of
// required substrings found; any other shape degrades to literal comparison of
// its raw text; absent content leaves the content score at 1.0. An answer
// below the threshold still passes when it exactly matches an acceptable
// alternate, and every step must additionally satisfy the outcome's tolerance
// rules (required entities, forbidden phrases, tone, length). Malformed
// expected content never raises.
func (orchestrator StepOrchestrator) ValidateStep(step models.ScenarioStep, actualResponse string) models.StepValidation {
	if step.Outcome == nil {
		return models.StepValidation{Passed: true, Score: 1.0, Method: models.ValidationMethodNone}
	}

	outcome := step.Outcome
	report := orchestrator.evaluator.EvaluateAll(*outcome, actualResponse)
	threshold := outcome.Threshold()

	var score float64
	var method models.ValidationMethod
	switch outcome.Content.Kind {
	case models.ExpectedContentNone:
		score = 1.0
		method = models.ValidationMethodNone
	case models.ExpectedContentContains:
		score = containsScore(outcome.Content.Contains, actualResponse)
		method = models.ValidationMethodContains
	default:
		score = jaccardSimilarity(outcome.Content.Stringified(), actualResponse)
		method = models.ValidationMethodSimilarity
	}

	passed := method == models.ValidationMethodNone || score >= threshold
	if !passed && report.Alternate.Matched {
		// an exactly matching acceptable alternate is as good as the
		// expected content
		passed = true
		score = 1.0
	}
	passed = passed && report.RulesPassed()

	return models.StepValidation{
		Passed:    passed,
		Score:     score,
		Method:    method,
		Tolerance: &report,
	}
}

// ExecuteStep times the validation and wraps it as a step result, copying
// through any declared follow-up action and resolving the outcome's next-step
// reference for the verdict.
func (orchestrator StepOrchestrator) ExecuteStep(step models.ScenarioStep, actualResponse string) models.StepResult {
	start := time.Now()
	validation := orchestrator.ValidateStep(step, actualResponse)
	result := models.StepResult{
		Passed:         validation.Passed,
		Score:          validation.Score,
		DurationMs:     time.Since(start).Milliseconds(),
		FollowUpAction: step.FollowUpAction,
		Tolerance:      validation.Tolerance,
	}
	if step.Outcome != nil {
		result.NextStep = orchestrator.evaluator.NextStep(*step.Outcome, validation.Passed)
	}
	return result
}

// ExecuteScenario runs every step of the script in step order against the
// correspondingly indexed response; a missing response is treated as an empty
// answer. Steps are never skipped on failure so the result carries a complete
// diagnostic trail.
func (orchestrator StepOrchestrator) ExecuteScenario(
	script models.ScenarioScript,
	responsesByStepOrder map[int]string,
) models.ScenarioResult {
	result := models.ScenarioResult{
		TotalSteps:  len(script.Steps),
		StepResults: make([]models.StepResult, 0, len(script.Steps)),
	}

	scoreSum := 0.0
	seenFailure := false
	for _, step := range script.Steps {
		stepResult := orchestrator.ExecuteStep(step, responsesByStepOrder[step.StepOrder])
		result.StepResults = append(result.StepResults, stepResult)
		scoreSum += stepResult.Score

		if stepResult.Passed {
			result.SuccessfulSteps++
			if seenFailure {
				result.Recovered = true
			}
		} else {
			seenFailure = true
		}
	}

	result.Passed = result.SuccessfulSteps == result.TotalSteps
	if result.TotalSteps > 0 {
		result.OverallScore = scoreSum / float64(result.TotalSteps)
	}
	result.PartialSuccess = script.AllowPartialSuccess &&
		!result.Passed && result.SuccessfulSteps > 0

	return result
}

// ProcessFollowUp dispatches a declared follow-up action. await_confirmation
// yields a pending outcome; the scenario runner turns it into a
// waiting_for_approval queue state resumable through the queue usecase.
func (orchestrator StepOrchestrator) ProcessFollowUp(action string) models.FollowUpOutcome {
	switch action {
	case models.FollowUpAwaitConfirmation:
		return models.FollowUpOutcome{
			Action:  action,
			Status:  models.FollowUpStatusPending,
			Message: "waiting for user confirmation",
		}
	case models.FollowUpRetry:
		return models.FollowUpOutcome{
			Action:  action,
			Status:  models.FollowUpStatusRetryScheduled,
			Message: "step retry scheduled",
		}
	case models.FollowUpEscalate:
		return models.FollowUpOutcome{
			Action:  action,
			Status:  models.FollowUpStatusEscalated,
			Message: "step escalated to a human reviewer",
		}
	case models.FollowUpSkip:
		return models.FollowUpOutcome{
			Action:  action,
			Status:  models.FollowUpStatusSkipped,
			Message: "step skipped",
		}
	}
	return models.FollowUpOutcome{
		Action: action,
		Status: models.FollowUpStatusUnknown,
	}
}

// jaccardSimilarity compares two utterances as case-folded word sets:
// |intersection| / |union|. Two empty utterances are identical; exactly one
// empty is a complete mismatch.
func jaccardSimilarity(expected, actual string) float64 {
	expectedWords := wordSet(expected)
	actualWords := wordSet(actual)

	if len(expectedWords) == 0 && len(actualWords) == 0 {
		return 1.0
	}
	if len(expectedWords) == 0 || len(actualWords) == 0 {
		return 0.0
	}

	intersection := 0
	for word := range expectedWords {
		if _, ok := actualWords[word]; ok {
			intersection++
		}
	}
	union := len(expectedWords) + len(actualWords) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

// containsScore is the fraction of required substrings found in the response,
// case-insensitively. An empty requirement list scores 1.0.
func containsScore(required []string, actual string) float64 {
	if len(required) == 0 {
		return 1.0
	}
	loweredActual := strings.ToLower(actual)
	found := 0
	for _, substring := range required {
		if strings.Contains(loweredActual, strings.ToLower(substring)) {
			found++
		}
	}
	return float64(found) / float64(len(required))
}
