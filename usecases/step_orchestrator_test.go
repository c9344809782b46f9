package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/pure_utils"
)

func stepWithContent(order int, raw string) models.ScenarioStep {
	return models.ScenarioStep{
		StepOrder: order,
		Outcome: &models.ExpectedOutcome{
			Content: models.ExpectedContentFrom(raw),
		},
	}
}

func TestValidateStep(t *testing.T) {
	orchestrator := NewStepOrchestrator()

	t.Run("no outcome auto-passes", func(t *testing.T) {
		validation := orchestrator.ValidateStep(models.ScenarioStep{}, "anything")
		assert.True(t, validation.Passed)
		assert.Equal(t, 1.0, validation.Score)
		assert.Equal(t, models.ValidationMethodNone, validation.Method)
	})

	t.Run("no expected content auto-passes", func(t *testing.T) {
		validation := orchestrator.ValidateStep(stepWithContent(1, ""), "anything")
		assert.True(t, validation.Passed)
		assert.Equal(t, models.ValidationMethodNone, validation.Method)
	})

	t.Run("identical literal content passes", func(t *testing.T) {
		step := stepWithContent(1, "your ride is confirmed")
		validation := orchestrator.ValidateStep(step, "Your ride is confirmed")
		assert.True(t, validation.Passed)
		assert.Equal(t, 1.0, validation.Score)
		assert.Equal(t, models.ValidationMethodSimilarity, validation.Method)
	})

	t.Run("dissimilar literal content fails", func(t *testing.T) {
		step := stepWithContent(1, "your ride is confirmed")
		validation := orchestrator.ValidateStep(step, "the weather is sunny today")
		assert.False(t, validation.Passed)
		assert.Less(t, validation.Score, models.DefaultToleranceThreshold)
	})

	t.Run("contains rule passes when all substrings found", func(t *testing.T) {
		step := stepWithContent(1, `{"contains": ["confirmed", "booked"]}`)
		validation := orchestrator.ValidateStep(step, "Your trip is booked and confirmed")
		assert.True(t, validation.Passed)
		assert.Equal(t, 1.0, validation.Score)
		assert.Equal(t, models.ValidationMethodContains, validation.Method)
	})

	t.Run("contains rule scores the found fraction", func(t *testing.T) {
		step := stepWithContent(1, `{"contains": ["confirmed", "booked"]}`)
		validation := orchestrator.ValidateStep(step, "Your trip is confirmed")
		assert.False(t, validation.Passed)
		assert.Equal(t, 0.5, validation.Score)
	})

	t.Run("contains rule honors a lowered threshold", func(t *testing.T) {
		step := stepWithContent(1, `{"contains": ["confirmed", "booked"]}`)
		step.Outcome.ToleranceThreshold = pure_utils.Ptr(0.5)
		validation := orchestrator.ValidateStep(step, "Your trip is confirmed")
		assert.True(t, validation.Passed)
	})

	t.Run("an authored zero threshold accepts any score", func(t *testing.T) {
		step := stepWithContent(1, "your ride is confirmed")
		step.Outcome.ToleranceThreshold = pure_utils.Ptr(0.0)
		validation := orchestrator.ValidateStep(step, "something else entirely")
		assert.True(t, validation.Passed)
	})

	t.Run("acceptable alternate rescues a low content score", func(t *testing.T) {
		step := stepWithContent(1, "your ride is confirmed")
		step.Outcome.AcceptableAlternates = []string{"The booking is all set"}
		validation := orchestrator.ValidateStep(step, "The booking is all set")
		assert.True(t, validation.Passed)
		assert.Equal(t, 1.0, validation.Score)
		if assert.NotNil(t, validation.Tolerance) {
			assert.True(t, validation.Tolerance.Alternate.Matched)
		}
	})

	t.Run("violated tolerance rules fail a matching answer", func(t *testing.T) {
		step := stepWithContent(1, "I cannot book that ride")
		step.Outcome.ForbiddenPhrases = []string{"I cannot"}
		validation := orchestrator.ValidateStep(step, "I cannot book that ride")
		assert.False(t, validation.Passed)
		if assert.NotNil(t, validation.Tolerance) {
			assert.Equal(t, []string{"I cannot"}, validation.Tolerance.ForbiddenPhrases.FoundPhrases)
		}
	})

	t.Run("rules gate steps without expected content", func(t *testing.T) {
		step := stepWithContent(1, "")
		step.Outcome.RequiredEntities = []string{"Monday"}
		step.Outcome.ForbiddenPhrases = []string{"error"}
		step.Outcome.MaxResponseLength = pure_utils.Ptr(10)
		validation := orchestrator.ValidateStep(step, "an error occurred while booking")
		assert.False(t, validation.Passed)
		assert.Equal(t, models.ValidationMethodNone, validation.Method)
	})

	t.Run("unstructured object degrades to literal comparison", func(t *testing.T) {
		raw := `{"intent": "book_ride"}`
		step := stepWithContent(1, raw)
		validation := orchestrator.ValidateStep(step, raw)
		assert.True(t, validation.Passed)
		assert.Equal(t, models.ValidationMethodSimilarity, validation.Method)
	})
}

func TestExecuteScenario(t *testing.T) {
	orchestrator := NewStepOrchestrator()

	t.Run("all steps pass", func(t *testing.T) {
		script := models.ScenarioScript{
			Steps: []models.ScenarioStep{
				stepWithContent(1, "hello there"),
				stepWithContent(2, "goodbye now"),
			},
		}
		result := orchestrator.ExecuteScenario(script, map[int]string{
			1: "hello there",
			2: "goodbye now",
		})

		assert.True(t, result.Passed)
		assert.Equal(t, 2, result.TotalSteps)
		assert.Equal(t, 2, result.SuccessfulSteps)
		assert.Equal(t, 1.0, result.OverallScore)
		assert.False(t, result.PartialSuccess)
		assert.False(t, result.Recovered)
	})

	t.Run("pass fail pass with partial success allowed", func(t *testing.T) {
		script := models.ScenarioScript{
			AllowPartialSuccess: true,
			Steps: []models.ScenarioStep{
				stepWithContent(1, "hello there"),
				stepWithContent(2, "your ride is confirmed"),
				stepWithContent(3, "goodbye now"),
			},
		}
		result := orchestrator.ExecuteScenario(script, map[int]string{
			1: "hello there",
			2: "something else entirely wrong",
			3: "goodbye now",
		})

		assert.False(t, result.Passed)
		assert.True(t, result.PartialSuccess)
		assert.True(t, result.Recovered)
		assert.Equal(t, 2, result.SuccessfulSteps)
		assert.Len(t, result.StepResults, 3)
	})

	t.Run("missing response is an empty answer", func(t *testing.T) {
		script := models.ScenarioScript{
			Steps: []models.ScenarioStep{
				stepWithContent(1, "your ride is confirmed"),
			},
		}
		result := orchestrator.ExecuteScenario(script, map[int]string{})

		assert.False(t, result.Passed)
		assert.Equal(t, 0.0, result.StepResults[0].Score)
	})

	t.Run("failure does not skip later steps", func(t *testing.T) {
		script := models.ScenarioScript{
			Steps: []models.ScenarioStep{
				stepWithContent(1, "your ride is confirmed"),
				stepWithContent(2, "goodbye now"),
			},
		}
		result := orchestrator.ExecuteScenario(script, map[int]string{
			2: "goodbye now",
		})

		assert.Len(t, result.StepResults, 2)
		assert.True(t, result.StepResults[1].Passed)
		assert.False(t, result.PartialSuccess)
	})

	t.Run("empty script", func(t *testing.T) {
		result := orchestrator.ExecuteScenario(models.ScenarioScript{}, nil)
		assert.True(t, result.Passed)
		assert.Zero(t, result.OverallScore)
	})

	t.Run("rule violations fail a step whose content matches", func(t *testing.T) {
		step := stepWithContent(1, "I am sorry, I cannot book that ride")
		step.Outcome.RequiredEntities = []string{"airport"}
		step.Outcome.ForbiddenPhrases = []string{"I cannot"}
		step.Outcome.MaxResponseLength = pure_utils.Ptr(20)
		script := models.ScenarioScript{Steps: []models.ScenarioStep{step}}

		result := orchestrator.ExecuteScenario(script, map[int]string{
			1: "I am sorry, I cannot book that ride",
		})

		assert.False(t, result.Passed)
		assert.Equal(t, 0, result.SuccessfulSteps)
		report := result.StepResults[0].Tolerance
		if assert.NotNil(t, report) {
			assert.Equal(t, []string{"airport"}, report.Entities.MissingEntities)
			assert.Equal(t, []string{"I cannot"}, report.ForbiddenPhrases.FoundPhrases)
			assert.False(t, report.Length.Passed)
		}
	})

	t.Run("step results carry the outcome's next step for the verdict", func(t *testing.T) {
		passing := stepWithContent(1, "hello there")
		passing.Outcome.NextStepOnSuccess = pure_utils.Ptr(3)
		failing := stepWithContent(2, "your ride is confirmed")
		failing.Outcome.NextStepOnFailure = pure_utils.Ptr(1)
		script := models.ScenarioScript{Steps: []models.ScenarioStep{passing, failing}}

		result := orchestrator.ExecuteScenario(script, map[int]string{
			1: "hello there",
			2: "something else entirely wrong",
		})

		if assert.NotNil(t, result.StepResults[0].NextStep) {
			assert.Equal(t, 3, *result.StepResults[0].NextStep)
		}
		if assert.NotNil(t, result.StepResults[1].NextStep) {
			assert.Equal(t, 1, *result.StepResults[1].NextStep)
		}
	})
}

func TestProcessFollowUp(t *testing.T) {
	orchestrator := NewStepOrchestrator()

	outcome := orchestrator.ProcessFollowUp(models.FollowUpAwaitConfirmation)
	assert.Equal(t, models.FollowUpStatusPending, outcome.Status)

	outcome = orchestrator.ProcessFollowUp(models.FollowUpRetry)
	assert.Equal(t, models.FollowUpStatusRetryScheduled, outcome.Status)

	outcome = orchestrator.ProcessFollowUp(models.FollowUpEscalate)
	assert.Equal(t, models.FollowUpStatusEscalated, outcome.Status)

	outcome = orchestrator.ProcessFollowUp(models.FollowUpSkip)
	assert.Equal(t, models.FollowUpStatusSkipped, outcome.Status)

	outcome = orchestrator.ProcessFollowUp("dance")
	assert.Equal(t, models.FollowUpStatusUnknown, outcome.Status)
}

func TestJaccardSimilarity(t *testing.T) {
	t.Run("both empty", func(t *testing.T) {
		assert.Equal(t, 1.0, jaccardSimilarity("", ""))
	})

	t.Run("one empty", func(t *testing.T) {
		assert.Equal(t, 0.0, jaccardSimilarity("hello", ""))
		assert.Equal(t, 0.0, jaccardSimilarity("", "hello"))
	})

	t.Run("case and order insensitive", func(t *testing.T) {
		assert.Equal(t, 1.0, jaccardSimilarity("Hello World", "world hello"))
	})

	t.Run("partial overlap", func(t *testing.T) {
		// {a,b} vs {b,c}: one of three distinct words shared.
		assert.InDelta(t, 1.0/3.0, jaccardSimilarity("a b", "b c"), 1e-9)
	})

	t.Run("repeated words count once", func(t *testing.T) {
		assert.Equal(t, 1.0, jaccardSimilarity("go go go", "go"))
	})
}
