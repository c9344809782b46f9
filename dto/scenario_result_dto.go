package dto

import (
	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/pure_utils"
)

type StepResultDto struct {
	Passed         bool    `json:"passed"`
	Score          float64 `json:"score"`
	DurationMs     int64   `json:"duration_ms"`
	FollowUpAction string  `json:"follow_up_action,omitempty"`
}

func AdaptStepResultDto(result models.StepResult) StepResultDto {
	return StepResultDto{
		Passed:         result.Passed,
		Score:          result.Score,
		DurationMs:     result.DurationMs,
		FollowUpAction: result.FollowUpAction,
	}
}

type ScenarioResultDto struct {
	Passed          bool            `json:"passed"`
	StepResults     []StepResultDto `json:"step_results"`
	TotalSteps      int             `json:"total_steps"`
	SuccessfulSteps int             `json:"successful_steps"`
	OverallScore    float64         `json:"overall_score"`
	PartialSuccess  bool            `json:"partial_success"`
	Recovered       bool            `json:"recovered"`
}

func AdaptScenarioResultDto(result models.ScenarioResult) ScenarioResultDto {
	return ScenarioResultDto{
		Passed:          result.Passed,
		StepResults:     pure_utils.Map(result.StepResults, AdaptStepResultDto),
		TotalSteps:      result.TotalSteps,
		SuccessfulSteps: result.SuccessfulSteps,
		OverallScore:    result.OverallScore,
		PartialSuccess:  result.PartialSuccess,
		Recovered:       result.Recovered,
	}
}

// ScenarioRunReportDto ties a scenario result to the queue entry it settled.
type ScenarioRunReportDto struct {
	QueueEntryId string            `json:"queue_entry_id"`
	Result       ScenarioResultDto `json:"result"`
}
