package dto

import (
	"github.com/voxdrive/voxdrive-backend/models"
)

type ExpectedOutcomeDto struct {
	Id                   string   `json:"id"`
	StepId               string   `json:"step_id"`
	ToleranceThreshold   float64  `json:"tolerance_threshold"`
	AcceptableAlternates []string `json:"acceptable_alternates"`
	ConfirmationRequired bool     `json:"confirmation_required"`
	RequiredEntities     []string `json:"required_entities"`
	ForbiddenPhrases     []string `json:"forbidden_phrases"`
	ToneRequirement      string   `json:"tone_requirement,omitempty"`
	MaxResponseLength    *int     `json:"max_response_length,omitempty"`
}

func AdaptExpectedOutcomeDto(outcome models.ExpectedOutcome) ExpectedOutcomeDto {
	return ExpectedOutcomeDto{
		Id:                   outcome.Id,
		StepId:               outcome.StepId,
		ToleranceThreshold:   outcome.Threshold(),
		AcceptableAlternates: outcome.AcceptableAlternates,
		ConfirmationRequired: outcome.ConfirmationRequired,
		RequiredEntities:     outcome.RequiredEntities,
		ForbiddenPhrases:     outcome.ForbiddenPhrases,
		ToneRequirement:      outcome.ToneRequirement,
		MaxResponseLength:    outcome.MaxResponseLength,
	}
}

type AlternateBody struct {
	Alternate string `json:"alternate" binding:"required"`
}
