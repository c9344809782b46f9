package dbmodels

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/voxdrive/voxdrive-backend/models"
)

type DBExpectedOutcome struct {
	Id                      string      `db:"id"`
	StepId                  string      `db:"step_id"`
	ExpectedResponseContent null.String `db:"expected_response_content"`
	ToleranceThreshold      null.Float  `db:"tolerance_threshold"`
	AcceptableAlternates    []string    `db:"acceptable_alternates"`
	ConfirmationRequired    bool        `db:"confirmation_required"`
	ToleranceSettings       []byte      `db:"tolerance_settings"`
	RequiredEntities        []string    `db:"required_entities"`
	ForbiddenPhrases        []string    `db:"forbidden_phrases"`
	ToneRequirement         null.String `db:"tone_requirement"`
	MaxResponseLength       null.Int    `db:"max_response_length"`
	NextStepOnSuccess       null.Int    `db:"next_step_on_success"`
	NextStepOnFailure       null.Int    `db:"next_step_on_failure"`
}

const TABLE_EXPECTED_OUTCOMES = "expected_outcomes"

var SelectExpectedOutcomeColumns = []string{
	"id",
	"step_id",
	"expected_response_content",
	"tolerance_threshold",
	"acceptable_alternates",
	"confirmation_required",
	"tolerance_settings",
	"required_entities",
	"forbidden_phrases",
	"tone_requirement",
	"max_response_length",
	"next_step_on_success",
	"next_step_on_failure",
}

func AdaptExpectedOutcome(db DBExpectedOutcome) (models.ExpectedOutcome, error) {
	var settings models.ToleranceSettings
	if len(db.ToleranceSettings) > 0 {
		if err := json.Unmarshal(db.ToleranceSettings, &settings); err != nil {
			return models.ExpectedOutcome{}, errors.Wrap(err, "can't decode tolerance settings")
		}
	}

	return models.ExpectedOutcome{
		Id:                   db.Id,
		StepId:               db.StepId,
		Content:              models.ExpectedContentFrom(db.ExpectedResponseContent.String),
		ToleranceThreshold:   floatPtrFromNull(db.ToleranceThreshold),
		AcceptableAlternates: db.AcceptableAlternates,
		ConfirmationRequired: db.ConfirmationRequired,
		ToleranceSettings:    settings,
		RequiredEntities:     db.RequiredEntities,
		ForbiddenPhrases:     db.ForbiddenPhrases,
		ToneRequirement:      db.ToneRequirement.String,
		MaxResponseLength:    intPtrFromNull(db.MaxResponseLength),
		NextStepOnSuccess:    intPtrFromNull(db.NextStepOnSuccess),
		NextStepOnFailure:    intPtrFromNull(db.NextStepOnFailure),
	}, nil
}

func intPtrFromNull(v null.Int) *int {
	if !v.Valid {
		return nil
	}
	value := int(v.Int64)
	return &value
}

func floatPtrFromNull(v null.Float) *float64 {
	if !v.Valid {
		return nil
	}
	value := v.Float64
	return &value
}
