package dbmodels

import (
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"

	"github.com/voxdrive/voxdrive-backend/models"
)

func TestAdaptExpectedOutcome(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		db := DBExpectedOutcome{
			Id:                      "outcome-id",
			StepId:                  "step-id",
			ExpectedResponseContent: null.StringFrom("Your ride is confirmed"),
			ToleranceThreshold:      null.FloatFrom(0.9),
			AcceptableAlternates:    []string{"The booking is confirmed"},
			ConfirmationRequired:    true,
			ToleranceSettings:       []byte(`{"semantic_similarity_threshold": 0.85, "entity_tolerances": {"time": 0.5}}`),
			RequiredEntities:        []string{"Monday"},
			ForbiddenPhrases:        []string{"error"},
			ToneRequirement:         null.StringFrom("polite"),
			MaxResponseLength:       null.IntFrom(200),
			NextStepOnSuccess:       null.IntFrom(3),
		}

		outcome, err := AdaptExpectedOutcome(db)

		assert.NoError(t, err)
		assert.Equal(t, models.ExpectedContentLiteral, outcome.Content.Kind)
		assert.Equal(t, "Your ride is confirmed", outcome.Content.Literal)
		assert.Equal(t, 0.9, outcome.Threshold())
		assert.Equal(t, 0.85, outcome.ToleranceSettings.SemanticSimilarityThreshold)
		assert.Equal(t, map[string]float64{"time": 0.5}, outcome.ToleranceSettings.EntityTolerances)
		assert.True(t, outcome.ConfirmationRequired)
		if assert.NotNil(t, outcome.MaxResponseLength) {
			assert.Equal(t, 200, *outcome.MaxResponseLength)
		}
		if assert.NotNil(t, outcome.NextStepOnSuccess) {
			assert.Equal(t, 3, *outcome.NextStepOnSuccess)
		}
		assert.Nil(t, outcome.NextStepOnFailure)
	})

	t.Run("structured contains content", func(t *testing.T) {
		db := DBExpectedOutcome{
			ExpectedResponseContent: null.StringFrom(`{"contains": ["confirmed"]}`),
		}

		outcome, err := AdaptExpectedOutcome(db)

		assert.NoError(t, err)
		assert.Equal(t, models.ExpectedContentContains, outcome.Content.Kind)
		assert.Equal(t, []string{"confirmed"}, outcome.Content.Contains)
	})

	t.Run("null content", func(t *testing.T) {
		outcome, err := AdaptExpectedOutcome(DBExpectedOutcome{})

		assert.NoError(t, err)
		assert.Equal(t, models.ExpectedContentNone, outcome.Content.Kind)
		assert.Nil(t, outcome.ToleranceThreshold)
	})

	t.Run("authored zero threshold survives", func(t *testing.T) {
		outcome, err := AdaptExpectedOutcome(DBExpectedOutcome{
			ToleranceThreshold: null.FloatFrom(0),
		})

		assert.NoError(t, err)
		assert.Equal(t, 0.0, outcome.Threshold())
	})

	t.Run("malformed tolerance settings", func(t *testing.T) {
		db := DBExpectedOutcome{
			ToleranceSettings: []byte(`{not json`),
		}

		_, err := AdaptExpectedOutcome(db)
		assert.Error(t, err)
	})
}
