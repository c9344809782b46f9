package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/voxdrive/voxdrive-backend/models"
)

type DBScenarioScript struct {
	Id                  string    `db:"id"`
	Name                string    `db:"name"`
	AllowPartialSuccess bool      `db:"allow_partial_success"`
	CreatedAt           time.Time `db:"created_at"`
}

const TABLE_SCENARIO_SCRIPTS = "scenario_scripts"

var SelectScenarioScriptColumns = []string{
	"id",
	"name",
	"allow_partial_success",
	"created_at",
}

func AdaptScenarioScript(db DBScenarioScript) (models.ScenarioScript, error) {
	return models.ScenarioScript{
		Id:                  db.Id,
		Name:                db.Name,
		AllowPartialSuccess: db.AllowPartialSuccess,
		CreatedAt:           db.CreatedAt,
	}, nil
}

type DBScenarioStep struct {
	Id             string      `db:"id"`
	ScriptId       string      `db:"script_id"`
	StepOrder      int         `db:"step_order"`
	UserUtterance  string      `db:"user_utterance"`
	FollowUpAction null.String `db:"follow_up_action"`
	CanRecover     bool        `db:"can_recover"`
}

const TABLE_SCENARIO_STEPS = "scenario_steps"

var SelectScenarioStepColumns = []string{
	"id",
	"script_id",
	"step_order",
	"user_utterance",
	"follow_up_action",
	"can_recover",
}

func AdaptScenarioStep(db DBScenarioStep) (models.ScenarioStep, error) {
	return models.ScenarioStep{
		Id:             db.Id,
		ScriptId:       db.ScriptId,
		StepOrder:      db.StepOrder,
		UserUtterance:  db.UserUtterance,
		FollowUpAction: db.FollowUpAction.String,
		CanRecover:     db.CanRecover,
	}, nil
}
