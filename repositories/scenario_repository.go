package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/voxdrive/voxdrive-backend/models"
	"github.com/voxdrive/voxdrive-backend/repositories/dbmodels"
)

// GetScenarioScript loads a script with its steps in execution order, each
// step carrying its expected outcome when one is declared.
func (repo *VoxdriveDbRepository) GetScenarioScript(ctx context.Context, exec Executor, scriptId string) (models.ScenarioScript, error) {
	scriptQuery := NewQueryBuilder().
		Select(dbmodels.SelectScenarioScriptColumns...).
		From(dbmodels.TABLE_SCENARIO_SCRIPTS).
		Where(squirrel.Eq{"id": scriptId})

	script, err := SqlToModel(ctx, exec, scriptQuery, dbmodels.AdaptScenarioScript)
	if err != nil {
		return models.ScenarioScript{}, err
	}

	stepsQuery := NewQueryBuilder().
		Select(dbmodels.SelectScenarioStepColumns...).
		From(dbmodels.TABLE_SCENARIO_STEPS).
		Where(squirrel.Eq{"script_id": scriptId}).
		OrderBy("step_order ASC")

	steps, err := SqlToListOfModels(ctx, exec, stepsQuery, dbmodels.AdaptScenarioStep)
	if err != nil {
		return models.ScenarioScript{}, err
	}

	for i := range steps {
		outcome, err := repo.GetExpectedOutcomeForStep(ctx, exec, steps[i].Id)
		if err != nil {
			return models.ScenarioScript{}, err
		}
		steps[i].Outcome = outcome
	}

	script.Steps = steps
	return script, nil
}

// GetExpectedOutcomeForStep returns nil when the step declares no outcome.
func (repo *VoxdriveDbRepository) GetExpectedOutcomeForStep(ctx context.Context, exec Executor, stepId string) (*models.ExpectedOutcome, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectExpectedOutcomeColumns...).
		From(dbmodels.TABLE_EXPECTED_OUTCOMES).
		Where(squirrel.Eq{"step_id": stepId})

	return SqlToOptionalModel(ctx, exec, query, dbmodels.AdaptExpectedOutcome)
}

func (repo *VoxdriveDbRepository) GetExpectedOutcome(ctx context.Context, exec Executor, id string) (models.ExpectedOutcome, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectExpectedOutcomeColumns...).
		From(dbmodels.TABLE_EXPECTED_OUTCOMES).
		Where(squirrel.Eq{"id": id})

	outcome, err := SqlToModel(ctx, exec, query, dbmodels.AdaptExpectedOutcome)
	if errors.Is(err, models.NotFoundError) {
		return models.ExpectedOutcome{}, errors.Wrap(models.NotFoundError, "unknown expected outcome")
	}
	return outcome, err
}

func (repo *VoxdriveDbRepository) UpdateAcceptableAlternates(
	ctx context.Context,
	exec Executor,
	outcomeId string,
	alternates []string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_EXPECTED_OUTCOMES).
			Set("acceptable_alternates", alternates).
			Where(squirrel.Eq{"id": outcomeId}),
	)
	return err
}
