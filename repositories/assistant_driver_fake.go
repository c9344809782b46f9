package repositories

import (
	"context"

	"github.com/voxdrive/voxdrive-backend/models"
)

// FakeAssistantDriver stands in for the in-vehicle assistant integration in
// development environments: it answers every turn with the step's expected
// literal content so locally enqueued scenarios pass end to end.
type FakeAssistantDriver struct{}

func (d FakeAssistantDriver) Respond(ctx context.Context, step models.ScenarioStep) (string, error) {
	if step.Outcome == nil {
		return "", nil
	}
	return step.Outcome.Content.Stringified(), nil
}
