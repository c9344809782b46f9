package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueEntryStatusFrom(t *testing.T) {
	for _, status := range []QueueEntryStatus{
		QueueEntryQueued,
		QueueEntryProcessing,
		QueueEntryCompleted,
		QueueEntryFailed,
		QueueEntryWaitingForApproval,
	} {
		parsed, err := QueueEntryStatusFrom(status.String())
		assert.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := QueueEntryStatusFrom("paused")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = QueueEntryStatusFrom("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreateQueueEntryInputValidate(t *testing.T) {
	base := CreateQueueEntryInput{
		TestScenarioId: "scenario",
		TestRunId:      "run",
	}

	for _, priority := range []int{MinQueuePriority, DefaultQueuePriority, MaxQueuePriority} {
		input := base
		input.Priority = priority
		assert.NoError(t, input.Validate())
	}

	for _, priority := range []int{0, -3, MaxQueuePriority + 1} {
		input := base
		input.Priority = priority
		assert.ErrorIs(t, input.Validate(), ErrInvalidPriority)
	}
}
