package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxdrive/voxdrive-backend/models"
)

type recordingReporter struct {
	reported []models.QueueEntry
}

func (r *recordingReporter) ReportScenarioResult(
	ctx context.Context,
	entry models.QueueEntry,
	result models.ScenarioResult,
) error {
	r.reported = append(r.reported, entry)
	return nil
}

func TestScenarioResultCollector(t *testing.T) {
	ctx := context.Background()

	t.Run("collects results and forwards them to the inner reporter", func(t *testing.T) {
		inner := &recordingReporter{}
		collector := NewScenarioResultCollector(inner)

		entry := models.QueueEntry{Id: "entry-1"}
		result := models.ScenarioResult{Passed: true, TotalSteps: 2, SuccessfulSteps: 2}
		assert.NoError(t, collector.ReportScenarioResult(ctx, entry, result))

		collected := collector.Results()
		if assert.Len(t, collected, 1) {
			assert.Equal(t, "entry-1", collected[0].Entry.Id)
			assert.True(t, collected[0].Result.Passed)
		}
		assert.Len(t, inner.reported, 1)
	})

	t.Run("works without an inner reporter", func(t *testing.T) {
		collector := NewScenarioResultCollector(nil)
		assert.NoError(t, collector.ReportScenarioResult(ctx, models.QueueEntry{Id: "entry-2"}, models.ScenarioResult{}))
		assert.Len(t, collector.Results(), 1)
	})

	t.Run("safe under concurrent reporting", func(t *testing.T) {
		collector := NewScenarioResultCollector(nil)

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = collector.ReportScenarioResult(ctx, models.QueueEntry{}, models.ScenarioResult{})
			}()
		}
		wg.Wait()

		assert.Len(t, collector.Results(), 20)
	})
}
