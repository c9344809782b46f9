package usecases

import (
	"context"
	"sync"

	"github.com/voxdrive/voxdrive-backend/models"
)

// CollectedScenarioResult pairs a finished result with the queue entry it
// settled.
type CollectedScenarioResult struct {
	Entry  models.QueueEntry
	Result models.ScenarioResult
}

// ScenarioResultCollector gathers finished scenario results in memory so a
// caller that drains the queue synchronously can return them. Scenarios run
// concurrently, so the collector is safe for use from multiple goroutines.
// When an inner reporter is set, every result is forwarded to it as well.
type ScenarioResultCollector struct {
	inner ScenarioResultReporter

	mu      sync.Mutex
	results []CollectedScenarioResult
}

func NewScenarioResultCollector(inner ScenarioResultReporter) *ScenarioResultCollector {
	return &ScenarioResultCollector{inner: inner}
}

func (c *ScenarioResultCollector) ReportScenarioResult(
	ctx context.Context,
	entry models.QueueEntry,
	result models.ScenarioResult,
) error {
	c.mu.Lock()
	c.results = append(c.results, CollectedScenarioResult{Entry: entry, Result: result})
	c.mu.Unlock()

	if c.inner != nil {
		return c.inner.ReportScenarioResult(ctx, entry, result)
	}
	return nil
}

// Results returns the collected results in completion order.
func (c *ScenarioResultCollector) Results() []CollectedScenarioResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CollectedScenarioResult(nil), c.results...)
}
