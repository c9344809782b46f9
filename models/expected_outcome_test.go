package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedContentFrom(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		content := ExpectedContentFrom("")
		assert.Equal(t, ExpectedContentNone, content.Kind)
	})

	t.Run("literal utterance", func(t *testing.T) {
		content := ExpectedContentFrom("Your ride is confirmed")
		assert.Equal(t, ExpectedContentLiteral, content.Kind)
		assert.Equal(t, "Your ride is confirmed", content.Literal)
		assert.Equal(t, "Your ride is confirmed", content.Stringified())
	})

	t.Run("contains rule", func(t *testing.T) {
		content := ExpectedContentFrom(`{"contains": ["confirmed", "booked"]}`)
		assert.Equal(t, ExpectedContentContains, content.Kind)
		assert.Equal(t, []string{"confirmed", "booked"}, content.Contains)
	})

	t.Run("other object is unstructured", func(t *testing.T) {
		raw := `{"intent": "book_ride", "slots": {"city": "Lyon"}}`
		content := ExpectedContentFrom(raw)
		assert.Equal(t, ExpectedContentUnstructured, content.Kind)
		assert.Equal(t, raw, content.Stringified())
	})

	t.Run("json array is not a contains rule", func(t *testing.T) {
		content := ExpectedContentFrom(`["confirmed", "booked"]`)
		assert.Equal(t, ExpectedContentLiteral, content.Kind)
	})

	t.Run("contains must be an array", func(t *testing.T) {
		content := ExpectedContentFrom(`{"contains": "confirmed"}`)
		assert.Equal(t, ExpectedContentUnstructured, content.Kind)
	})
}

func TestAcceptableAlternates(t *testing.T) {
	t.Run("add is idempotent", func(t *testing.T) {
		outcome := ExpectedOutcome{}
		outcome.AddAcceptableAlternate("first")
		outcome.AddAcceptableAlternate("second")
		outcome.AddAcceptableAlternate("first")

		assert.Equal(t, []string{"first", "second"}, outcome.AcceptableAlternates)
	})

	t.Run("remove absent alternate is a no-op", func(t *testing.T) {
		outcome := ExpectedOutcome{AcceptableAlternates: []string{"first"}}
		outcome.RemoveAcceptableAlternate("second")

		assert.Equal(t, []string{"first"}, outcome.AcceptableAlternates)
	})

	t.Run("remove", func(t *testing.T) {
		outcome := ExpectedOutcome{AcceptableAlternates: []string{"first", "second"}}
		outcome.RemoveAcceptableAlternate("first")

		assert.Equal(t, []string{"second"}, outcome.AcceptableAlternates)
	})
}

func TestThreshold(t *testing.T) {
	outcome := &ExpectedOutcome{}
	assert.Equal(t, DefaultToleranceThreshold, outcome.Threshold())

	threshold := 0.6
	outcome.ToleranceThreshold = &threshold
	assert.Equal(t, 0.6, outcome.Threshold())

	// an authored 0 means "accept anything", not "use the default"
	zero := 0.0
	outcome.ToleranceThreshold = &zero
	assert.Equal(t, 0.0, outcome.Threshold())

	var nilOutcome *ExpectedOutcome
	assert.Equal(t, DefaultToleranceThreshold, nilOutcome.Threshold())
}
