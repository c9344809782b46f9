package models

import (
	"slices"

	"github.com/hashicorp/go-set/v2"
	"github.com/tidwall/gjson"
)

const DefaultToleranceThreshold = 0.8

type ExpectedContentKind int

const (
	// ExpectedContentNone auto-passes validation.
	ExpectedContentNone ExpectedContentKind = iota
	// ExpectedContentLiteral is compared to the response by word-set similarity.
	ExpectedContentLiteral
	// ExpectedContentContains scores by the fraction of required substrings found.
	ExpectedContentContains
	// ExpectedContentUnstructured falls back to literal comparison of the raw text.
	ExpectedContentUnstructured
)

// ExpectedContent is the tagged variant behind the polymorphic
// expected_response_content column: a literal utterance, a structured
// {"contains": [...]} rule, or an unstructured blob.
type ExpectedContent struct {
	Kind     ExpectedContentKind
	Literal  string
	Contains []string
	Raw      string
}

// ExpectedContentFrom classifies a raw content value. Only a JSON object with
// a "contains" array is treated as a structured rule; any other JSON object is
// kept as unstructured and compared by its raw text.
func ExpectedContentFrom(raw string) ExpectedContent {
	if raw == "" {
		return ExpectedContent{Kind: ExpectedContentNone}
	}
	if gjson.Valid(raw) {
		parsed := gjson.Parse(raw)
		if parsed.IsObject() {
			if contains := parsed.Get("contains"); contains.IsArray() {
				required := make([]string, 0)
				contains.ForEach(func(_, value gjson.Result) bool {
					required = append(required, value.String())
					return true
				})
				return ExpectedContent{Kind: ExpectedContentContains, Contains: required, Raw: raw}
			}
			return ExpectedContent{Kind: ExpectedContentUnstructured, Raw: raw}
		}
	}
	return ExpectedContent{Kind: ExpectedContentLiteral, Literal: raw, Raw: raw}
}

// Stringified is the text used when validation degrades to literal comparison.
func (c ExpectedContent) Stringified() string {
	if c.Kind == ExpectedContentLiteral {
		return c.Literal
	}
	return c.Raw
}

// ToleranceSettings carries the nested per-check thresholds of an outcome.
type ToleranceSettings struct {
	SemanticSimilarityThreshold float64            `json:"semantic_similarity_threshold"`
	EntityTolerances            map[string]float64 `json:"entity_tolerances"`
}

// ExpectedOutcome is the acceptance rule set for one scenario step.
type ExpectedOutcome struct {
	Id      string
	StepId  string
	Content ExpectedContent

	// ToleranceThreshold is nil when the author did not configure one; an
	// explicit 0 means every score is acceptable.
	ToleranceThreshold *float64

	AcceptableAlternates []string
	ConfirmationRequired bool
	ToleranceSettings    ToleranceSettings
	RequiredEntities     []string
	ForbiddenPhrases     []string
	ToneRequirement      string
	MaxResponseLength    *int
	NextStepOnSuccess    *int
	NextStepOnFailure    *int
}

// AddAcceptableAlternate is idempotent: adding an alternate that is already
// present leaves the list unchanged. Insertion order is preserved.
func (o *ExpectedOutcome) AddAcceptableAlternate(alternate string) {
	if set.From(o.AcceptableAlternates).Contains(alternate) {
		return
	}
	o.AcceptableAlternates = append(o.AcceptableAlternates, alternate)
}

// RemoveAcceptableAlternate is a no-op when the alternate is absent.
func (o *ExpectedOutcome) RemoveAcceptableAlternate(alternate string) {
	o.AcceptableAlternates = slices.DeleteFunc(o.AcceptableAlternates, func(a string) bool {
		return a == alternate
	})
}

// Threshold returns the configured tolerance threshold, defaulted when unset.
// An explicitly configured 0 is honored as 0.
func (o *ExpectedOutcome) Threshold() float64 {
	if o == nil || o.ToleranceThreshold == nil {
		return DefaultToleranceThreshold
	}
	return *o.ToleranceThreshold
}
