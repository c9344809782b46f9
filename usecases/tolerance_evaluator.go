package usecases

import (
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/voxdrive/voxdrive-backend/models"
)

// ToleranceEvaluator judges an assistant response against the acceptance rule
// set of an expected outcome. Every method is pure and side-effect free; the
// checks are composed (not chained with early exit) so a caller can report all
// violated rules in one pass.
type ToleranceEvaluator struct{}

func NewToleranceEvaluator() ToleranceEvaluator {
	return ToleranceEvaluator{}
}

var toneKeywords = map[string][]string{
	"polite":       {"please", "thank", "sorry", "certainly", "happy to", "of course"},
	"professional": {"confirmed", "scheduled", "completed", "assist", "processed", "arranged"},
}

// MatchesAlternate is an exact membership test against the acceptable
// alternates; an empty list never matches. The closest alternate by
// Jaro-Winkler is reported as a diagnostic.
func (e ToleranceEvaluator) MatchesAlternate(outcome models.ExpectedOutcome, responseText string) models.AlternateMatch {
	match := models.AlternateMatch{
		Matched: slices.Contains(outcome.AcceptableAlternates, responseText),
	}

	similarity := metrics.NewJaroWinkler()
	for _, alternate := range outcome.AcceptableAlternates {
		if score := strutil.Similarity(alternate, responseText, similarity); score > match.BestSimilarity {
			match.BestSimilarity = score
			match.BestAlternate = alternate
		}
	}
	return match
}

// CheckEntityRequirements verifies that every required entity appears in the
// response (case-insensitive substring). No required entities passes trivially.
func (e ToleranceEvaluator) CheckEntityRequirements(outcome models.ExpectedOutcome, responseText string) models.EntityCheck {
	loweredResponse := strings.ToLower(responseText)

	missing := make([]string, 0)
	for _, entity := range outcome.RequiredEntities {
		if !strings.Contains(loweredResponse, strings.ToLower(entity)) {
			missing = append(missing, entity)
		}
	}
	return models.EntityCheck{
		Passed:          len(missing) == 0,
		MissingEntities: missing,
	}
}

// CheckForbiddenPhrases fails when any forbidden phrase appears in the
// response (case-insensitive substring).
func (e ToleranceEvaluator) CheckForbiddenPhrases(outcome models.ExpectedOutcome, responseText string) models.ForbiddenPhraseCheck {
	loweredResponse := strings.ToLower(responseText)

	found := make([]string, 0)
	for _, phrase := range outcome.ForbiddenPhrases {
		if strings.Contains(loweredResponse, strings.ToLower(phrase)) {
			found = append(found, phrase)
		}
	}
	return models.ForbiddenPhraseCheck{
		Passed:       len(found) == 0,
		FoundPhrases: found,
	}
}

// CheckToneRequirement scores the declared tone by keyword counting:
// confidence = min(1.0, 0.5 + 0.1*matches), passing at confidence >= 0.5.
// An absent or unrecognized tone requirement always passes with confidence 1.
func (e ToleranceEvaluator) CheckToneRequirement(outcome models.ExpectedOutcome, responseText string) models.ToneCheck {
	keywords, ok := toneKeywords[outcome.ToneRequirement]
	if !ok {
		return models.ToneCheck{Passed: true, Confidence: 1.0}
	}

	loweredResponse := strings.ToLower(responseText)
	matched := 0
	for _, keyword := range keywords {
		if strings.Contains(loweredResponse, keyword) {
			matched++
		}
	}

	confidence := 0.5 + 0.1*float64(matched)
	if confidence > 1.0 {
		confidence = 1.0
	}
	return models.ToneCheck{
		Passed:     confidence >= 0.5,
		Confidence: confidence,
	}
}

// CheckResponseLength passes unconditionally when no maximum is configured.
func (e ToleranceEvaluator) CheckResponseLength(outcome models.ExpectedOutcome, responseText string) models.LengthCheck {
	check := models.LengthCheck{
		ActualLength: len(responseText),
		MaxLength:    outcome.MaxResponseLength,
	}
	if outcome.MaxResponseLength == nil {
		check.Passed = true
		return check
	}
	check.Passed = check.ActualLength <= *outcome.MaxResponseLength
	return check
}

// NextStep resolves the step reference to jump to after this outcome,
// returning nil when the outcome declares none for the given result.
func (e ToleranceEvaluator) NextStep(outcome models.ExpectedOutcome, success bool) *int {
	if success {
		return outcome.NextStepOnSuccess
	}
	return outcome.NextStepOnFailure
}

// EvaluateAll runs every check in one pass.
func (e ToleranceEvaluator) EvaluateAll(outcome models.ExpectedOutcome, responseText string) models.ToleranceReport {
	return models.ToleranceReport{
		Alternate:        e.MatchesAlternate(outcome, responseText),
		Entities:         e.CheckEntityRequirements(outcome, responseText),
		ForbiddenPhrases: e.CheckForbiddenPhrases(outcome, responseText),
		Tone:             e.CheckToneRequirement(outcome, responseText),
		Length:           e.CheckResponseLength(outcome, responseText),
	}
}
