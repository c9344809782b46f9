package models

// Results of the individual tolerance checks. A failed check is an ordinary
// computed result, never an error: wrong assistant answers are the thing being
// measured.

type AlternateMatch struct {
	Matched bool

	// BestAlternate and BestSimilarity are diagnostics only (closest alternate
	// by Jaro-Winkler); they never influence pass/fail.
	BestAlternate  string
	BestSimilarity float64
}

type EntityCheck struct {
	Passed          bool
	MissingEntities []string
}

type ForbiddenPhraseCheck struct {
	Passed       bool
	FoundPhrases []string
}

type ToneCheck struct {
	Passed     bool
	Confidence float64
}

type LengthCheck struct {
	Passed       bool
	ActualLength int
	MaxLength    *int
}

// ToleranceReport collects every check in one pass so callers can report all
// violated rules at once instead of stopping at the first.
type ToleranceReport struct {
	Alternate        AlternateMatch
	Entities         EntityCheck
	ForbiddenPhrases ForbiddenPhraseCheck
	Tone             ToneCheck
	Length           LengthCheck
}

// RulesPassed reports whether every configured acceptance rule held. The
// alternate match is not a rule: it can rescue a step, never fail one.
func (r ToleranceReport) RulesPassed() bool {
	return r.Entities.Passed && r.ForbiddenPhrases.Passed && r.Tone.Passed && r.Length.Passed
}

type FollowUpStatus string

const (
	FollowUpStatusPending        FollowUpStatus = "pending"
	FollowUpStatusRetryScheduled FollowUpStatus = "retry_scheduled"
	FollowUpStatusEscalated      FollowUpStatus = "escalated"
	FollowUpStatusSkipped        FollowUpStatus = "skipped"
	FollowUpStatusUnknown        FollowUpStatus = "unknown"
)

// Recognized follow-up actions a step may declare.
const (
	FollowUpAwaitConfirmation = "await_confirmation"
	FollowUpRetry             = "retry"
	FollowUpEscalate          = "escalate"
	FollowUpSkip              = "skip"
)

type FollowUpOutcome struct {
	Action  string
	Status  FollowUpStatus
	Message string
}
