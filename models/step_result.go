package models

type ValidationMethod string

const (
	ValidationMethodNone       ValidationMethod = "no_validation"
	ValidationMethodSimilarity ValidationMethod = "similarity"
	ValidationMethodContains   ValidationMethod = "contains"
)

type StepValidation struct {
	Passed bool
	Score  float64
	Method ValidationMethod

	// Tolerance is nil for steps without an expected outcome.
	Tolerance *ToleranceReport
}

type StepResult struct {
	Passed         bool
	Score          float64
	DurationMs     int64
	FollowUpAction string
	Tolerance      *ToleranceReport

	// NextStep is the step reference the outcome declares for this verdict,
	// nil when it declares none.
	NextStep *int
}

// ScenarioResult aggregates one full run of a scenario script. Every step is
// always executed and scored, even after a failure, so the result carries a
// complete diagnostic trail.
type ScenarioResult struct {
	Passed          bool
	StepResults     []StepResult
	TotalSteps      int
	SuccessfulSteps int
	OverallScore    float64

	// PartialSuccess is set only when the script allows it and at least one
	// but not all steps passed.
	PartialSuccess bool

	// Recovered is set when a later step passes after any earlier failure.
	Recovered bool
}
