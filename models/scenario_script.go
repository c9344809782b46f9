package models

import "time"

// ScenarioScript is an ordered multi-turn voice interaction test definition.
// Scripts and their expected outcomes are authored elsewhere and read-only to
// the orchestration core.
type ScenarioScript struct {
	Id                  string
	Name                string
	AllowPartialSuccess bool
	Steps               []ScenarioStep
	CreatedAt           time.Time
}

// ScenarioStep is one conversational turn: what the test driver says, and how
// the assistant's answer is judged. StepOrder values are unique within a
// script and define execution order.
type ScenarioStep struct {
	Id             string
	ScriptId       string
	StepOrder      int
	UserUtterance  string
	FollowUpAction string
	CanRecover     bool
	Outcome        *ExpectedOutcome
}
