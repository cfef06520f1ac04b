package models

import "time"

// Step is one of the four ordered wizard stages.
type Step int

const (
	StepScenario Step = 1 // scenario selection
	StepBusiness Step = 2 // business description and extraction
	StepContent  Step = 3 // content generation and curation
	StepSegments Step = 4 // user segmentation
)

// ClampStep forces n into the valid 1..4 range. Out-of-range navigation is
// clamped rather than rejected so the session always stays in a valid state.
func ClampStep(n Step) Step {
	if n < StepScenario {
		return StepScenario
	}

	if n > StepSegments {
		return StepSegments
	}

	return n
}

// Session is the aggregate snapshot of one wizard session: the current step,
// the conversation transcript and everything collected so far. Snapshots are
// read-mostly views; all mutations go through the session store.
type Session struct {
	ID               string            `json:"id"`
	CurrentStep      Step              `json:"current_step"`
	Messages         []Message         `json:"messages"`
	SelectedScenario *Scenario         `json:"selected_scenario,omitempty"`
	BusinessInfo     BusinessInfo      `json:"business_info"`
	ContentSequences []ContentSequence `json:"content_sequences"`
	UserSegments     []UserSegment     `json:"user_segments"`
	IsEditorOpen     bool              `json:"is_editor_open"`
	EditingContent   *ContentSequence  `json:"editing_content,omitempty"`
	IsLoading        bool              `json:"is_loading"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
