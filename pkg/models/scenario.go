// Package models defines the core domain models for the outreach strategy wizard.
package models

// Scenario is an immutable catalog entry describing one outreach use case
// (lead nurturing, event invitation, product launch, delivery follow-up).
// A session selects at most one scenario; once the wizard leaves step 1 the
// selection is read-only until the session is reset.
type Scenario struct {
	ID          string `json:"id"          validate:"required"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
