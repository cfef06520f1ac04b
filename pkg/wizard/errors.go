// Package wizard orchestrates the four-step outreach configuration flow on
// top of the session store, the sequence and segmentation engines and the
// generation collaborator.
package wizard

import (
	"errors"

	"github.com/whalekit/strategist/pkg/generation"
	"github.com/whalekit/strategist/pkg/sequence"
	"github.com/whalekit/strategist/pkg/session"
)

// Input-insufficiency errors (400 Bad Request). These are rejected before
// any store mutation happens, so the caller can simply re-prompt.
var (
	ErrEmptyBusinessInput   = errors.New("business description or attached files required")
	ErrEmptyCondition       = errors.New("targeting condition required")
	ErrEmptyMessage         = errors.New("message content required")
	ErrEmptyPatch           = errors.New("no fields to update")
	ErrUnknownSegmentOption = errors.New("unknown segment option")
	ErrNoScenarioSelected   = errors.New("no scenario selected yet")
	ErrNoContentToConfirm   = errors.New("no content sequences to confirm")
)

// Conflicts (409).
var (
	// ErrScenarioLocked: the scenario is chosen once on step 1 and read-only
	// for the rest of the session.
	ErrScenarioLocked = errors.New("scenario can only be chosen on step 1")

	// ErrGenerationInFlight: at most one generation request per session may
	// be in flight; the loading flag is the guard.
	ErrGenerationInFlight = errors.New("a generation request is already in flight")
)

// IsValidationError checks if an error should map to HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyBusinessInput) ||
		errors.Is(err, ErrEmptyCondition) ||
		errors.Is(err, ErrEmptyMessage) ||
		errors.Is(err, ErrEmptyPatch) ||
		errors.Is(err, ErrUnknownSegmentOption) ||
		errors.Is(err, ErrNoScenarioSelected) ||
		errors.Is(err, ErrNoContentToConfirm)
}

// IsNotFoundError checks if an error should map to HTTP 404.
func IsNotFoundError(err error) bool {
	return errors.Is(err, session.ErrSessionNotFound) ||
		errors.Is(err, sequence.ErrContentNotFound) ||
		errors.Is(err, generation.ErrScenarioNotFound)
}

// IsConflictError checks if an error should map to HTTP 409.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrScenarioLocked) ||
		errors.Is(err, ErrGenerationInFlight)
}

// IsGenerationError checks if an error came from the generation collaborator
// rejecting a request. State is guaranteed untouched; the action can be
// retried as-is.
func IsGenerationError(err error) bool {
	return errors.Is(err, generation.ErrGenerationFailed)
}
