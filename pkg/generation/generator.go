// Package generation defines the black-box content and business-info
// generation collaborators the wizard calls, plus a simulated implementation
// standing in for a real AI backend. The wizard depends only on the result
// shape and on the possibility of failure, so a real backend can be swapped
// in without touching any engine logic.
package generation

import (
	"context"
	"errors"

	"github.com/whalekit/strategist/pkg/models"
)

var (
	// ErrGenerationFailed signals that the generation service rejected the
	// request. It is distinct from an empty result: callers must leave prior
	// state unchanged and let the user retry.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrScenarioNotFound is returned for an unknown scenario id.
	ErrScenarioNotFound = errors.New("scenario not found")
)

// Generator is the asynchronous collaborator producing outreach content and
// extracting business info from free text. Attached files are opaque: only
// their names are threaded through as context.
type Generator interface {
	GenerateContent(ctx context.Context, scenarioID string) ([]models.ContentSequence, error)
	ExtractBusinessInfo(ctx context.Context, description string, files []string) (models.BusinessInfo, error)
}
