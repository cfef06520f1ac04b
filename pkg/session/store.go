// Package session implements the wizard state store: the single authoritative
// container for one outreach configuration session. All reads and writes are
// synchronous and last-writer-wins; a mutex serializes access so the HTTP
// surface can share one store, but the logical model stays single-writer.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/whalekit/strategist/pkg/models"
	"github.com/whalekit/strategist/pkg/sequence"
)

// Store holds the live state of one wizard session. Mutations never fail
// under normal input: out-of-range steps are clamped, unknown-id patches are
// reported as a no-op signal, so the store is always left in a valid state.
type Store struct {
	mu   sync.Mutex
	data models.Session
}

// NewStore creates an empty session at step 1.
func NewStore() *Store {
	now := time.Now()

	return &Store{
		data: models.Session{
			ID:          uuid.New().String(),
			CurrentStep: models.StepScenario,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// ID returns the session's stable identifier.
func (s *Store) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.ID
}

// Snapshot returns a defensive deep copy of the session. Mutating the
// returned value never affects the store; all writes go through the
// operations below.
func (s *Store) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() models.Session {
	snap := s.data

	snap.Messages = append([]models.Message(nil), s.data.Messages...)
	snap.ContentSequences = append([]models.ContentSequence(nil), s.data.ContentSequences...)
	snap.UserSegments = copySegments(s.data.UserSegments)
	snap.BusinessInfo.AdditionalFiles = append([]string(nil), s.data.BusinessInfo.AdditionalFiles...)

	if s.data.SelectedScenario != nil {
		scenario := *s.data.SelectedScenario
		snap.SelectedScenario = &scenario
	}

	if s.data.EditingContent != nil {
		editing := *s.data.EditingContent
		snap.EditingContent = &editing
	}

	return snap
}

// CurrentStep returns the step the wizard is on.
func (s *Store) CurrentStep() models.Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.CurrentStep
}

// SetStep moves the wizard directly to step n, clamped into 1..4. Used for
// direct navigation, e.g. a permalink into step 3.
func (s *Store) SetStep(n models.Step) models.Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.CurrentStep = models.ClampStep(n)
	s.touchLocked()

	return s.data.CurrentStep
}

// AdvanceStep increments the current step, clamped at the terminal step.
// Calling it at step 4 is an idempotent no-op.
func (s *Store) AdvanceStep() models.Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.CurrentStep = models.ClampStep(s.data.CurrentStep + 1)
	s.touchLocked()

	return s.data.CurrentStep
}

// RetreatStep decrements the current step, floored at step 1.
func (s *Store) RetreatStep() models.Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.CurrentStep = models.ClampStep(s.data.CurrentStep - 1)
	s.touchLocked()

	return s.data.CurrentStep
}

// AppendMessage appends a transcript entry with a fresh id and the current
// timestamp. It never rejects; the transcript grows unbounded for the
// session's lifetime.
func (s *Store) AppendMessage(msgType models.MessageType, content string, step models.Step) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := models.Message{
		ID:        uuid.New().String(),
		Type:      msgType,
		Content:   content,
		Timestamp: time.Now(),
		Step:      step,
	}

	s.data.Messages = append(s.data.Messages, message)
	s.touchLocked()

	return message
}

// ClearMessages empties the transcript. Only Reset uses this; the transcript
// is otherwise append-only.
func (s *Store) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Messages = nil
	s.touchLocked()
}

// SetScenario records the selected scenario. The wizard service only permits
// this while the session is on step 1, which makes the selection read-only
// for the rest of the session.
func (s *Store) SetScenario(scenario models.Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.SelectedScenario = &scenario
	s.touchLocked()
}

// Scenario returns a copy of the selected scenario, or nil before selection.
func (s *Store) Scenario() *models.Scenario {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.SelectedScenario == nil {
		return nil
	}

	scenario := *s.data.SelectedScenario

	return &scenario
}

// MergeBusinessInfo shallow-merges partial into the business record,
// overwriting only the provided fields.
func (s *Store) MergeBusinessInfo(partial models.BusinessInfo) models.BusinessInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.BusinessInfo = s.data.BusinessInfo.Merge(partial)
	s.touchLocked()

	return s.data.BusinessInfo
}

// ReplaceContentSequences swaps in a whole new content list. Used both for
// fresh generation and for post-edit or post-delete renumbered lists.
func (s *Store) ReplaceContentSequences(list []models.ContentSequence) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.ContentSequences = append([]models.ContentSequence(nil), list...)
	s.touchLocked()
}

// ContentSequences returns a copy of the current content list.
func (s *Store) ContentSequences() []models.ContentSequence {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.ContentSequence(nil), s.data.ContentSequences...)
}

// PatchContentSequenceByID merges a partial update into exactly the item
// matching id. An unknown id yields sequence.ErrContentNotFound and mutates
// nothing.
func (s *Store) PatchContentSequenceByID(id string, patch models.ContentPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.ContentSequences {
		if s.data.ContentSequences[i].ID == id {
			patch.ApplyTo(&s.data.ContentSequences[i])
			s.touchLocked()

			return nil
		}
	}

	return sequence.ErrContentNotFound
}

// ReplaceUserSegments swaps in a whole new segment list. Segments are
// immutable records, so replacement is the only write.
func (s *Store) ReplaceUserSegments(list []models.UserSegment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.UserSegments = copySegments(list)
	s.touchLocked()
}

// UserSegments returns a copy of the current segment list.
func (s *Store) UserSegments() []models.UserSegment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copySegments(s.data.UserSegments)
}

// OpenEditor marks the single editor slot as open on the given item (nil for
// a blank editor). Opening while another item is under edit replaces the
// target rather than queueing.
func (s *Store) OpenEditor(item *models.ContentSequence) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.IsEditorOpen = true
	s.data.EditingContent = nil

	if item != nil {
		editing := *item
		s.data.EditingContent = &editing
	}

	s.touchLocked()
}

// CloseEditor clears the editor slot.
func (s *Store) CloseEditor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.IsEditorOpen = false
	s.data.EditingContent = nil
	s.touchLocked()
}

// BeginLoading sets the busy flag and reports whether it was acquired. It
// returns false when a generation request is already in flight, which is how
// the wizard enforces at most one per session.
func (s *Store) BeginLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.IsLoading {
		return false
	}

	s.data.IsLoading = true
	s.touchLocked()

	return true
}

// SetLoading toggles the busy flag consumed by the UI.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.IsLoading = loading
	s.touchLocked()
}

// IsLoading reports whether a generation request is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.IsLoading
}

// Reset restores every field to its initial empty value, as if a new session
// had started. The session keeps its id and creation time.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = models.Session{
		ID:          s.data.ID,
		CurrentStep: models.StepScenario,
		CreatedAt:   s.data.CreatedAt,
		UpdatedAt:   time.Now(),
	}
}

func (s *Store) touchLocked() {
	s.data.UpdatedAt = time.Now()
}

func copySegments(list []models.UserSegment) []models.UserSegment {
	if list == nil {
		return nil
	}

	copied := make([]models.UserSegment, len(list))

	for i, seg := range list {
		copied[i] = seg
		copied[i].Requirements = append([]string(nil), seg.Requirements...)
	}

	return copied
}
