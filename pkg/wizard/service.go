package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/whalekit/strategist/pkg/eventbus"
	"github.com/whalekit/strategist/pkg/events"
	"github.com/whalekit/strategist/pkg/generation"
	"github.com/whalekit/strategist/pkg/models"
	"github.com/whalekit/strategist/pkg/segment"
	"github.com/whalekit/strategist/pkg/sequence"
	"github.com/whalekit/strategist/pkg/session"
)

// Service drives wizard sessions. All state lives in the session stores; the
// service owns the flow: which transcript messages get written, when steps
// advance, and how engine results are written back.
type Service struct {
	sessions  *session.Manager
	generator generation.Generator
	eventBus  eventbus.EventPublisher
	logger    *slog.Logger
}

// NewService creates a wizard service. eventBus may be nil, in which case no
// events are published.
func NewService(
	sessions *session.Manager,
	generator generation.Generator,
	eventBus eventbus.EventPublisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		sessions:  sessions,
		generator: generator,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// Scenarios returns the selectable scenario catalog.
func (s *Service) Scenarios() []models.Scenario {
	return generation.Scenarios()
}

// SegmentOptions returns the segmentation-step catalog.
func (s *Service) SegmentOptions() []models.SegmentOption {
	return segment.Options()
}

// StartSession creates a fresh session and seeds the transcript with the
// welcome message.
func (s *Service) StartSession(ctx context.Context) models.Session {
	store := s.sessions.Create()
	store.AppendMessage(models.MessageAssistant, welcomeText, models.StepScenario)

	s.logger.InfoContext(ctx, "Session started", "session_id", store.ID())
	s.publish(ctx, store.ID(), events.SessionCreated{BaseEvent: s.baseEvent(events.SessionCreatedEvent, store.ID())})

	return store.Snapshot()
}

// GetSession returns a snapshot of one live session.
func (s *Service) GetSession(id string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	return store.Snapshot(), nil
}

// ListSessions returns snapshots of every live session.
func (s *Service) ListSessions() []models.Session {
	return s.sessions.List()
}

// DeleteSession drops a session entirely.
func (s *Service) DeleteSession(id string) error {
	return s.sessions.Delete(id)
}

// ResetSession restores a session to its initial state and re-seeds the
// welcome message. Always user-initiated; nothing else ever resets a session.
func (s *Service) ResetSession(ctx context.Context, id string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	store.Reset()
	store.AppendMessage(models.MessageAssistant, welcomeText, models.StepScenario)

	s.logger.InfoContext(ctx, "Session reset", "session_id", id)
	s.publish(ctx, id, events.SessionReset{BaseEvent: s.baseEvent(events.SessionResetEvent, id)})

	return store.Snapshot(), nil
}

// SetStep navigates directly to a step, clamped into range.
func (s *Service) SetStep(ctx context.Context, id string, step models.Step) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	current := store.SetStep(step)
	s.publishStep(ctx, id, current)

	return store.Snapshot(), nil
}

// AdvanceStep moves forward one step, clamped at the terminal step.
func (s *Service) AdvanceStep(ctx context.Context, id string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	current := store.AdvanceStep()
	s.publishStep(ctx, id, current)

	return store.Snapshot(), nil
}

// RetreatStep moves back one step, floored at step 1.
func (s *Service) RetreatStep(ctx context.Context, id string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	current := store.RetreatStep()
	s.publishStep(ctx, id, current)

	return store.Snapshot(), nil
}

// SubmitMessage appends a free-text user message and answers it according to
// the step the session is on, mirroring the chat routing of the product.
func (s *Service) SubmitMessage(ctx context.Context, id, content string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return models.Session{}, ErrEmptyMessage
	}

	step := store.CurrentStep()
	store.AppendMessage(models.MessageUser, content, step)

	switch step {
	case models.StepScenario:
		store.AppendMessage(models.MessageAssistant, step1RedirectText, step)
	case models.StepBusiness:
		// Business info comes in through AnalyzeBusiness, not chat.
		store.AppendMessage(models.MessageAssistant, step2RedirectText, step)
	case models.StepContent:
		store.AppendMessage(models.MessageAssistant, step3FeedbackText(content), step)
		s.publishStep(ctx, id, store.AdvanceStep())
	case models.StepSegments:
		store.AppendMessage(models.MessageAssistant, step4AckText, step)
	}

	return store.Snapshot(), nil
}

// SelectScenario records the operator's scenario choice and moves the wizard
// to the business step. Only permitted on step 1, which keeps the selection
// read-only for the rest of the session.
func (s *Service) SelectScenario(ctx context.Context, id, scenarioID string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	if store.CurrentStep() != models.StepScenario {
		return models.Session{}, ErrScenarioLocked
	}

	scenario, err := generation.ScenarioByID(scenarioID)
	if err != nil {
		return models.Session{}, err
	}

	store.SetScenario(scenario)
	store.AppendMessage(models.MessageUser, scenarioChosenText(scenario), models.StepScenario)
	store.AppendMessage(models.MessageAssistant, scenarioConfirmText(scenario), models.StepScenario)
	current := store.AdvanceStep()

	s.logger.InfoContext(ctx, "Scenario selected", "session_id", id, "scenario_id", scenarioID)
	s.publish(ctx, id, events.ScenarioSelected{
		BaseEvent:  s.baseEvent(events.ScenarioSelectedEvent, id),
		ScenarioID: scenarioID,
	})
	s.publishStep(ctx, id, current)

	return store.Snapshot(), nil
}

// AnalyzeBusiness runs the (mocked) extraction over the operator's free-text
// description and opaque file references, merges the result into the
// business record and moves the wizard to the content step. On extraction
// failure the prior record is untouched and the step does not advance.
func (s *Service) AnalyzeBusiness(ctx context.Context, id, description string, files []string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	description = strings.TrimSpace(description)
	if description == "" && len(files) == 0 {
		return models.Session{}, ErrEmptyBusinessInput
	}

	if !store.BeginLoading() {
		return models.Session{}, ErrGenerationInFlight
	}
	defer store.SetLoading(false)

	store.AppendMessage(models.MessageUser, analyzeRequestText(description, len(files)), models.StepBusiness)

	info, err := s.generator.ExtractBusinessInfo(ctx, description, files)
	if err != nil {
		store.AppendMessage(models.MessageAssistant, extractionFailedText, models.StepBusiness)
		s.logger.ErrorContext(ctx, "Business info extraction failed", "session_id", id, "error", err)

		return store.Snapshot(), fmt.Errorf("extract business info: %w", err)
	}

	merged := store.MergeBusinessInfo(info)
	store.AppendMessage(models.MessageAssistant, extractionSummaryText(merged), models.StepBusiness)
	current := store.AdvanceStep()

	s.publish(ctx, id, events.BusinessAnalyzed{
		BaseEvent: s.baseEvent(events.BusinessAnalyzedEvent, id),
		Industry:  merged.Industry,
		FileCount: len(files),
	})
	s.publishStep(ctx, id, current)

	return store.Snapshot(), nil
}

// UpdateBusinessInfo applies a direct user edit, merging only the provided
// fields.
func (s *Service) UpdateBusinessInfo(id string, partial models.BusinessInfo) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	store.MergeBusinessInfo(partial)

	return store.Snapshot(), nil
}

// GenerateContent produces a fresh content sequence for the selected
// scenario, replacing any prior list. On failure the prior list is untouched.
func (s *Service) GenerateContent(ctx context.Context, id string) (models.Session, error) {
	return s.generate(ctx, id, false)
}

// ContinueGeneration asks for another batch and appends it after the current
// maximum day. The append contract is applied against the store state at
// completion time, so a slow generation can never clobber edits that landed
// while it was in flight.
func (s *Service) ContinueGeneration(ctx context.Context, id string) (models.Session, error) {
	return s.generate(ctx, id, true)
}

func (s *Service) generate(ctx context.Context, id string, appendMode bool) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	scenario := store.Scenario()
	if scenario == nil {
		return models.Session{}, ErrNoScenarioSelected
	}

	if !store.BeginLoading() {
		return models.Session{}, ErrGenerationInFlight
	}
	defer store.SetLoading(false)

	progressText := generatingText
	if appendMode {
		progressText = continueGeneratingText
	}

	store.AppendMessage(models.MessageAssistant, progressText, models.StepContent)

	batch, err := s.generator.GenerateContent(ctx, scenario.ID)
	if err != nil {
		store.AppendMessage(models.MessageAssistant, generationFailedText, models.StepContent)
		s.logger.ErrorContext(ctx, "Content generation failed", "session_id", id, "scenario_id", scenario.ID, "error", err)

		return store.Snapshot(), fmt.Errorf("generate content: %w", err)
	}

	var existing []models.ContentSequence
	if appendMode {
		existing = store.ContentSequences()
	}

	merged := sequence.AppendGenerated(existing, batch)
	store.ReplaceContentSequences(merged)

	coverage := sequence.CoverageDays(merged)

	if appendMode {
		store.AppendMessage(models.MessageAssistant, continueDoneText(len(batch), len(merged), coverage), models.StepContent)
	} else {
		store.AppendMessage(models.MessageAssistant, generationDoneText(merged), models.StepContent)
	}

	s.logger.InfoContext(ctx, "Content generated",
		"session_id", id,
		"scenario_id", scenario.ID,
		"batch_size", len(batch),
		"total", len(merged),
		"append", appendMode,
	)
	s.publish(ctx, id, events.ContentGenerated{
		BaseEvent:    s.baseEvent(events.ContentGeneratedEvent, id),
		ScenarioID:   scenario.ID,
		BatchSize:    len(batch),
		TotalCount:   len(merged),
		CoverageDays: coverage,
		Appended:     appendMode,
	})

	return store.Snapshot(), nil
}

// EditContent patches the named fields of one content item. Editing Days is
// a user-directed override and never renumbers siblings.
func (s *Service) EditContent(id, contentID string, patch models.ContentPatch) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	if patch.IsZero() {
		return models.Session{}, ErrEmptyPatch
	}

	if err := store.PatchContentSequenceByID(contentID, patch); err != nil {
		return models.Session{}, err
	}

	return store.Snapshot(), nil
}

// RemoveContent deletes one item and renumbers the survivors back to a
// contiguous 1..N range. If the removed item was open in the editor, the
// editor closes.
func (s *Service) RemoveContent(id, contentID string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	updated, err := sequence.Remove(store.ContentSequences(), contentID)
	if err != nil {
		return models.Session{}, err
	}

	store.ReplaceContentSequences(updated)

	if editing := store.Snapshot().EditingContent; editing != nil && editing.ID == contentID {
		store.CloseEditor()
	}

	return store.Snapshot(), nil
}

// ConfirmContent marks the content step done: a summary lands in the
// transcript and the wizard moves to segmentation. Confirmation does not
// freeze the list; edits remain possible afterwards.
func (s *Service) ConfirmContent(ctx context.Context, id string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	list := store.ContentSequences()
	if len(list) == 0 {
		return models.Session{}, ErrNoContentToConfirm
	}

	coverage := sequence.CoverageDays(list)
	store.AppendMessage(models.MessageAssistant, confirmContentText(len(list), coverage), models.StepContent)
	current := store.AdvanceStep()

	s.publish(ctx, id, events.ContentConfirmed{
		BaseEvent:    s.baseEvent(events.ContentConfirmedEvent, id),
		TotalCount:   len(list),
		CoverageDays: coverage,
	})
	s.publishStep(ctx, id, current)

	return store.Snapshot(), nil
}

// OpenEditor opens the single editor slot, optionally targeting one content
// item. Opening over an already-open editor replaces the target.
func (s *Service) OpenEditor(id, contentID string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	if contentID == "" {
		store.OpenEditor(nil)

		return store.Snapshot(), nil
	}

	for _, item := range store.ContentSequences() {
		if item.ID == contentID {
			store.OpenEditor(&item)

			return store.Snapshot(), nil
		}
	}

	return models.Session{}, sequence.ErrContentNotFound
}

// CloseEditor clears the editor slot.
func (s *Service) CloseEditor(id string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	store.CloseEditor()

	return store.Snapshot(), nil
}

// Classify dry-runs the condition classifier without touching any session.
func (s *Service) Classify(condition string) (segment.Classification, error) {
	if strings.TrimSpace(condition) == "" {
		return segment.Classification{}, ErrEmptyCondition
	}

	return segment.ClassifyCondition(condition), nil
}

// ApplySegmentOption applies one catalog option to the session's segment
// list. The new-customer option replaces any prior new-customer segment (at
// most one per session); condition-based options append. A condition the
// classifier cannot automate still produces a usable manual segment; that is
// a soft, advisory outcome, not an error.
func (s *Service) ApplySegmentOption(ctx context.Context, id, optionID, condition, overrideTag string) (models.Session, error) {
	store, err := s.sessions.Get(id)
	if err != nil {
		return models.Session{}, err
	}

	option, ok := segment.OptionByID(optionID)
	if !ok {
		return models.Session{}, ErrUnknownSegmentOption
	}

	existing := store.UserSegments()
	hadNone := len(existing) == 0

	var (
		added  models.UserSegment
		reason string
	)

	switch optionID {
	case "new":
		added = segment.NewCustomerSegment()

		kept := make([]models.UserSegment, 0, len(existing))

		for _, seg := range existing {
			if seg.Type != models.SegmentNew {
				kept = append(kept, seg)
			}
		}

		existing = kept
	default:
		condition = strings.TrimSpace(condition)
		if condition == "" {
			return models.Session{}, ErrEmptyCondition
		}

		if optionID == "manual" {
			// The operator explicitly chose manual tagging; the classifier
			// only contributes the tag suggestion.
			added = segment.ManualConditionSegment(condition, overrideTag)
		} else {
			seg, classification := segment.ConditionSegment(condition, overrideTag)
			if !classification.Automatable {
				reason = classification.Reason
			}

			added = seg
		}
	}

	updated := append(existing, added)
	store.ReplaceUserSegments(updated)
	store.AppendMessage(models.MessageAssistant, segmentAddedText(optionID, option.Name, added, reason), models.StepSegments)

	if hadNone {
		store.AppendMessage(
			models.MessageAssistant,
			strategyCompleteText(len(store.ContentSequences()), len(updated)),
			models.StepSegments,
		)
	}

	s.logger.InfoContext(ctx, "Segment option applied",
		"session_id", id,
		"option_id", optionID,
		"segment_type", added.Type,
	)
	s.publish(ctx, id, events.SegmentsUpdated{
		BaseEvent:    s.baseEvent(events.SegmentsUpdatedEvent, id),
		SegmentCount: len(updated),
		OptionID:     optionID,
	})

	return store.Snapshot(), nil
}

func (s *Service) baseEvent(eventType events.EventType, sessionID string) events.BaseEvent {
	return events.BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		SessionID: sessionID,
	}
}

func (s *Service) publish(ctx context.Context, sessionID string, event eventbus.Event) {
	if s.eventBus == nil {
		return
	}

	if err := s.eventBus.Publish(ctx, sessionID, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish session event",
			"session_id", sessionID,
			"event_type", event.GetType(),
			"error", err,
		)
	}
}

func (s *Service) publishStep(ctx context.Context, sessionID string, step models.Step) {
	s.publish(ctx, sessionID, events.StepChanged{
		BaseEvent: s.baseEvent(events.StepChangedEvent, sessionID),
		Step:      step,
	})
}
