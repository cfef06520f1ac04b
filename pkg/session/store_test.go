package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whalekit/strategist/pkg/models"
	"github.com/whalekit/strategist/pkg/sequence"
)

func TestNewStore_StartsEmptyAtStepOne(t *testing.T) {
	t.Parallel()

	store := NewStore()
	snap := store.Snapshot()

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, models.StepScenario, snap.CurrentStep)
	assert.Empty(t, snap.Messages)
	assert.Nil(t, snap.SelectedScenario)
	assert.True(t, snap.BusinessInfo.IsEmpty())
	assert.Empty(t, snap.ContentSequences)
	assert.Empty(t, snap.UserSegments)
	assert.False(t, snap.IsLoading)
	assert.False(t, snap.IsEditorOpen)
}

func TestStore_AdvanceStep_ClampsAtCeiling(t *testing.T) {
	t.Parallel()

	store := NewStore()

	for range 10 {
		store.AdvanceStep()
	}

	assert.Equal(t, models.StepSegments, store.CurrentStep())
}

func TestStore_RetreatStep_FloorsAtOne(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetStep(models.StepSegments)

	for range 10 {
		store.RetreatStep()
	}

	assert.Equal(t, models.StepScenario, store.CurrentStep())
}

func TestStore_SetStep_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	store := NewStore()

	assert.Equal(t, models.StepContent, store.SetStep(3))
	assert.Equal(t, models.StepSegments, store.SetStep(42))
	assert.Equal(t, models.StepScenario, store.SetStep(-1))
}

func TestStore_AppendMessage_AssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	store := NewStore()

	first := store.AppendMessage(models.MessageAssistant, "welcome", models.StepScenario)
	second := store.AppendMessage(models.MessageUser, "hi", models.StepScenario)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.Timestamp.IsZero())

	messages := store.Snapshot().Messages
	require.Len(t, messages, 2)
	assert.Equal(t, "welcome", messages[0].Content)
	assert.Equal(t, models.MessageUser, messages[1].Type)
}

func TestStore_MergeBusinessInfo_IsAdditive(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.MergeBusinessInfo(models.BusinessInfo{Industry: "A"})
	info := store.MergeBusinessInfo(models.BusinessInfo{ProductService: "B"})

	assert.Equal(t, "A", info.Industry)
	assert.Equal(t, "B", info.ProductService)
}

func TestStore_PatchContentSequenceByID(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.ReplaceContentSequences([]models.ContentSequence{
		{ID: "c1", Title: "one", Order: 1, Days: 1, Type: models.ChannelPrivate},
		{ID: "c2", Title: "two", Order: 2, Days: 2, Type: models.ChannelPrivate},
	})

	title := "two, revised"
	err := store.PatchContentSequenceByID("c2", models.ContentPatch{Title: &title})
	require.NoError(t, err)

	list := store.ContentSequences()
	assert.Equal(t, "two, revised", list[1].Title)
	assert.Equal(t, "one", list[0].Title)
}

func TestStore_PatchContentSequenceByID_UnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.ReplaceContentSequences([]models.ContentSequence{
		{ID: "c1", Title: "one", Order: 1, Days: 1, Type: models.ChannelPrivate},
	})

	title := "ghost"
	err := store.PatchContentSequenceByID("missing", models.ContentPatch{Title: &title})
	assert.ErrorIs(t, err, sequence.ErrContentNotFound)

	// No unrelated item was mutated.
	assert.Equal(t, "one", store.ContentSequences()[0].Title)
}

func TestStore_Snapshot_IsDefensiveCopy(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetScenario(models.Scenario{ID: "nurture", Title: "线索培育"})
	store.ReplaceContentSequences([]models.ContentSequence{
		{ID: "c1", Title: "one", Order: 1, Days: 1, Type: models.ChannelPrivate},
	})
	store.ReplaceUserSegments([]models.UserSegment{
		{ID: "s1", Name: "新客户", Type: models.SegmentNew, Tag: "新客户", Requirements: []string{"order system integration"}},
	})
	store.AppendMessage(models.MessageAssistant, "hello", models.StepScenario)

	snap := store.Snapshot()
	snap.ContentSequences[0].Title = "tampered"
	snap.UserSegments[0].Requirements[0] = "tampered"
	snap.Messages[0].Content = "tampered"
	snap.SelectedScenario.Title = "tampered"

	fresh := store.Snapshot()
	assert.Equal(t, "one", fresh.ContentSequences[0].Title)
	assert.Equal(t, "order system integration", fresh.UserSegments[0].Requirements[0])
	assert.Equal(t, "hello", fresh.Messages[0].Content)
	assert.Equal(t, "线索培育", fresh.SelectedScenario.Title)
}

func TestStore_Editor_ReplaceNotQueue(t *testing.T) {
	t.Parallel()

	store := NewStore()
	first := models.ContentSequence{ID: "c1", Title: "one", Order: 1, Days: 1}
	second := models.ContentSequence{ID: "c2", Title: "two", Order: 2, Days: 2}

	store.OpenEditor(&first)
	store.OpenEditor(&second)

	snap := store.Snapshot()
	assert.True(t, snap.IsEditorOpen)
	require.NotNil(t, snap.EditingContent)
	assert.Equal(t, "c2", snap.EditingContent.ID)

	store.CloseEditor()
	snap = store.Snapshot()
	assert.False(t, snap.IsEditorOpen)
	assert.Nil(t, snap.EditingContent)
}

func TestStore_BeginLoading_SingleInFlight(t *testing.T) {
	t.Parallel()

	store := NewStore()

	assert.True(t, store.BeginLoading())
	assert.False(t, store.BeginLoading(), "second acquisition must fail while busy")

	store.SetLoading(false)
	assert.True(t, store.BeginLoading())
}

func TestStore_Reset_RestoresInitialState(t *testing.T) {
	t.Parallel()

	store := NewStore()
	id := store.ID()

	store.SetStep(models.StepSegments)
	store.AppendMessage(models.MessageUser, "hi", models.StepSegments)
	store.SetScenario(models.Scenario{ID: "nurture"})
	store.MergeBusinessInfo(models.BusinessInfo{Industry: "fitness"})
	store.ReplaceContentSequences([]models.ContentSequence{{ID: "c1", Days: 1, Order: 1}})
	store.ReplaceUserSegments([]models.UserSegment{{ID: "s1", Type: models.SegmentNew}})
	store.SetLoading(true)

	store.Reset()

	snap := store.Snapshot()
	assert.Equal(t, id, snap.ID, "reset keeps the session id")
	assert.Equal(t, models.StepScenario, snap.CurrentStep)
	assert.Empty(t, snap.Messages)
	assert.Nil(t, snap.SelectedScenario)
	assert.True(t, snap.BusinessInfo.IsEmpty())
	assert.Empty(t, snap.ContentSequences)
	assert.Empty(t, snap.UserSegments)
	assert.False(t, snap.IsLoading)
}
