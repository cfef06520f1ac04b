package sequence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whalekit/strategist/pkg/models"
)

func buildList(n int) []models.ContentSequence {
	list := make([]models.ContentSequence, 0, n)

	for i := range n {
		list = append(list, models.ContentSequence{
			ID:    fmt.Sprintf("c%d", i+1),
			Title: fmt.Sprintf("Day %d touch", i+1),
			Order: i + 1,
			Days:  i + 1,
			Time:  "09:30:00",
			Type:  models.ChannelPrivate,
		})
	}

	return list
}

func assertContiguous(t *testing.T, list []models.ContentSequence) {
	t.Helper()

	for i, item := range list {
		assert.Equal(t, i+1, item.Days, "days must form 1..N")
		assert.Equal(t, i+1, item.Order, "order must form 1..N")
	}
}

func TestAppendGenerated_ContinuesAfterMaxDays(t *testing.T) {
	t.Parallel()

	existing := buildList(3)
	batch := buildList(2) // days 1..2 before re-keying

	merged := AppendGenerated(existing, batch)

	require.Len(t, merged, 5)
	assertContiguous(t, merged)

	for _, item := range merged[3:] {
		assert.Greater(t, item.Days, CoverageDays(existing))
	}
}

func TestAppendGenerated_EmptyExisting(t *testing.T) {
	t.Parallel()

	merged := AppendGenerated(nil, buildList(4))

	require.Len(t, merged, 4)
	assertContiguous(t, merged)
}

func TestAppendGenerated_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	existing := buildList(2)
	batch := buildList(3)

	_ = AppendGenerated(existing, batch)

	assert.Equal(t, 1, batch[0].Days, "batch must be re-keyed on a copy")
	assert.Equal(t, 1, batch[0].Order)
}

func TestAppendGenerated_AfterEditGap(t *testing.T) {
	t.Parallel()

	// A user-directed Days override leaves a gap; the next batch must still
	// continue strictly after the new maximum.
	existing := buildList(3)
	days := 10
	edited, err := Edit(existing, "c3", models.ContentPatch{Days: &days})
	require.NoError(t, err)

	merged := AppendGenerated(edited, buildList(1))
	assert.Equal(t, 11, merged[3].Days)
	assert.Equal(t, 4, merged[3].Order)
}

func TestRemove_RenumbersContiguously(t *testing.T) {
	t.Parallel()

	list := buildList(5)

	result, err := Remove(list, "c2")
	require.NoError(t, err)
	require.Len(t, result, 4)
	assertContiguous(t, result)

	// Relative order of survivors is preserved.
	assert.Equal(t, []string{"c1", "c3", "c4", "c5"}, idsOf(result))
}

func TestRemove_RepeatedRemovalsStayContiguous(t *testing.T) {
	t.Parallel()

	list := buildList(6)

	for _, id := range []string{"c4", "c1", "c6"} {
		var err error

		list, err = Remove(list, id)
		require.NoError(t, err)
		assertContiguous(t, list)
	}

	assert.Equal(t, []string{"c2", "c3", "c5"}, idsOf(list))
}

func TestRemove_UnknownID(t *testing.T) {
	t.Parallel()

	list := buildList(2)

	result, err := Remove(list, "missing")
	assert.ErrorIs(t, err, ErrContentNotFound)
	assert.Nil(t, result)
	assertContiguous(t, list)
}

func TestRemove_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	list := buildList(3)

	_, err := Remove(list, "c1")
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "c2", "c3"}, idsOf(list))
	assertContiguous(t, list)
}

func TestEdit_PatchesOnlyNamedFields(t *testing.T) {
	t.Parallel()

	list := buildList(3)
	title := "Revised pitch"
	timeOfDay := "20:00:00"

	result, err := Edit(list, "c2", models.ContentPatch{Title: &title, Time: &timeOfDay})
	require.NoError(t, err)

	assert.Equal(t, "Revised pitch", result[1].Title)
	assert.Equal(t, "20:00:00", result[1].Time)
	assert.Equal(t, 2, result[1].Days)
	assert.Equal(t, "Day 1 touch", result[0].Title)
}

func TestEdit_DaysCollisionIsNotRenumbered(t *testing.T) {
	t.Parallel()

	list := buildList(3)
	days := 1 // collides with c1 on purpose

	result, err := Edit(list, "c3", models.ContentPatch{Days: &days})
	require.NoError(t, err)

	// The override stands and siblings keep their keys; contiguity is only
	// restored by Remove. This asymmetry is intentional.
	assert.Equal(t, 1, result[0].Days)
	assert.Equal(t, 2, result[1].Days)
	assert.Equal(t, 1, result[2].Days)
	assert.Equal(t, 3, result[2].Order)
}

func TestEdit_UnknownID(t *testing.T) {
	t.Parallel()

	title := "x"

	_, err := Edit(buildList(1), "missing", models.ContentPatch{Title: &title})
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestCoverageDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, CoverageDays(nil))
	assert.Equal(t, 3, CoverageDays(buildList(3)))
}

func TestGenerateThenDeleteThenAppendFlow(t *testing.T) {
	t.Parallel()

	const k, m = 5, 3

	list := AppendGenerated(nil, buildList(k))

	// Delete the item scheduled on day 2.
	var targetID string

	for _, item := range list {
		if item.Days == 2 {
			targetID = item.ID
		}
	}

	require.NotEmpty(t, targetID)

	list, err := Remove(list, targetID)
	require.NoError(t, err)
	require.Len(t, list, k-1)
	assertContiguous(t, list)

	list = AppendGenerated(list, buildList(m))
	require.Len(t, list, k-1+m)
	assertContiguous(t, list)

	for i, item := range list[k-1:] {
		assert.Equal(t, k+i, item.Days)
	}
}

func idsOf(list []models.ContentSequence) []string {
	ids := make([]string, 0, len(list))

	for _, item := range list {
		ids = append(ids, item.ID)
	}

	return ids
}
