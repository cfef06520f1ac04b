// Package sequence maintains the temporal consistency of an outreach content
// list: appending generated batches after the current maximum day, and
// renumbering days and order into a contiguous range after removals.
package sequence

import (
	"errors"

	"github.com/whalekit/strategist/pkg/models"
)

// ErrContentNotFound is returned when no item in the list matches the
// requested id. Callers treat it as a no-op signal, not a fatal error.
var ErrContentNotFound = errors.New("content item not found")

// AppendGenerated re-keys every item of batch so its days continue strictly
// after the current maximum and its order continues from the existing length,
// then returns existing plus the re-keyed batch. With an empty existing list
// the batch lands on days 1..len(batch). The inputs are not mutated.
func AppendGenerated(existing, batch []models.ContentSequence) []models.ContentSequence {
	maxDays := CoverageDays(existing)

	merged := make([]models.ContentSequence, 0, len(existing)+len(batch))
	merged = append(merged, existing...)

	for i, item := range batch {
		item.Days = maxDays + i + 1
		item.Order = len(existing) + i + 1
		merged = append(merged, item)
	}

	return merged
}

// Remove filters out the item with the matching id and renumbers the
// survivors so days and order both become the contiguous range 1..N,
// preserving the survivors' relative order. Returns ErrContentNotFound when
// the id matches nothing; the input is not mutated either way.
func Remove(existing []models.ContentSequence, id string) ([]models.ContentSequence, error) {
	survivors := make([]models.ContentSequence, 0, len(existing))
	found := false

	for _, item := range existing {
		if item.ID == id {
			found = true

			continue
		}

		survivors = append(survivors, item)
	}

	if !found {
		return nil, ErrContentNotFound
	}

	return renumber(survivors), nil
}

// Edit applies the provided fields of patch to exactly the item matching id
// and returns a new list. Editing Days is a user-directed override: siblings
// are deliberately not renumbered even if the new value collides or falls out
// of order, unlike Remove which always restores contiguity.
func Edit(existing []models.ContentSequence, id string, patch models.ContentPatch) ([]models.ContentSequence, error) {
	edited := make([]models.ContentSequence, len(existing))
	copy(edited, existing)

	for i := range edited {
		if edited[i].ID == id {
			patch.ApplyTo(&edited[i])

			return edited, nil
		}
	}

	return nil, ErrContentNotFound
}

// CoverageDays returns the largest day offset in the list, 0 when empty.
func CoverageDays(list []models.ContentSequence) int {
	maxDays := 0

	for _, item := range list {
		if item.Days > maxDays {
			maxDays = item.Days
		}
	}

	return maxDays
}

// renumber rewrites days and order to 1..N in the slice's own order.
func renumber(list []models.ContentSequence) []models.ContentSequence {
	for i := range list {
		list[i].Days = i + 1
		list[i].Order = i + 1
	}

	return list
}
