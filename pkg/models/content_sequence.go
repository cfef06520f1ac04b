package models

// ContentChannel is the delivery channel for a content item.
type ContentChannel string

// ChannelPrivate is the only channel the current product delivers to. The
// field stays on the model so group or moments channels can be added without
// a schema change.
const ChannelPrivate ContentChannel = "private"

// ContentSequence is one scheduled outreach message. Within a session's
// content list, Days and Order form a contiguous ascending 1..N range after
// generation, append and removal. A direct edit of Days is a user-directed
// override and does not renumber siblings.
type ContentSequence struct {
	ID          string         `json:"id"          validate:"required"`
	Title       string         `json:"title"       validate:"required"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	Order       int            `json:"order"       validate:"min=1"`
	Days        int            `json:"days"        validate:"min=1"`
	Time        string         `json:"time"` // delivery time of day, HH:MM:SS
	Type        ContentChannel `json:"type"`
}

// ContentPatch is a partial update for a single content item. Nil fields are
// left untouched.
type ContentPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	Days        *int    `json:"days,omitempty"  validate:"omitempty,min=1"`
	Time        *string `json:"time,omitempty"`
}

// ApplyTo writes the provided fields of the patch onto item.
func (p ContentPatch) ApplyTo(item *ContentSequence) {
	if p.Title != nil {
		item.Title = *p.Title
	}

	if p.Description != nil {
		item.Description = *p.Description
	}

	if p.Content != nil {
		item.Content = *p.Content
	}

	if p.Days != nil {
		item.Days = *p.Days
	}

	if p.Time != nil {
		item.Time = *p.Time
	}
}

// IsZero reports whether the patch carries no fields.
func (p ContentPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Content == nil && p.Days == nil && p.Time == nil
}
