package models

// SegmentType discriminates how a segment's tag gets applied to users.
type SegmentType string

const (
	// SegmentNew tags every newly added contact, no condition involved.
	SegmentNew SegmentType = "new"
	// SegmentAuto tags users matching a system-checkable condition.
	SegmentAuto SegmentType = "auto"
	// SegmentManual tags users by operator judgement.
	SegmentManual SegmentType = "manual"
)

// UserSegment is one targeting rule. A new-customer segment carries no
// criteria; a condition-based segment always carries non-empty criteria and
// a tag. Segments are immutable records: callers replace, never patch.
type UserSegment struct {
	ID           string      `json:"id"           validate:"required"`
	Name         string      `json:"name"         validate:"required"`
	Type         SegmentType `json:"type"         validate:"required,oneof=new auto manual"`
	Criteria     string      `json:"criteria,omitempty"`
	Requirements []string    `json:"requirements,omitempty"` // integrations needed before automation can run
	Color        string      `json:"color"`
	Tag          string      `json:"tag"`
	TaskID       string      `json:"task_id,omitempty"` // non-owning reference to the generated follow-up task
}

// SegmentOption is a catalog entry for the segmentation step: one selectable
// strategy together with the preset segments it previews.
type SegmentOption struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Segments    []UserSegment `json:"segments"`
}
