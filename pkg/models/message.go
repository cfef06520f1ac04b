package models

import "time"

// MessageType identifies which side of the conversation authored a message.
type MessageType string

const (
	MessageUser      MessageType = "user"
	MessageAssistant MessageType = "assistant"
)

// Message is one transcript entry. The transcript is an append-only log:
// entries are never mutated or deleted after creation.
type Message struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"      validate:"required,oneof=user assistant"`
	Content   string      `json:"content"   validate:"required"`
	Timestamp time.Time   `json:"timestamp"`
	Step      Step        `json:"step,omitempty"` // wizard step that produced the entry
}
