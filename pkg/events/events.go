// Package events defines the event types emitted as a wizard session
// progresses. Consumers are in-process observers (the UI feed, audit logs);
// nothing here crosses a network boundary.
package events

import (
	"time"

	"github.com/whalekit/strategist/pkg/models"
)

type EventType string

// Topic carries every session lifecycle event.
const Topic = "strategist.sessions"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	SessionCreatedEvent   EventType = "session.created"
	SessionResetEvent     EventType = "session.reset"
	StepChangedEvent      EventType = "session.step.changed"
	ScenarioSelectedEvent EventType = "session.scenario.selected"
	BusinessAnalyzedEvent EventType = "session.business.analyzed"
	ContentGeneratedEvent EventType = "session.content.generated"
	ContentConfirmedEvent EventType = "session.content.confirmed"
	SegmentsUpdatedEvent  EventType = "session.segments.updated"
)

type BaseEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"session_id"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type SessionCreated struct {
	BaseEvent
}

func (e SessionCreated) GetType() EventType {
	return SessionCreatedEvent
}

type SessionReset struct {
	BaseEvent
}

func (e SessionReset) GetType() EventType {
	return SessionResetEvent
}

type StepChanged struct {
	BaseEvent

	Step models.Step `json:"step"`
}

func (e StepChanged) GetType() EventType {
	return StepChangedEvent
}

type ScenarioSelected struct {
	BaseEvent

	ScenarioID string `json:"scenario_id"`
}

func (e ScenarioSelected) GetType() EventType {
	return ScenarioSelectedEvent
}

type BusinessAnalyzed struct {
	BaseEvent

	Industry  string `json:"industry,omitempty"`
	FileCount int    `json:"file_count"`
}

func (e BusinessAnalyzed) GetType() EventType {
	return BusinessAnalyzedEvent
}

type ContentGenerated struct {
	BaseEvent

	ScenarioID   string `json:"scenario_id"`
	BatchSize    int    `json:"batch_size"`
	TotalCount   int    `json:"total_count"`
	CoverageDays int    `json:"coverage_days"`
	Appended     bool   `json:"appended"` // false for a fresh generation, true for continue-generation
}

func (e ContentGenerated) GetType() EventType {
	return ContentGeneratedEvent
}

type ContentConfirmed struct {
	BaseEvent

	TotalCount   int `json:"total_count"`
	CoverageDays int `json:"coverage_days"`
}

func (e ContentConfirmed) GetType() EventType {
	return ContentConfirmedEvent
}

type SegmentsUpdated struct {
	BaseEvent

	SegmentCount int    `json:"segment_count"`
	OptionID     string `json:"option_id"`
}

func (e SegmentsUpdated) GetType() EventType {
	return SegmentsUpdatedEvent
}
