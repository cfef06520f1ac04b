// Package cmd provides common initialization functions for command-line
// applications.
package cmd

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/whalekit/strategist/pkg/eventbus"
)

// NewEventBus creates the session event feed for the given provider. The
// system runs in a single process, so "memory" is the production transport;
// "none" disables publishing entirely.
func NewEventBus(provider string, logger *slog.Logger) eventbus.EventBus {
	switch provider {
	case "memory":
		return eventbus.NewGoChannelEventBus(watermill.NewSlogLogger(logger))
	case "none":
		return nil
	default:
		panic("Unsupported event bus provider: " + provider)
	}
}
