package eventbus

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NewGoChannelEventBus builds an event bus on watermill's in-memory GoChannel
// pub/sub. The whole system runs in one process, so this is the production
// transport, not just a test double.
func NewGoChannelEventBus(logger watermill.LoggerAdapter) EventBus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer:            256,
			Persistent:                     false,
			BlockPublishUntilSubscriberAck: false,
		},
		logger,
	)

	// GoChannel implements both Publisher and Subscriber on one instance.
	return NewWatermillEventBus(pubSub, pubSub)
}

// NewTestEventBus is a GoChannel bus tuned for deterministic tests: small
// buffer, persistent messages, publish blocks until the subscriber acks.
func NewTestEventBus(logger watermill.LoggerAdapter) EventBus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer:            10,
			Persistent:                     true,
			BlockPublishUntilSubscriberAck: true,
		},
		logger,
	)

	return NewWatermillEventBus(pubSub, pubSub)
}
