// Package eventbus implements in-process, best-effort event fan-out.
// Subscribers attach to a channel and receive events over a buffered Go
// channel; a subscriber that cannot keep up loses events instead of blocking
// the publisher. There is no backlog and no redelivery: committed storage
// state is the source of truth, notifications are a convenience.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"comanda/internal/core/domain/model/order"
)

const defaultBufferSize = 16

// Subscription is one subscriber's attachment to a bus channel. The events
// channel is closed on Unsubscribe.
type Subscription struct {
	channel order.Channel
	events  chan order.Event
}

// Events returns the stream of events delivered to this subscription.
func (s *Subscription) Events() <-chan order.Event {
	return s.events
}

// Channel returns the bus channel this subscription is attached to.
func (s *Subscription) Channel() order.Channel {
	return s.channel
}

// Bus fans events out to in-process subscribers, grouped by channel.
// Implements ports.EventPublisher.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[order.Channel]map[*Subscription]struct{}
	bufferSize  int
	logger      *slog.Logger
}

// NewBus creates a bus whose subscriptions buffer up to bufferSize events.
// A non-positive bufferSize falls back to the default.
func NewBus(bufferSize int, logger *slog.Logger) *Bus {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	return &Bus{
		subscribers: make(map[order.Channel]map[*Subscription]struct{}),
		bufferSize:  bufferSize,
		logger:      logger.With("component", "eventbus"),
	}
}

// Subscribe attaches a new subscriber to the given channel.
func (b *Bus) Subscribe(channel order.Channel) *Subscription {
	sub := &Subscription{
		channel: channel,
		events:  make(chan order.Event, b.bufferSize),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[*Subscription]struct{})
	}
	b.subscribers[channel][sub] = struct{}{}

	return sub
}

// Unsubscribe detaches the subscription and closes its events channel.
// Safe to call once per subscription.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.subscribers[sub.channel]
	if !ok {
		return
	}
	if _, ok = subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub.events)
}

// Publish delivers the event to every subscriber of each of its channels.
// Delivery never blocks: a subscriber with a full buffer loses the event and
// the drop is logged.
func (b *Bus) Publish(_ context.Context, event order.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, channel := range event.Channels {
		for sub := range b.subscribers[channel] {
			select {
			case sub.events <- event:
			default:
				b.logger.Warn("subscriber buffer full, event dropped",
					"event", event.Name,
					"channel", string(channel),
				)
			}
		}
	}
}
