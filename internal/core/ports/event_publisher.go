package ports

import (
	"context"

	"comanda/internal/core/domain/model/order"
)

// EventPublisher fans an event out to its channels. Publishing is best
// effort: implementations deliver to currently-connected subscribers without
// acknowledgment, retry or backlog, log their own failures, and never block
// the caller on delivery problems. Committed storage state, not notification
// delivery, is the source of truth.
//
// The publisher is injected into the command handlers so transport wiring
// stays out of the lifecycle logic.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event)
}
