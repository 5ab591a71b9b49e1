// Package ports defines the contracts between the order lifecycle engine and
// infrastructure: repositories, the unit of work, the daily number sequencer
// and the event publisher. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written together with their line items; items never change after
// the initial insert.
type OrderRepository interface {
	// Add persists a new order aggregate and all of its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change (and cancellation reason) for an
	// existing order. Implementations must apply an optimistic version check
	// and surface errs.ErrVersionIsInvalid when the aggregate is stale.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountActiveByTable counts orders referencing the table that are not in
	// a terminal status. Used to decide whether releasing an order releases
	// the table.
	CountActiveByTable(ctx context.Context, tableID kernel.UUID) (int64, error)
}
