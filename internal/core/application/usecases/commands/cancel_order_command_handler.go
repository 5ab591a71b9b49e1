package commands

import (
	"context"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancels the order, records the reason and frees the table when no other
// active order still occupies it, all in one transaction. Publishes the
// cancellation event after commit.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Orders already in a terminal status surface errs.ErrBusinessRuleViolation.
// The table is released only when the cancelled order was the last active one
// on it; no table event is emitted on this path.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = ord.Cancel(cmd.Reason()); err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return order.Snapshot{}, err
	}

	if _, err = releaseTableIfIdle(ctx, uow, ord); err != nil {
		return order.Snapshot{}, err
	}

	snapshot, err := assembleSnapshot(ctx, uow, ord)
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, err
	}

	h.publisher.Publish(ctx, order.CancelledEvent(snapshot))

	return snapshot, nil
}
