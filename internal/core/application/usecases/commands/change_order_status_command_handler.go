package commands

import (
	"context"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles generic status transitions.
// Loads the order, applies the transition through the aggregate and persists
// it with an optimistic version check, then publishes the update events for
// the new status after commit.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status transition operations.
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
// Disallowed transitions surface errs.ErrInvalidStatusTransition; concurrent
// writers lose the version check and surface errs.ErrVersionIsInvalid. The
// table is never touched here, even when the transition is terminal.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (order.Snapshot, error) {
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

	if err = ord.ChangeStatus(cmd.Target()); err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return order.Snapshot{}, err
	}

	snapshot, err := assembleSnapshot(ctx, uow, ord)
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, err
	}

	for _, event := range order.TransitionEvents(cmd.Target(), snapshot) {
		h.publisher.Publish(ctx, event)
	}

	return snapshot, nil
}
