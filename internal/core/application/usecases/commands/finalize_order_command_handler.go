package commands

import (
	"context"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
)

// FinalizeOrderCommandHandler handles the delivery/settlement step.
// Moves a ready order to delivered and frees the table when no other active
// order still occupies it. Publishes the delivery event after commit, plus
// the table-freed event when the table was actually released.
type FinalizeOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewFinalizeOrderCommandHandler creates a handler for finalization operations.
func NewFinalizeOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the finalization command.
// Orders not in the ready status surface errs.ErrBusinessRuleViolation.
func (h *FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) (order.Snapshot, error) {
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

	if err = ord.Finalize(); err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return order.Snapshot{}, err
	}

	tableFreed, err := releaseTableIfIdle(ctx, uow, ord)
	if err != nil {
		return order.Snapshot{}, err
	}

	snapshot, err := assembleSnapshot(ctx, uow, ord)
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, err
	}

	h.publisher.Publish(ctx, order.DeliveredEvent(snapshot))
	if tableFreed {
		h.publisher.Publish(ctx, order.TableFreedEvent(*ord.TableID()))
	}

	return snapshot, nil
}
