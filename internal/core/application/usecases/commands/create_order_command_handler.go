package commands

import (
	"context"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for opening an order.
// Resolves products for price snapshots, claims the next daily number,
// persists the order with its items and occupies the table, all in one
// transaction. The creation event is published only after commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(tableID, nil, items, "", waiterID)
//
//	snapshot, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now persisted, numbered and visible to the kitchen
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence and an EventPublisher
// for the post-commit notification.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// Verifies the collaborators exist, rejects unavailable products, snapshots
// each product's current price into the item, claims the daily number and
// writes the order, its items and the table occupancy atomically. Returns the
// full order snapshot assembled inside the transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.Snapshot, error) {
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

	if customerID := cmd.CustomerID(); customerID != nil {
		if _, err := uow.CustomerRepository().Get(ctx, *customerID); err != nil {
			return order.Snapshot{}, err
		}
	}

	tbl, err := uow.TableRepository().Get(ctx, cmd.TableID())
	if err != nil {
		return order.Snapshot{}, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		prod, err := uow.ProductRepository().Get(ctx, input.ProductID)
		if err != nil {
			return order.Snapshot{}, err
		}
		if !prod.IsAvailable() {
			return order.Snapshot{}, errs.NewBusinessRuleViolationError(
				fmt.Sprintf("product %q is not available", prod.Nome()))
		}

		item, err := order.NewItem(prod.ID(), input.Quantity, prod.Preco(), input.Note)
		if err != nil {
			return order.Snapshot{}, err
		}
		items = append(items, item)
	}

	now := time.Now()
	numero, err := uow.OrderNumbers().Next(ctx, now)
	if err != nil {
		return order.Snapshot{}, err
	}

	tableID := cmd.TableID()
	newOrder, err := order.NewOrder(
		kernel.NewUUID(), numero, &tableID, cmd.CustomerID(), cmd.CreatedBy(), items, cmd.Note(), now)
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return order.Snapshot{}, err
	}

	tbl.Occupy()
	if err = uow.TableRepository().Update(ctx, tbl); err != nil {
		return order.Snapshot{}, err
	}

	snapshot, err := assembleSnapshot(ctx, uow, newOrder)
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, err
	}

	h.publisher.Publish(ctx, order.CreatedEvent(snapshot))

	return snapshot, nil
}
