package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand represents a request to mark a ready order as
// delivered and settle its table.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinalizeOrderCommand creates a command to finalize an order.
func NewFinalizeOrderCommand(orderID kernel.UUID) (FinalizeOrderCommand, error) {
	finalizeCommand := FinalizeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := finalizeCommand.setOrderID(orderID); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return finalizeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFinalizeOrderCommandIsNotConstructed if validation fails.
func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// OrderID returns the order to finalize.
func (c FinalizeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *FinalizeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
