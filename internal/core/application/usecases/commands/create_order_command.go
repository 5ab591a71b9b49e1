package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItemInput is one requested order line: a product reference, a quantity
// and an optional note. The unit price is never accepted from the caller; it
// is snapshotted from the catalog when the order is created.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
	Note      string
}

// CreateOrderCommand represents a request to open a new order on a table.
// Carries the table, the optional customer, the requested items and the
// identity of the staff member placing the order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(tableID, &customerID, items, "sem cebola", waiterID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	snapshot, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s opened on table %s", snapshot.Numero, snapshot.Mesa.ID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	tableID    kernel.UUID
	customerID *kernel.UUID
	items      []OrderItemInput
	note       string
	createdBy  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates that the table and author IDs are valid, that at least one item
// is requested, and that every item carries a valid product reference and an
// in-range quantity. Returns an error if any validation fails.
func NewCreateOrderCommand(
	tableID kernel.UUID,
	customerID *kernel.UUID,
	items []OrderItemInput,
	note string,
	createdBy kernel.UUID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setTableID(tableID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
		orderCommand.setCreatedBy(createdBy),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.note = note
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// TableID returns the table the order is opened on.
func (c CreateOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

// CustomerID returns the optional customer reference.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// Note returns the optional order-level note.
func (c CreateOrderCommand) Note() string {
	return c.note
}

// CreatedBy returns the staff member placing the order.
func (c CreateOrderCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CreateOrderCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity < order.MinItemQuantity || item.Quantity > order.MaxItemQuantity {
			return errs.NewValueIsOutOfRangeError(
				"quantity", item.Quantity, order.MinItemQuantity, order.MaxItemQuantity)
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}
