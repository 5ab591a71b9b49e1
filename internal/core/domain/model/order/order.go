package order

import (
	"errors"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// DefaultCancellationReason is recorded when an order is cancelled without an
// explicit reason.
const DefaultCancellationReason = "Cancelado"

// Order is the aggregate root of the lifecycle engine. It owns its line items
// and enforces the status state machine.
//
// Invariants:
//   - at least one item at creation; the item set is immutable afterwards
//   - total equals the sum of item subtotals computed at creation and never
//     changes, even if product prices change later
//   - numero is the zero-padded daily sequence assigned at creation
//   - status is the only mutable field besides cancellationReason; orders are
//     never deleted, terminal states are kept indefinitely
//
// The version field carries the optimistic-concurrency token the persistence
// layer checks on every update, so two concurrent transitions cannot both win
// against a stale status.
type Order struct {
	id                 kernel.UUID
	numero             string
	status             Status
	total              decimal.Decimal
	tableID            *kernel.UUID
	customerID         *kernel.UUID
	createdBy          kernel.UUID
	createdAt          time.Time
	note               string
	cancellationReason string
	items              []Item
	version            int

	isConstructed bool
}

// NewOrder creates an order in StatusPreparando with its total computed from
// the item subtotals. The table reference is optional at the model level;
// the creation use case requires one.
func NewOrder(
	id kernel.UUID,
	numero string,
	tableID *kernel.UUID,
	customerID *kernel.UUID,
	createdBy kernel.UUID,
	items []Item,
	note string,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := createdBy.Validate(); err != nil {
		return nil, err
	}
	if numero == "" {
		return nil, errs.NewValueIsRequiredError("numero")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if tableID != nil {
		if err := tableID.Validate(); err != nil {
			return nil, err
		}
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return nil, err
		}
	}

	total := decimal.Zero
	owned := make([]Item, 0, len(items))
	for _, item := range items {
		if !item.isConstructed {
			return nil, errs.NewValueIsInvalidError("item")
		}
		total = total.Add(item.Subtotal())
		owned = append(owned, item)
	}

	return &Order{
		id:            id,
		numero:        numero,
		status:        StatusPreparando,
		total:         total,
		tableID:       tableID,
		customerID:    customerID,
		createdBy:     createdBy,
		createdAt:     createdAt,
		note:          note,
		items:         owned,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation-time rules.
func RestoreOrder(
	id kernel.UUID,
	numero string,
	status Status,
	total decimal.Decimal,
	tableID *kernel.UUID,
	customerID *kernel.UUID,
	createdBy kernel.UUID,
	items []Item,
	note string,
	cancellationReason string,
	createdAt time.Time,
	version int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                 id,
		numero:             numero,
		status:             status,
		total:              total,
		tableID:            tableID,
		customerID:         customerID,
		createdBy:          createdBy,
		createdAt:          createdAt,
		note:               note,
		cancellationReason: cancellationReason,
		items:              items,
		version:            version,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Numero returns the human-facing daily sequence number, e.g. "007".
func (o *Order) Numero() string {
	return o.numero
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the sum of item subtotals computed at creation.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// TableID returns the associated table's identifier, or nil.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// CustomerID returns the associated customer's identifier, or nil.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// CreatedBy returns the identifier of the user who placed the order.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Note returns the optional order-level note.
func (o *Order) Note() string {
	return o.note
}

// CancellationReason returns the recorded reason, empty unless cancelled.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Version returns the optimistic-concurrency token loaded from persistence.
func (o *Order) Version() int {
	return o.version
}

// ChangeStatus moves the order into target if the state machine permits it.
// It performs no side effects beyond the status field; in particular it never
// touches the associated table, which is released only by Cancel and Finalize.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order into StatusCancelado and records the reason,
// defaulting to DefaultCancellationReason. Terminal orders cannot be
// cancelled.
func (o *Order) Cancel(reason string) error {
	if o.status.IsTerminal() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("cannot cancel an order in status %q", o.status),
		)
	}

	if reason == "" {
		reason = DefaultCancellationReason
	}

	o.status = StatusCancelado
	o.cancellationReason = reason
	return nil
}

// Finalize moves the order into StatusEntregue. Only orders in StatusPronto
// can be finalized.
func (o *Order) Finalize() error {
	if o.status != StatusPronto {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("order must be %q to finalize, current status is %q", StatusPronto, o.status),
		)
	}

	o.status = StatusEntregue
	return nil
}
