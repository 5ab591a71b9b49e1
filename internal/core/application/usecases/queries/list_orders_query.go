package queries

import (
	"errors"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
	"comanda/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// StatusFilterPaid is a legacy filter token kept for API compatibility. No
// order ever carries it as a status, so filtering by it yields an empty
// result unless combined with real statuses.
const StatusFilterPaid = "pago"

func statusFilterTokens() map[string]struct{} {
	return map[string]struct{}{
		string(order.StatusAguardando): {},
		string(order.StatusPreparando): {},
		string(order.StatusPronto):     {},
		string(order.StatusEntregue):   {},
		string(order.StatusCancelado):  {},
		StatusFilterPaid:               {},
	}
}

// ListOrdersQuery retrieves orders matching optional filters: status set,
// table, customer and creation period. With no filters it returns every
// order, newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery([]string{"preparando", "pronto"}, &tableID, nil, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid filters: %w", err)
//	}
//
//	snapshots, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(snapshots))
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	statuses   []string
	tableID    *kernel.UUID
	customerID *kernel.UUID
	from       *time.Time
	to         *time.Time

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. All filters are
// optional; status tokens must belong to the known status set (plus the
// legacy "pago" token) and the period bounds must not be inverted.
func NewListOrdersQuery(
	statuses []string,
	tableID *kernel.UUID,
	customerID *kernel.UUID,
	from *time.Time,
	to *time.Time,
) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setStatuses(statuses),
		listQuery.setTableID(tableID),
		listQuery.setCustomerID(customerID),
		listQuery.setPeriod(from, to),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Statuses returns the status filter tokens, possibly empty.
func (q ListOrdersQuery) Statuses() []string {
	return q.statuses
}

// TableID returns the optional table filter.
func (q ListOrdersQuery) TableID() *kernel.UUID {
	return q.tableID
}

// CustomerID returns the optional customer filter.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// From returns the optional lower creation-time bound.
func (q ListOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the optional upper creation-time bound.
func (q ListOrdersQuery) To() *time.Time {
	return q.to
}

func (q *ListOrdersQuery) setStatuses(statuses []string) error {
	tokens := statusFilterTokens()
	for _, status := range statuses {
		if _, ok := tokens[status]; !ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"status", fmt.Errorf("%q is not a valid status filter", status))
		}
	}

	q.statuses = statuses
	return nil
}

func (q *ListOrdersQuery) setTableID(tableID *kernel.UUID) error {
	if tableID == nil {
		return nil
	}
	if err := tableID.Validate(); err != nil {
		return err
	}

	q.tableID = tableID
	return nil
}

func (q *ListOrdersQuery) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

func (q *ListOrdersQuery) setPeriod(from, to *time.Time) error {
	if from != nil && to != nil && to.Before(*from) {
		return errs.NewValueIsInvalidErrorWithCause(
			"period", errors.New("upper bound precedes lower bound"))
	}

	q.from = from
	q.to = to
	return nil
}
