package queries

import (
	"context"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	snapshot, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items.
// Returns errs.ErrObjectNotFound when no order has the given ID.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	snapshot, err := h.fetchOrder(ctx, query)
	if err != nil {
		return order.Snapshot{}, err
	}

	items, err := loadItems(ctx, h.db, []string{snapshot.ID})
	if err != nil {
		return order.Snapshot{}, err
	}
	if orderItems, ok := items[snapshot.ID]; ok {
		snapshot.Itens = orderItems
	}

	return snapshot, nil
}

func (h GetOrderQueryHandler) fetchOrder(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	rows, err := h.db.WithContext(ctx).Raw(
		orderSelect+` WHERE o.id = ?`, query.OrderID().String()).Rows()
	if err != nil {
		return order.Snapshot{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return order.Snapshot{}, err
		}
		return order.Snapshot{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}

	return scanOrderSnapshot(rows)
}
