package queries

import (
	"context"
	"strings"

	"comanda/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves filtered order read models from the
// database, newest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the matching orders with their items.
// Filters combine with AND; an empty filter set returns all orders.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)

	if statuses := query.Statuses(); len(statuses) > 0 {
		conditions = append(conditions, "o.status IN ?")
		args = append(args, statuses)
	}
	if tableID := query.TableID(); tableID != nil {
		conditions = append(conditions, "o.mesa_id = ?")
		args = append(args, tableID.String())
	}
	if customerID := query.CustomerID(); customerID != nil {
		conditions = append(conditions, "o.cliente_id = ?")
		args = append(args, customerID.String())
	}
	if from := query.From(); from != nil {
		conditions = append(conditions, "o.criado_em >= ?")
		args = append(args, *from)
	}
	if to := query.To(); to != nil {
		conditions = append(conditions, "o.criado_em <= ?")
		args = append(args, *to)
	}

	stmt := orderSelect
	if len(conditions) > 0 {
		stmt += " WHERE " + strings.Join(conditions, " AND ")
	}
	stmt += " ORDER BY o.criado_em DESC"

	snapshots, err := h.fetchOrders(ctx, stmt, args)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]string, 0, len(snapshots))
	for i := range snapshots {
		orderIDs = append(orderIDs, snapshots[i].ID)
	}

	items, err := loadItems(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}
	for i := range snapshots {
		if orderItems, ok := items[snapshots[i].ID]; ok {
			snapshots[i].Itens = orderItems
		}
	}

	return snapshots, nil
}

func (h ListOrdersQueryHandler) fetchOrders(
	ctx context.Context,
	stmt string,
	args []interface{},
) ([]order.Snapshot, error) {
	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]order.Snapshot, 0)
	for rows.Next() {
		snapshot, scanErr := scanOrderSnapshot(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
