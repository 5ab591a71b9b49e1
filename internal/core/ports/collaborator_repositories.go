package ports

import (
	"context"

	"comanda/internal/core/domain/model/customer"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/product"
	"comanda/internal/core/domain/model/table"
)

// TableRepository is the engine's narrow view of table persistence. The table
// entity is owned by table management; the lifecycle engine is permitted to
// read tables and write their occupancy status.
type TableRepository interface {
	// Get retrieves a table by identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.Table, error)

	// Update persists the table's occupancy status.
	Update(ctx context.Context, aggregate *table.Table) error
}

// ProductRepository resolves products for price snapshots and availability
// checks. Read-only within the engine.
type ProductRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

// CustomerRepository resolves customers referenced by orders. Read-only
// within the engine.
type CustomerRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
