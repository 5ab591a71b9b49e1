package postgres

import (
	"gorm.io/gorm"

	"comanda/internal/adapters/out/postgres/customerrepo"
	"comanda/internal/adapters/out/postgres/orderrepo"
	"comanda/internal/adapters/out/postgres/productrepo"
	"comanda/internal/adapters/out/postgres/tablerepo"
)

// AutoMigrate creates or updates the engine's schema: collaborator tables
// first, then orders and their items, then the daily counters.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&tablerepo.TableDTO{},
		&productrepo.ProductDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&CounterDTO{},
	)
}
