// Package productrepo resolves catalog products for price snapshots and
// availability checks. Read-only within the lifecycle engine.
package productrepo

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;column:id"`
	Nome       string          `gorm:"column:nome"`
	Preco      decimal.Decimal `gorm:"type:numeric(12,2);column:preco"`
	Disponivel bool            `gorm:"column:disponivel"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Nome, dto.Preco, dto.Disponivel)
}
