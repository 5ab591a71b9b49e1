// Package product models the menu product referenced by order items. Product
// CRUD lives outside the lifecycle engine; the engine only resolves products
// to take price snapshots and check availability at creation time.
package product

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct")

// Product is a menu entry with its current price and availability flag.
type Product struct {
	id         kernel.UUID
	nome       string
	preco      decimal.Decimal
	disponivel bool

	isConstructed bool
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, nome string, preco decimal.Decimal, disponivel bool) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		nome:          nome,
		preco:         preco,
		disponivel:    disponivel,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product was created through RestoreProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Nome returns the product name.
func (p *Product) Nome() string {
	return p.nome
}

// Preco returns the product's current price.
func (p *Product) Preco() decimal.Decimal {
	return p.preco
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.disponivel
}
