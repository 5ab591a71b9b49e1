// Package customer models the customer entity orders may reference. Customer
// CRUD lives outside the lifecycle engine; the engine only verifies existence
// and carries the name into event payloads.
package customer

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via RestoreCustomer")

// Customer is a registered customer.
type Customer struct {
	id        kernel.UUID
	nome      string
	sobrenome string

	isConstructed bool
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, nome, sobrenome string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		nome:          nome,
		sobrenome:     sobrenome,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer was created through RestoreCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Nome returns the customer's first name.
func (c *Customer) Nome() string {
	return c.nome
}

// Sobrenome returns the customer's last name.
func (c *Customer) Sobrenome() string {
	return c.sobrenome
}
