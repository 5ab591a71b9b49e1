// Package customerrepo resolves customers referenced by orders. Read-only
// within the lifecycle engine.
package customerrepo

import (
	"comanda/internal/core/domain/model/customer"
	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customers.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	Nome      string    `gorm:"column:nome"`
	Sobrenome string    `gorm:"column:sobrenome"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Nome, dto.Sobrenome)
}
