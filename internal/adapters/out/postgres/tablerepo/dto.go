// Package tablerepo persists table occupancy. The lifecycle engine only reads
// tables and flips their status; table management itself lives elsewhere.
package tablerepo

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for restaurant tables.
type TableDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	Numero int       `gorm:"column:numero;uniqueIndex"`
	Status string    `gorm:"column:status"`
}

// TableName specifies the database table name for table entities.
func (TableDTO) TableName() string {
	return "tables"
}

func fromDomain(aggregate *table.Table) TableDTO {
	return TableDTO{
		ID:     aggregate.ID().Bytes(),
		Numero: aggregate.Numero(),
		Status: string(aggregate.Status()),
	}
}

func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return table.RestoreTable(id, dto.Numero, table.Status(dto.Status))
}
