// Package table models the dining table entity referenced by orders. Table
// management proper lives outside the lifecycle engine; the engine only reads
// tables and flips their occupancy status as an order-lifecycle side effect.
package table

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through NewTable or RestoreTable.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")

// Status is the binary occupancy flag of a table. The string values are part
// of the wire format.
type Status string

const (
	// StatusLivre marks a free table.
	StatusLivre Status = "livre"

	// StatusOcupada marks an occupied table.
	StatusOcupada Status = "ocupada"
)

// Validate checks that the status is one of the two known literals.
func (s Status) Validate() error {
	if s != StatusLivre && s != StatusOcupada {
		return errs.NewValueIsInvalidError("table status")
	}
	return nil
}

// Table is a dining table with its occupancy status.
type Table struct {
	id     kernel.UUID
	numero int
	status Status

	isConstructed bool
}

// NewTable creates a free table.
func NewTable(id kernel.UUID, numero int) (*Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if numero <= 0 {
		return nil, errs.NewValueIsInvalidError("numero")
	}

	return &Table{
		id:            id,
		numero:        numero,
		status:        StatusLivre,
		isConstructed: true,
	}, nil
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(id kernel.UUID, numero int, status Status) (*Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Table{
		id:            id,
		numero:        numero,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Table was created through NewTable or RestoreTable.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// ID returns the table's unique identifier.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// Numero returns the human-facing table number.
func (t *Table) Numero() int {
	return t.numero
}

// Status returns the occupancy status.
func (t *Table) Status() Status {
	return t.status
}

// IsFree reports whether the table is currently free.
func (t *Table) IsFree() bool {
	return t.status == StatusLivre
}

// Occupy marks the table as occupied. Occupying an already-occupied table is
// fine: a table keeps receiving orders while guests are seated.
func (t *Table) Occupy() {
	t.status = StatusOcupada
}

// Release marks the table as free.
func (t *Table) Release() {
	t.status = StatusLivre
}
