// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows. Column
// names follow the legacy schema so read queries and subscribers keep working.
package orderrepo

import (
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by table and status for the active-order count that drives table
// release.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;column:id"`
	Numero             string          `gorm:"column:numero;index"`
	Status             string          `gorm:"column:status;index"`
	Total              decimal.Decimal `gorm:"type:numeric(12,2);column:total"`
	Observacao         *string         `gorm:"column:observacao"`
	MotivoCancelamento *string         `gorm:"column:motivo_cancelamento"`
	MesaID             *uuid.UUID      `gorm:"type:uuid;column:mesa_id;index"`
	ClienteID          *uuid.UUID      `gorm:"type:uuid;column:cliente_id;index"`
	CriadoPorID        uuid.UUID       `gorm:"type:uuid;column:criado_por_id"`
	CriadoEm           time.Time       `gorm:"column:criado_em;index"`
	Version            int             `gorm:"column:version"`
	Items              []ItemDTO       `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line. Items are written once with
// the order and never change afterwards.
type ItemDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID       uuid.UUID       `gorm:"type:uuid;column:order_id;index"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;column:produto_id"`
	Quantidade    int             `gorm:"column:quantidade"`
	PrecoUnitario decimal.Decimal `gorm:"type:numeric(12,2);column:preco_unitario"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);column:subtotal"`
	Observacao    *string         `gorm:"column:observacao"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Numero:      aggregate.Numero(),
		Status:      string(aggregate.Status()),
		Total:       aggregate.Total(),
		CriadoPorID: aggregate.CreatedBy().Bytes(),
		CriadoEm:    aggregate.CreatedAt(),
		Version:     aggregate.Version(),
	}

	if note := aggregate.Note(); note != "" {
		dto.Observacao = &note
	}
	if reason := aggregate.CancellationReason(); reason != "" {
		dto.MotivoCancelamento = &reason
	}
	if id := aggregate.TableID(); id != nil {
		raw := id.Bytes()
		dto.MesaID = &raw
	}
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		dto.ClienteID = &raw
	}

	items := aggregate.Items()
	dto.Items = make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTO := ItemDTO{
			OrderID:       dto.ID,
			ProdutoID:     item.ProductID().Bytes(),
			Quantidade:    item.Quantity(),
			PrecoUnitario: item.UnitPrice(),
			Subtotal:      item.Subtotal(),
		}
		if note := item.Note(); note != "" {
			itemDTO.Observacao = &note
		}
		dto.Items = append(dto.Items, itemDTO)
	}

	return dto
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, so creation-time rules are not re-applied.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CriadoPorID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.MesaID != nil {
		raw, tableErr := kernel.UUIDFromBytes((*dto.MesaID)[:])
		if tableErr != nil {
			return nil, tableErr
		}
		tableID = &raw
	}

	var customerID *kernel.UUID
	if dto.ClienteID != nil {
		raw, customerErr := kernel.UUIDFromBytes((*dto.ClienteID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &raw
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProdutoID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, order.RestoreItem(
			productID,
			itemDTO.Quantidade,
			itemDTO.PrecoUnitario,
			itemDTO.Subtotal,
			stringOrEmpty(itemDTO.Observacao),
		))
	}

	return order.RestoreOrder(
		id,
		dto.Numero,
		order.Status(dto.Status),
		dto.Total,
		tableID,
		customerID,
		createdBy,
		items,
		stringOrEmpty(dto.Observacao),
		stringOrEmpty(dto.MotivoCancelamento),
		dto.CriadoEm,
		dto.Version,
	)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
