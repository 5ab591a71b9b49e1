package commands

import (
	"context"

	"comanda/internal/core/domain/model/order"
)

// assembleSnapshot re-reads the order's collaborators inside the current
// transaction and builds the full graph returned to API clients and carried
// as the event payload. Product data reflects the catalog at read time; the
// item's unit price stays frozen at creation.
func assembleSnapshot(ctx context.Context, uow UoW, o *order.Order) (order.Snapshot, error) {
	snapshot := order.Snapshot{
		ID:          o.ID().String(),
		Numero:      o.Numero(),
		Status:      o.Status(),
		Total:       o.Total(),
		CriadoEm:    o.CreatedAt(),
		CriadoPorID: o.CreatedBy().String(),
	}

	if note := o.Note(); note != "" {
		snapshot.Observacao = &note
	}
	if reason := o.CancellationReason(); reason != "" {
		snapshot.MotivoCancelamento = &reason
	}

	if tableID := o.TableID(); tableID != nil {
		tbl, err := uow.TableRepository().Get(ctx, *tableID)
		if err != nil {
			return order.Snapshot{}, err
		}
		snapshot.Mesa = &order.TableSummary{
			ID:     tbl.ID().String(),
			Numero: tbl.Numero(),
		}
	}

	if customerID := o.CustomerID(); customerID != nil {
		cust, err := uow.CustomerRepository().Get(ctx, *customerID)
		if err != nil {
			return order.Snapshot{}, err
		}
		snapshot.Cliente = &order.CustomerSummary{
			ID:        cust.ID().String(),
			Nome:      cust.Nome(),
			Sobrenome: cust.Sobrenome(),
		}
	}

	items := o.Items()
	snapshot.Itens = make([]order.ItemSnapshot, 0, len(items))
	for _, item := range items {
		prod, err := uow.ProductRepository().Get(ctx, item.ProductID())
		if err != nil {
			return order.Snapshot{}, err
		}

		itemSnapshot := order.ItemSnapshot{
			Quantidade:    item.Quantity(),
			PrecoUnitario: item.UnitPrice(),
			Subtotal:      item.Subtotal(),
			Produto: &order.ProductSummary{
				ID:    prod.ID().String(),
				Nome:  prod.Nome(),
				Preco: prod.Preco(),
			},
		}
		if note := item.Note(); note != "" {
			itemSnapshot.Observacao = &note
		}

		snapshot.Itens = append(snapshot.Itens, itemSnapshot)
	}

	return snapshot, nil
}

// releaseTableIfIdle frees the order's table when no other non-terminal order
// still references it. The caller must have persisted the order's terminal
// status first so the count excludes it. Returns whether the table was freed.
func releaseTableIfIdle(ctx context.Context, uow UoW, o *order.Order) (bool, error) {
	tableID := o.TableID()
	if tableID == nil {
		return false, nil
	}

	active, err := uow.OrderRepository().CountActiveByTable(ctx, *tableID)
	if err != nil {
		return false, err
	}
	if active > 0 {
		return false, nil
	}

	tbl, err := uow.TableRepository().Get(ctx, *tableID)
	if err != nil {
		return false, err
	}
	if tbl.IsFree() {
		return false, nil
	}

	tbl.Release()
	if err = uow.TableRepository().Update(ctx, tbl); err != nil {
		return false, err
	}

	return true, nil
}
