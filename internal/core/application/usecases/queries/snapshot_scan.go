package queries

import (
	"context"
	"database/sql"
	"time"

	"comanda/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderSelect projects the order row together with its table and customer
// summaries. Column order is positional and must match scanOrderSnapshot.
const orderSelect = `
	SELECT
		o.id,
		o.numero,
		o.status,
		o.total,
		o.observacao,
		o.motivo_cancelamento,
		o.criado_em,
		o.criado_por_id,
		m.id,
		m.numero,
		c.id,
		c.nome,
		c.sobrenome
	FROM orders o
	LEFT JOIN tables m ON m.id = o.mesa_id
	LEFT JOIN customers c ON c.id = o.cliente_id
`

func scanOrderSnapshot(rows *sql.Rows) (order.Snapshot, error) {
	var (
		id               uuid.UUID
		numero           string
		status           string
		total            decimal.Decimal
		observacao       sql.NullString
		motivo           sql.NullString
		criadoEm         time.Time
		criadoPorID      uuid.UUID
		mesaID           uuid.NullUUID
		mesaNumero       sql.NullInt64
		clienteID        uuid.NullUUID
		clienteNome      sql.NullString
		clienteSobrenome sql.NullString
	)

	err := rows.Scan(
		&id,
		&numero,
		&status,
		&total,
		&observacao,
		&motivo,
		&criadoEm,
		&criadoPorID,
		&mesaID,
		&mesaNumero,
		&clienteID,
		&clienteNome,
		&clienteSobrenome,
	)
	if err != nil {
		return order.Snapshot{}, err
	}

	snapshot := order.Snapshot{
		ID:          id.String(),
		Numero:      numero,
		Status:      order.Status(status),
		Total:       total,
		CriadoEm:    criadoEm,
		CriadoPorID: criadoPorID.String(),
		Itens:       make([]order.ItemSnapshot, 0),
	}

	if observacao.Valid {
		snapshot.Observacao = &observacao.String
	}
	if motivo.Valid {
		snapshot.MotivoCancelamento = &motivo.String
	}
	if mesaID.Valid {
		snapshot.Mesa = &order.TableSummary{
			ID:     mesaID.UUID.String(),
			Numero: int(mesaNumero.Int64),
		}
	}
	if clienteID.Valid {
		snapshot.Cliente = &order.CustomerSummary{
			ID:        clienteID.UUID.String(),
			Nome:      clienteNome.String,
			Sobrenome: clienteSobrenome.String,
		}
	}

	return snapshot, nil
}

// loadItems fetches the line items with product data for the given orders in
// one query, keyed by order ID.
func loadItems(ctx context.Context, db *gorm.DB, orderIDs []string) (map[string][]order.ItemSnapshot, error) {
	items := make(map[string][]order.ItemSnapshot, len(orderIDs))
	if len(orderIDs) == 0 {
		return items, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.quantidade,
			i.preco_unitario,
			i.subtotal,
			i.observacao,
			p.id,
			p.nome,
			p.preco
		FROM order_items i
		JOIN products p ON p.id = i.produto_id
		WHERE i.order_id IN ?
		ORDER BY i.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID      uuid.UUID
			item         order.ItemSnapshot
			observacao   sql.NullString
			produtoID    uuid.UUID
			produtoNome  string
			produtoPreco decimal.Decimal
		)

		err = rows.Scan(
			&orderID,
			&item.Quantidade,
			&item.PrecoUnitario,
			&item.Subtotal,
			&observacao,
			&produtoID,
			&produtoNome,
			&produtoPreco,
		)
		if err != nil {
			return nil, err
		}

		if observacao.Valid {
			item.Observacao = &observacao.String
		}
		item.Produto = &order.ProductSummary{
			ID:    produtoID.String(),
			Nome:  produtoNome,
			Preco: produtoPreco,
		}

		key := orderID.String()
		items[key] = append(items[key], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
