package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the full order graph as exposed to subscribers and API clients:
// the order row plus its items with product data, table and customer
// summaries. Field names follow the legacy wire format.
type Snapshot struct {
	ID                 string           `json:"id"`
	Numero             string           `json:"numero"`
	Status             Status           `json:"status"`
	Total              decimal.Decimal  `json:"total"`
	Observacao         *string          `json:"observacao"`
	MotivoCancelamento *string          `json:"motivoCancelamento,omitempty"`
	CriadoEm           time.Time        `json:"criadoEm"`
	CriadoPorID        string           `json:"criadoPorId"`
	Mesa               *TableSummary    `json:"mesa"`
	Cliente            *CustomerSummary `json:"cliente"`
	Itens              []ItemSnapshot   `json:"itens"`
}

// TableSummary identifies the table an order is tied to.
type TableSummary struct {
	ID     string `json:"id"`
	Numero int    `json:"numero"`
}

// CustomerSummary identifies the customer an order was placed for.
type CustomerSummary struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
}

// ItemSnapshot is one order line with its price snapshot and product summary.
type ItemSnapshot struct {
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Observacao    *string         `json:"observacao"`
	Produto       *ProductSummary `json:"produto"`
}

// ProductSummary is the product data carried inside an item snapshot. Preco is
// the product's current price, distinct from the item's frozen unit price.
type ProductSummary struct {
	ID    string          `json:"id"`
	Nome  string          `json:"nome"`
	Preco decimal.Decimal `json:"preco"`
}
