package http

// Request and error bodies follow the legacy Portuguese wire format used by
// existing clients.

type createOrderRequest struct {
	MesaID      string                   `json:"mesaId"`
	ClienteID   *string                  `json:"clienteId"`
	Itens       []createOrderItemRequest `json:"itens"`
	Observacao  string                   `json:"observacao"`
	CriadoPorID string                   `json:"criadoPorId"`
}

type createOrderItemRequest struct {
	ProdutoID  string `json:"produtoId"`
	Quantidade int    `json:"quantidade"`
	Observacao string `json:"observacao"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type cancelOrderRequest struct {
	Motivo string `json:"motivo"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
