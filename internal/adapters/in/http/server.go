// Package http exposes the order lifecycle engine over a REST API plus a
// server-sent-events stream for live notifications.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"comanda/internal/adapters/out/eventbus"
	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	finalizeHandler     commands.FinalizeOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	bus *eventbus.Bus
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the in-process bus backing the events stream.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	finalizeHandler commands.FinalizeOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	bus *eventbus.Bus,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		changeStatusHandler: changeStatusHandler,
		cancelOrderHandler:  cancelOrderHandler,
		finalizeHandler:     finalizeHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
		bus:                 bus,
	}
}

// RegisterRoutes attaches all engine routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/pedidos", s.createOrder)
	api.GET("/pedidos", s.listOrders)
	api.GET("/pedidos/:id", s.getOrder)
	api.PATCH("/pedidos/:id/status", s.changeStatus)
	api.POST("/pedidos/:id/cancelar", s.cancelOrder)
	api.POST("/pedidos/:id/finalizar", s.finalizeOrder)
	api.GET("/eventos", s.streamEvents)

	e.GET("/health", s.health)
}

// createOrder handles POST /api/v1/pedidos.
func (s *Server) createOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tableID, err := kernel.UUIDFromString(req.MesaID)
	if err != nil {
		return badRequest(ctx, "Invalid mesaId: "+err.Error())
	}

	createdBy, err := kernel.UUIDFromString(req.CriadoPorID)
	if err != nil {
		return badRequest(ctx, "Invalid criadoPorId: "+err.Error())
	}

	var customerID *kernel.UUID
	if req.ClienteID != nil {
		id, idErr := kernel.UUIDFromString(*req.ClienteID)
		if idErr != nil {
			return badRequest(ctx, "Invalid clienteId: "+idErr.Error())
		}
		customerID = &id
	}

	items := make([]commands.OrderItemInput, 0, len(req.Itens))
	for _, item := range req.Itens {
		productID, idErr := kernel.UUIDFromString(item.ProdutoID)
		if idErr != nil {
			return badRequest(ctx, "Invalid produtoId: "+idErr.Error())
		}
		items = append(items, commands.OrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantidade,
			Note:      item.Observacao,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(tableID, customerID, items, req.Observacao, createdBy)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	snapshot, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, snapshot)
}

// getOrder handles GET /api/v1/pedidos/:id.
func (s *Server) getOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// listOrders handles GET /api/v1/pedidos.
func (s *Server) listOrders(ctx echo.Context) error {
	var statuses []string
	if raw := ctx.QueryParam("status"); raw != "" {
		for _, token := range strings.Split(raw, ",") {
			if token = strings.TrimSpace(token); token != "" {
				statuses = append(statuses, token)
			}
		}
	}

	tableID, err := optionalUUIDParam(ctx, "mesaId")
	if err != nil {
		return badRequest(ctx, "Invalid mesaId: "+err.Error())
	}

	customerID, err := optionalUUIDParam(ctx, "clienteId")
	if err != nil {
		return badRequest(ctx, "Invalid clienteId: "+err.Error())
	}

	from, err := optionalTimeParam(ctx, "de")
	if err != nil {
		return badRequest(ctx, "Invalid de: "+err.Error())
	}

	to, err := optionalTimeParam(ctx, "ate")
	if err != nil {
		return badRequest(ctx, "Invalid ate: "+err.Error())
	}

	query, err := queries.NewListOrdersQuery(statuses, tableID, customerID, from, to)
	if err != nil {
		return badRequest(ctx, "Invalid filters: "+err.Error())
	}

	snapshots, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshots)
}

// changeStatus handles PATCH /api/v1/pedidos/:id/status.
func (s *Server) changeStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(req.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	snapshot, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// cancelOrder handles POST /api/v1/pedidos/:id/cancelar.
func (s *Server) cancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Motivo)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation: "+err.Error())
	}

	snapshot, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// finalizeOrder handles POST /api/v1/pedidos/:id/finalizar.
func (s *Server) finalizeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewFinalizeOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	snapshot, err := s.finalizeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// health handles GET /health.
func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps domain errors to HTTP statuses: unknown objects to 404,
// concurrent-write conflicts to 409, rule and validation failures to 400.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrBusinessRuleViolation),
		errors.Is(err, errs.ErrInvalidStatusTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func optionalUUIDParam(ctx echo.Context, name string) (*kernel.UUID, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// optionalTimeParam accepts RFC 3339 timestamps and plain dates.
func optionalTimeParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
