package commands_test

import (
	"errors"
	"testing"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/table"
	"comanda/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	productID := kernel.NewUUID()
	waiterID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		tableID, nil,
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 2}},
		"", waiterID)
	require.NoError(t, err)

	f := newUoWFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.tables.On("Get", mock.Anything, tableID).
		Return(restoreTestTable(tableID, table.StatusLivre), nil).Twice()
	f.products.On("Get", mock.Anything, productID).
		Return(restoreTestProduct(productID, true), nil).Twice()
	f.numbers.On("Next", mock.Anything, mock.AnythingOfType("time.Time")).Return("001", nil).Once()
	f.orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.tables.On("Update", mock.Anything, mock.MatchedBy(func(tbl *table.Table) bool {
		return !tbl.IsFree()
	})).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(f.factory, f.publisher)
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "001", snapshot.Numero)
	assert.Equal(t, order.StatusPreparando, snapshot.Status)
	assert.True(t, snapshot.Total.Equal(decimalFromString(t, "51")))
	require.NotNil(t, snapshot.Mesa)
	assert.Equal(t, tableID.String(), snapshot.Mesa.ID)
	assert.Nil(t, snapshot.Cliente)
	require.Len(t, snapshot.Itens, 1)
	assert.Equal(t, 2, snapshot.Itens[0].Quantidade)
	assert.True(t, snapshot.Itens[0].PrecoUnitario.Equal(decimalFromString(t, "25.5")))

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, order.EventOrderCreated, f.publisher.events[0].Name)
	assert.Equal(t,
		[]order.Channel{order.ChannelGlobal, order.ChannelKitchen},
		f.publisher.events[0].Channels)

	f.orders.AssertExpectations(t)
	f.tables.AssertExpectations(t)
	f.numbers.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ProductUnavailable(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		tableID, nil,
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 1}},
		"", kernel.NewUUID())
	require.NoError(t, err)

	f := newUoWFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.tables.On("Get", mock.Anything, tableID).
		Return(restoreTestTable(tableID, table.StatusLivre), nil).Once()
	f.products.On("Get", mock.Anything, productID).
		Return(restoreTestProduct(productID, false), nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(f.factory, f.publisher)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)

	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	assert.Empty(t, f.publisher.events)
}

func TestCreateOrderCommandHandler_Handle_TableNotFound(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		tableID, nil,
		[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 1}},
		"", kernel.NewUUID())
	require.NoError(t, err)

	f := newUoWFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.tables.On("Get", mock.Anything, tableID).
		Return(nil, errs.NewObjectNotFoundError("tableID", tableID.String())).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(f.factory, f.publisher)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, f.publisher.events)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		tableID, nil,
		[]commands.OrderItemInput{{ProductID: productID, Quantity: 1}},
		"", kernel.NewUUID())
	require.NoError(t, err)

	f := newUoWFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.tables.On("Get", mock.Anything, tableID).
		Return(restoreTestTable(tableID, table.StatusLivre), nil).Twice()
	f.products.On("Get", mock.Anything, productID).
		Return(restoreTestProduct(productID, true), nil).Twice()
	f.numbers.On("Next", mock.Anything, mock.AnythingOfType("time.Time")).Return("002", nil).Once()
	f.orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.tables.On("Update", mock.Anything, mock.AnythingOfType("*table.Table")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(f.factory, f.publisher)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Empty(t, f.publisher.events)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	f := newUoWFixture()
	h := commands.NewCreateOrderCommandHandler(f.factory, f.publisher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
