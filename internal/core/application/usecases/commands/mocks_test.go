package commands_test

import (
	"context"
	"time"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/customer"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/product"
	"comanda/internal/core/domain/model/table"
	"comanda/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountActiveByTable(ctx context.Context, tableID kernel.UUID) (int64, error) {
	args := m.Called(ctx, tableID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.Table), args.Error(1)
}

func (m *MockTableRepository) Update(ctx context.Context, t *table.Table) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockOrderNumbers struct{ mock.Mock }

func (m *MockOrderNumbers) Next(ctx context.Context, day time.Time) (string, error) {
	args := m.Called(ctx, day)
	return args.String(0), args.Error(1)
}

func (m *MockOrderNumbers) PurgeBefore(ctx context.Context, cutoff time.Time) error {
	args := m.Called(ctx, cutoff)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) OrderNumbers() ports.OrderNumberSequencer {
	args := m.Called()
	return args.Get(0).(ports.OrderNumberSequencer)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// RecordingPublisher captures published events in order, so tests can assert
// on the exact fan-out of a handler.
type RecordingPublisher struct {
	events []order.Event
}

func (p *RecordingPublisher) Publish(_ context.Context, event order.Event) {
	p.events = append(p.events, event)
}

// uowFixture wires a MockUoW whose repository accessors return the fixture's
// mocks without call-count restrictions, leaving the transaction and
// repository expectations to each test.
type uowFixture struct {
	uow       *MockUoW
	factory   *MockUoWFactory
	orders    *MockOrderRepository
	tables    *MockTableRepository
	products  *MockProductRepository
	customers *MockCustomerRepository
	numbers   *MockOrderNumbers
	publisher *RecordingPublisher
}

func newUoWFixture() *uowFixture {
	f := &uowFixture{
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		orders:    new(MockOrderRepository),
		tables:    new(MockTableRepository),
		products:  new(MockProductRepository),
		customers: new(MockCustomerRepository),
		numbers:   new(MockOrderNumbers),
		publisher: new(RecordingPublisher),
	}

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("TableRepository").Return(f.tables).Maybe()
	f.uow.On("ProductRepository").Return(f.products).Maybe()
	f.uow.On("CustomerRepository").Return(f.customers).Maybe()
	f.uow.On("OrderNumbers").Return(f.numbers).Maybe()

	return f
}

func restoreTestTable(id kernel.UUID, status table.Status) *table.Table {
	tbl, err := table.RestoreTable(id, 7, status)
	if err != nil {
		panic(err)
	}
	return tbl
}

func restoreTestProduct(id kernel.UUID, available bool) *product.Product {
	prod, err := product.RestoreProduct(id, "X-Burger", decimal.NewFromFloat(25.5), available)
	if err != nil {
		panic(err)
	}
	return prod
}

func restoreTestOrder(id kernel.UUID, status order.Status, tableID *kernel.UUID, productID kernel.UUID) *order.Order {
	item := order.RestoreItem(
		productID, 2, decimal.NewFromFloat(25.5), decimal.NewFromFloat(51), "")
	ord, err := order.RestoreOrder(
		id, "001", status, decimal.NewFromFloat(51),
		tableID, nil, kernel.NewUUID(), []order.Item{item}, "", "", time.Now(), 1)
	if err != nil {
		panic(err)
	}
	return ord
}
