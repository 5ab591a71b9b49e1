package cmd

import (
	"context"

	"comanda/internal/adapters/out/eventbus"
	"comanda/internal/adapters/out/postgres"
	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires use case handlers to their infrastructure: the GORM
// unit of work, the in-process event bus and any additional publishers (the
// AMQP bridge, when configured).
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	bus        *eventbus.Bus
	publisher  ports.EventPublisher
}

// NewCompositionRoot builds the application graph. Events always reach the
// in-process bus; extra publishers receive the same events in order.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	bus *eventbus.Bus,
	extraPublishers ...ports.EventPublisher,
) CompositionRoot {
	publishers := append(multiPublisher{bus}, extraPublishers...)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        bus,
		publisher:  publishers,
	}
}

// Bus exposes the in-process bus for the SSE stream.
func (c *CompositionRoot) Bus() *eventbus.Bus {
	return c.bus
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreatePurgeOrderCountersCommandHandler() commands.PurgeOrderCountersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeOrderCountersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// FuncUoWFactory adapts a closure to the commands.UoWFactory interface.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// multiPublisher fans Publish out to several publishers sequentially.
type multiPublisher []ports.EventPublisher

func (m multiPublisher) Publish(ctx context.Context, event order.Event) {
	for _, p := range m {
		p.Publish(ctx, event)
	}
}
