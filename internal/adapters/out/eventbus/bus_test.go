package eventbus_test

import (
	"context"
	"log/slog"
	"testing"

	"comanda/internal/adapters/out/eventbus"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(bufferSize int) *eventbus.Bus {
	return eventbus.NewBus(bufferSize, slog.Default())
}

func TestBus_Publish_DeliversToAllEventChannels(t *testing.T) {
	bus := newTestBus(4)
	global := bus.Subscribe(order.ChannelGlobal)
	kitchen := bus.Subscribe(order.ChannelKitchen)
	counter := bus.Subscribe(order.ChannelServiceCounter)

	bus.Publish(context.Background(), order.CreatedEvent("payload"))

	require.Len(t, global.Events(), 1)
	require.Len(t, kitchen.Events(), 1)
	assert.Empty(t, counter.Events())

	received := <-global.Events()
	assert.Equal(t, order.EventOrderCreated, received.Name)
	assert.Equal(t, "payload", received.Payload)
}

func TestBus_Publish_MultipleSubscribersOnOneChannel(t *testing.T) {
	bus := newTestBus(4)
	first := bus.Subscribe(order.ChannelGlobal)
	second := bus.Subscribe(order.ChannelGlobal)

	bus.Publish(context.Background(), order.TableFreedEvent(kernel.NewUUID()))

	assert.Len(t, first.Events(), 1)
	assert.Len(t, second.Events(), 1)
}

func TestBus_Publish_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	bus := newTestBus(1)
	slow := bus.Subscribe(order.ChannelGlobal)

	ctx := context.Background()
	bus.Publish(ctx, order.CancelledEvent("first"))
	// buffer is full now; this must return immediately
	bus.Publish(ctx, order.CancelledEvent("second"))

	require.Len(t, slow.Events(), 1)
	received := <-slow.Events()
	assert.Equal(t, "first", received.Payload)
}

func TestBus_Unsubscribe_ClosesEventsChannel(t *testing.T) {
	bus := newTestBus(4)
	sub := bus.Subscribe(order.ChannelGlobal)

	bus.Unsubscribe(sub)

	_, open := <-sub.Events()
	assert.False(t, open)

	// publishing after unsubscribe must not panic
	bus.Publish(context.Background(), order.DeliveredEvent("payload"))

	// double unsubscribe is a no-op
	bus.Unsubscribe(sub)
}
