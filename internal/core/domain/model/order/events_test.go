package order_test

import (
	"testing"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatedEvent(t *testing.T) {
	t.Run("should announce new orders to global and kitchen", func(t *testing.T) {
		payload := map[string]string{"numero": "001"}

		event := order.CreatedEvent(payload)

		assert.Equal(t, "pedido:novo", event.Name)
		assert.Equal(t, []order.Channel{order.ChannelGlobal, order.ChannelKitchen}, event.Channels)
		assert.Equal(t, payload, event.Payload)
	})
}

func TestTransitionEvents(t *testing.T) {
	payload := map[string]string{"numero": "001"}

	t.Run("should always emit the update first on global", func(t *testing.T) {
		for _, target := range allStatuses() {
			events := order.TransitionEvents(target, payload)

			require.NotEmpty(t, events, "target %s", target)
			assert.Equal(t, "pedido:atualizado", events[0].Name)
			assert.Equal(t, []order.Channel{order.ChannelGlobal}, events[0].Channels)
			assert.Equal(t, payload, events[0].Payload)
		}
	})

	t.Run("should add the ready event for pronto on global and counter", func(t *testing.T) {
		events := order.TransitionEvents(order.StatusPronto, payload)

		require.Len(t, events, 2)
		assert.Equal(t, "pedido:pronto", events[1].Name)
		assert.Equal(t, []order.Channel{order.ChannelGlobal, order.ChannelServiceCounter}, events[1].Channels)
	})

	t.Run("should add the cancelled event for cancelado on global only", func(t *testing.T) {
		events := order.TransitionEvents(order.StatusCancelado, payload)

		require.Len(t, events, 2)
		assert.Equal(t, "pedido:cancelado", events[1].Name)
		assert.Equal(t, []order.Channel{order.ChannelGlobal}, events[1].Channels)
	})

	t.Run("should add the delivered event for entregue on global only", func(t *testing.T) {
		events := order.TransitionEvents(order.StatusEntregue, payload)

		require.Len(t, events, 2)
		assert.Equal(t, "pedido:entregue", events[1].Name)
		assert.Equal(t, []order.Channel{order.ChannelGlobal}, events[1].Channels)
	})

	t.Run("should emit only the update for statuses without extras", func(t *testing.T) {
		for _, target := range []order.Status{order.StatusAguardando, order.StatusPreparando} {
			events := order.TransitionEvents(target, payload)

			assert.Len(t, events, 1, "target %s", target)
		}
	})
}

func TestCancelledEvent(t *testing.T) {
	t.Run("should emit a single cancellation on global", func(t *testing.T) {
		event := order.CancelledEvent("payload")

		assert.Equal(t, "pedido:cancelado", event.Name)
		assert.Equal(t, []order.Channel{order.ChannelGlobal}, event.Channels)
	})
}

func TestDeliveredEvent(t *testing.T) {
	t.Run("should emit a single delivery on global", func(t *testing.T) {
		event := order.DeliveredEvent("payload")

		assert.Equal(t, "pedido:entregue", event.Name)
		assert.Equal(t, []order.Channel{order.ChannelGlobal}, event.Channels)
	})
}

func TestTableFreedEvent(t *testing.T) {
	t.Run("should carry the table id as mesaId", func(t *testing.T) {
		tableID := kernel.NewUUID()

		event := order.TableFreedEvent(tableID)

		assert.Equal(t, "mesa_liberada", event.Name)
		assert.Equal(t, []order.Channel{order.ChannelGlobal}, event.Channels)

		payload, ok := event.Payload.(order.TableFreedPayload)
		require.True(t, ok)
		assert.Equal(t, tableID.String(), payload.MesaID)
	})
}
