package order

import (
	"comanda/internal/core/domain/model/kernel"
)

// Channel is a named fan-out target for event delivery. The names match the
// Socket.IO namespaces legacy subscribers are bound to.
type Channel string

const (
	// ChannelGlobal receives every event.
	ChannelGlobal Channel = "global"

	// ChannelKitchen receives new orders for the kitchen displays.
	ChannelKitchen Channel = "cozinha"

	// ChannelServiceCounter receives ready notifications for the counter.
	ChannelServiceCounter Channel = "atendimento"
)

// Event wire names. These are a compatibility contract with existing
// subscribers and must be preserved byte for byte.
const (
	EventOrderCreated   = "pedido:novo"
	EventOrderUpdated   = "pedido:atualizado"
	EventOrderReady     = "pedido:pronto"
	EventOrderCancelled = "pedido:cancelado"
	EventOrderDelivered = "pedido:entregue"
	EventTableFreed     = "mesa_liberada"
)

// Event is a single notification to be fanned out to the listed channels.
// Delivery is best effort: the lifecycle engine never depends on it.
type Event struct {
	Name     string
	Channels []Channel
	Payload  interface{}
}

// eventSpec names an event and the channels it goes to; the payload is bound
// at publish time.
type eventSpec struct {
	name     string
	channels []Channel
}

// statusEvents is the notification policy: the extra events emitted when an
// order moves into a given status, on top of the unconditional
// EventOrderUpdated. Data-driven so the policy can be tested on its own.
func statusEvents() map[Status][]eventSpec {
	return map[Status][]eventSpec{
		StatusPronto: {
			{name: EventOrderReady, channels: []Channel{ChannelGlobal, ChannelServiceCounter}},
		},
		StatusCancelado: {
			{name: EventOrderCancelled, channels: []Channel{ChannelGlobal}},
		},
		StatusEntregue: {
			{name: EventOrderDelivered, channels: []Channel{ChannelGlobal}},
		},
	}
}

// CreatedEvent is the notification emitted after a successful creation:
// EventOrderCreated to the global and kitchen channels.
func CreatedEvent(payload interface{}) Event {
	return Event{
		Name:     EventOrderCreated,
		Channels: []Channel{ChannelGlobal, ChannelKitchen},
		Payload:  payload,
	}
}

// TransitionEvents returns the notifications for a transition into target:
// EventOrderUpdated to the global channel unconditionally, followed by the
// status-specific events from the policy table.
func TransitionEvents(target Status, payload interface{}) []Event {
	events := []Event{{
		Name:     EventOrderUpdated,
		Channels: []Channel{ChannelGlobal},
		Payload:  payload,
	}}

	for _, spec := range statusEvents()[target] {
		events = append(events, Event{
			Name:     spec.name,
			Channels: spec.channels,
			Payload:  payload,
		})
	}

	return events
}

// CancelledEvent is the single notification the dedicated cancel operation
// emits, mirroring the legacy behavior of not sending EventOrderUpdated on
// that path.
func CancelledEvent(payload interface{}) Event {
	return Event{
		Name:     EventOrderCancelled,
		Channels: []Channel{ChannelGlobal},
		Payload:  payload,
	}
}

// DeliveredEvent is the notification the dedicated finalize operation emits.
func DeliveredEvent(payload interface{}) Event {
	return Event{
		Name:     EventOrderDelivered,
		Channels: []Channel{ChannelGlobal},
		Payload:  payload,
	}
}

// TableFreedPayload is the wire payload of EventTableFreed.
type TableFreedPayload struct {
	MesaID string `json:"mesaId"`
}

// TableFreedEvent announces that finalizing an order released its table.
func TableFreedEvent(tableID kernel.UUID) Event {
	return Event{
		Name:     EventTableFreed,
		Channels: []Channel{ChannelGlobal},
		Payload:  TableFreedPayload{MesaID: tableID.String()},
	}
}
