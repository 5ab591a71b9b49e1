package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"comanda/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// heartbeatInterval keeps idle SSE connections alive through proxies.
const heartbeatInterval = 15 * time.Second

// streamEvents handles GET /api/v1/eventos. Streams the chosen channel's
// events as server-sent events until the client disconnects. The "canal"
// query parameter defaults to the global channel.
func (s *Server) streamEvents(ctx echo.Context) error {
	channel := order.Channel(ctx.QueryParam("canal"))
	if channel == "" {
		channel = order.ChannelGlobal
	}

	switch channel {
	case order.ChannelGlobal, order.ChannelKitchen, order.ChannelServiceCounter:
	default:
		return badRequest(ctx, "Unknown canal: "+string(channel))
	}

	sub := s.bus.Subscribe(channel)
	defer s.bus.Unsubscribe(sub)

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	reqCtx := ctx.Request().Context()
	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-heartbeat.C:
			fmt.Fprint(res, ": ping\n\n")
			res.Flush()
		case event, ok := <-sub.Events():
			if !ok {
				return nil
			}

			data, err := json.Marshal(event.Payload)
			if err != nil {
				continue
			}

			fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Name, data)
			res.Flush()
		}
	}
}
