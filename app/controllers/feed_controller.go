package controllers

import (
	"encoding/json"

	"github.com/shashiranjanraj/cartinhas/pkg/ctx"
	"github.com/shashiranjanraj/cartinhas/pkg/feed"
	"github.com/shashiranjanraj/cartinhas/pkg/logger"
	"github.com/shashiranjanraj/cartinhas/pkg/metrics"
	"github.com/shashiranjanraj/cartinhas/pkg/ws"
)

// FeedController bridges the event hub onto a WebSocket for the admin
// panel, which wants order events as well as catalog changes.
type FeedController struct {
	wsHub *ws.Hub
}

// NewFeedController starts the WebSocket hub and the pump that copies
// hub events onto it.
func NewFeedController(hub *feed.Hub) *FeedController {
	wsHub := ws.NewHub()
	wsHub.OnChange = func(total int) {
		metrics.FeedSubscribers.WithLabelValues("websocket").Set(float64(total))
	}
	go wsHub.Run()

	events, _ := hub.Subscribe()
	go func() {
		for event := range events {
			payload, err := json.Marshal(event)
			if err != nil {
				logger.Warn("feed: marshal event", "kind", event.Kind, "error", err)
				continue
			}
			wsHub.Broadcast <- payload
		}
	}()

	return &FeedController{wsHub: wsHub}
}

// Connect upgrades the request onto the admin feed.
func (c *FeedController) Connect(cc *ctx.Context) {
	ws.Upgrade(cc.Writer, cc.Request, c.wsHub)
}
