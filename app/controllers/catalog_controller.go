package controllers

import (
	"strconv"
	"time"

	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/pkg/ctx"
	"github.com/shashiranjanraj/cartinhas/pkg/feed"
	"github.com/shashiranjanraj/cartinhas/pkg/metrics"
	"github.com/shashiranjanraj/cartinhas/pkg/sse"
)

type CatalogController struct {
	service *services.CatalogService
	hub     *feed.Hub
}

func NewCatalogController(service *services.CatalogService, hub *feed.Hub) *CatalogController {
	return &CatalogController{service: service, hub: hub}
}

// List serves the catalog. Without a page parameter the full catalog
// is returned, matching what the storefront grid expects.
func (c *CatalogController) List(cc *ctx.Context) {
	if pageParam := cc.Query("page"); pageParam != "" {
		page, _ := strconv.Atoi(pageParam)
		perPage, _ := strconv.Atoi(cc.Query("per_page"))

		cards, pagination, err := c.service.Paginated(page, perPage)
		if err != nil {
			cc.Error(500, "could not load catalog")
			return
		}
		cc.Success(map[string]any{
			"cards":      cards,
			"pagination": pagination,
		})
		return
	}

	cards, err := c.service.List(cc.Context())
	if err != nil {
		cc.Error(500, "could not load catalog")
		return
	}
	cc.Success(cards)
}

func (c *CatalogController) Show(cc *ctx.Context) {
	id, err := strconv.ParseUint(cc.Param("id"), 10, 32)
	if err != nil {
		cc.Error(400, "invalid card id")
		return
	}

	card, err := c.service.Find(uint(id))
	if err != nil {
		cc.NotFound()
		return
	}
	cc.Success(card)
}

// Feed streams catalog changes over SSE so open storefronts update
// without polling.
func (c *CatalogController) Feed(cc *ctx.Context) {
	stream := sse.New(cc.Writer, cc.Request)
	if stream == nil {
		return
	}

	events, cancel := c.hub.Subscribe()
	defer cancel()

	if cards, err := c.service.List(cc.Context()); err == nil {
		if err := stream.Send("snapshot", cards); err != nil {
			return
		}
	}

	metrics.FeedSubscribers.WithLabelValues("sse").Inc()
	defer metrics.FeedSubscribers.WithLabelValues("sse").Dec()

	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-cc.Context().Done():
			return
		case <-heartbeat.C:
			stream.Comment("keepalive")
		case event, ok := <-events:
			if !ok {
				return
			}
			// Order events stay on the admin feed.
			switch event.Kind {
			case feed.CardCreated, feed.CardUpdated, feed.CardDeleted:
				if err := stream.Send(event.Kind, event.Data); err != nil {
					return
				}
			}
			if stream.IsClosed() {
				return
			}
		}
	}
}
