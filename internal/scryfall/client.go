// Package scryfall searches the Scryfall card API and converts prices
// into BRL for the admin card picker.
package scryfall

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shashiranjanraj/cartinhas/config"
	"github.com/shashiranjanraj/cartinhas/pkg/cache"
	"github.com/shashiranjanraj/cartinhas/pkg/collection"
	"github.com/shashiranjanraj/cartinhas/pkg/httpclient"
	"github.com/shashiranjanraj/cartinhas/pkg/logger"
	"github.com/shashiranjanraj/cartinhas/pkg/metrics"
)

const (
	minQueryLen = 2
	maxResults  = 10
	cacheTTL    = 10 * time.Minute
)

// Result is one card suggestion from the upstream API, with the USD
// price already converted to BRL.
type Result struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SetName     string  `json:"set_name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	PriceBRL    float64 `json:"price_brl"`
}

type apiCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SetName    string `json:"set_name"`
	OracleText string `json:"oracle_text"`
	TypeLine   string `json:"type_line"`
	ImageURIs  struct {
		Normal string `json:"normal"`
		Small  string `json:"small"`
	} `json:"image_uris"`
	Prices struct {
		USD string `json:"usd"`
	} `json:"prices"`
}

type apiResponse struct {
	Data []apiCard `json:"data"`
}

// Client talks to the Scryfall search endpoint.
type Client struct {
	baseURL    string
	multiplier float64
}

func NewClient() *Client {
	return &Client{
		baseURL:    strings.TrimRight(config.ScryfallURL(), "/"),
		multiplier: config.PriceMultiplier(),
	}
}

// Search returns up to ten suggestions for query. Queries shorter than
// two characters, upstream 404s and network failures all yield an
// empty list; the picker never surfaces upstream errors to the admin.
// The call is bound to ctx, so an abandoned request cancels it.
func (c *Client) Search(ctx context.Context, query string) []Result {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLen {
		return nil
	}

	key := "cartinhas:scryfall:" + strings.ToLower(query)
	if raw, err := cache.Get(ctx, key); err == nil {
		var cached []Result
		if json.Unmarshal([]byte(raw), &cached) == nil {
			metrics.SearchRequests.WithLabelValues("cached").Inc()
			return cached
		}
	}

	resp, err := httpclient.Get(c.baseURL+"/cards/search").
		Query("q", query).
		WithContext(ctx).
		Timeout(10 * time.Second).
		Send()
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("scryfall: search failed", "query", query, "error", err)
			metrics.SearchRequests.WithLabelValues("error").Inc()
		}
		return nil
	}

	// Scryfall answers 404 for a query with no matches.
	if resp.StatusCode == http.StatusNotFound {
		metrics.SearchRequests.WithLabelValues("empty").Inc()
		c.store(ctx, key, nil)
		return nil
	}
	if !resp.OK() {
		logger.Warn("scryfall: unexpected status", "query", query, "status", resp.StatusCode)
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil
	}

	var payload apiResponse
	if err := resp.JSON(&payload); err != nil {
		logger.Warn("scryfall: bad payload", "query", query, "error", err)
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil
	}

	results := collection.Map(collection.Take(payload.Data, maxResults), c.convert)
	metrics.SearchRequests.WithLabelValues("hit").Inc()
	c.store(ctx, key, results)
	return results
}

func (c *Client) convert(card apiCard) Result {
	image := card.ImageURIs.Normal
	if image == "" {
		image = card.ImageURIs.Small
	}

	// Rules text when the card has one, otherwise the type line.
	description := card.OracleText
	if description == "" {
		description = card.TypeLine
	}

	var brl float64
	if usd, err := strconv.ParseFloat(card.Prices.USD, 64); err == nil {
		brl = usd * c.multiplier
	}

	return Result{
		ID:          card.ID,
		Name:        card.Name,
		SetName:     card.SetName,
		Description: description,
		Image:       image,
		PriceBRL:    brl,
	}
}

func (c *Client) store(ctx context.Context, key string, results []Result) {
	encoded, err := json.Marshal(results)
	if err != nil {
		return
	}
	_ = cache.Set(ctx, key, string(encoded), cacheTTL)
}
