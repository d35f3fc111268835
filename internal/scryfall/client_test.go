package scryfall

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &Client{baseURL: srv.URL, multiplier: 5}, srv
}

func searchPayload(n int) apiResponse {
	var payload apiResponse
	for i := 0; i < n; i++ {
		card := apiCard{
			ID:         "id",
			Name:       "Lightning Bolt",
			SetName:    "Magic 2011",
			OracleText: "Lightning Bolt deals 3 damage to any target.",
			TypeLine:   "Instant",
		}
		card.ImageURIs.Normal = "https://cards.example/bolt.jpg"
		card.Prices.USD = "2.50"
		payload.Data = append(payload.Data, card)
	}
	return payload
}

func TestSearchShortQuerySkipsUpstream(t *testing.T) {
	called := false
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer srv.Close()

	assert.Nil(t, client.Search(context.Background(), "a"))
	assert.Nil(t, client.Search(context.Background(), "  x  "))
	assert.Nil(t, client.Search(context.Background(), ""))
	assert.False(t, called)
}

func TestSearchConvertsPricesToBRL(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bolt", r.URL.Query().Get("q"))
		json.NewEncoder(w).Encode(searchPayload(1)) //nolint:errcheck
	})
	defer srv.Close()

	results := client.Search(context.Background(), "bolt")
	require.Len(t, results, 1)
	assert.Equal(t, "Lightning Bolt", results[0].Name)
	assert.Equal(t, "https://cards.example/bolt.jpg", results[0].Image)
	assert.InDelta(t, 12.5, results[0].PriceBRL, 1e-9)
}

func TestSearchCapsResults(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchPayload(25)) //nolint:errcheck
	})
	defer srv.Close()

	results := client.Search(context.Background(), "bolt")
	assert.Len(t, results, 10)
}

func TestSearchNotFoundYieldsEmpty(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"object":"error"}`, http.StatusNotFound)
	})
	defer srv.Close()

	assert.Empty(t, client.Search(context.Background(), "no such card"))
}

func TestSearchUpstreamErrorYieldsEmpty(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer srv.Close()

	assert.Empty(t, client.Search(context.Background(), "bolt"))
}

func TestSearchMissingPriceConvertsToZero(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		payload := searchPayload(1)
		payload.Data[0].Prices.USD = ""
		json.NewEncoder(w).Encode(payload) //nolint:errcheck
	})
	defer srv.Close()

	results := client.Search(context.Background(), "bolt")
	require.Len(t, results, 1)
	assert.Zero(t, results[0].PriceBRL)
}

func TestSearchDescriptionFallsBackToTypeLine(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		payload := searchPayload(2)
		payload.Data[1].OracleText = ""
		json.NewEncoder(w).Encode(payload) //nolint:errcheck
	})
	defer srv.Close()

	results := client.Search(context.Background(), "bolt")
	require.Len(t, results, 2)
	assert.Equal(t, "Lightning Bolt deals 3 damage to any target.", results[0].Description)
	assert.Equal(t, "Instant", results[1].Description)
}

func TestSearchFallsBackToSmallImage(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		payload := searchPayload(1)
		payload.Data[0].ImageURIs.Normal = ""
		payload.Data[0].ImageURIs.Small = "https://cards.example/bolt-small.jpg"
		json.NewEncoder(w).Encode(payload) //nolint:errcheck
	})
	defer srv.Close()

	results := client.Search(context.Background(), "bolt")
	require.Len(t, results, 1)
	assert.Equal(t, "https://cards.example/bolt-small.jpg", results[0].Image)
}

func TestSearchCancelledContext(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchPayload(1)) //nolint:errcheck
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, client.Search(ctx, "bolt"))
}
