package services

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/cartinhas/app/models"
)

func card(id uint, name string, price float64) models.Card {
	c := models.Card{Name: name, Price: price}
	c.ID = id
	return c
}

func TestCartAddMergesDuplicates(t *testing.T) {
	var cart Cart
	cart.Add(card(1, "Lightning Bolt", 24.9), 2)
	cart.Add(card(1, "Lightning Bolt", 24.9), 3)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	var cart Cart
	cart.Add(card(1, "Counterspell", 19.9), 0)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	var cart Cart
	cart.Add(card(1, "Counterspell", 19.9), 2)
	cart.Add(card(2, "Llanowar Elves", 9.9), 1)

	cart.SetQuantity(1, 0)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].CardID)

	cart.SetQuantity(2, -5)
	assert.True(t, cart.IsEmpty())
}

func TestCartSetQuantityUnknownCardIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(card(1, "Counterspell", 19.9), 2)

	cart.SetQuantity(99, 4)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartTotals(t *testing.T) {
	var cart Cart
	cart.Add(card(1, "Lightning Bolt", 10), 3)
	cart.Add(card(2, "Counterspell", 20), 2)

	assert.InDelta(t, 70.0, cart.TotalPrice(), 1e-9)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	var cart Cart
	cart.Add(card(1, "Lightning Bolt", 24.9), 2)
	require.NoError(t, store.Save(ctx, "tok", cart))

	loaded := store.Load(ctx, "tok")
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Lightning Bolt", loaded.Items[0].Name)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
}

func TestMemoryStoreMissingTokenYieldsEmptyCart(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	// Read-only helpers are callable straight off a Load result.
	assert.True(t, store.Load(ctx, "never-seen").IsEmpty())
	assert.Zero(t, store.Load(ctx, "never-seen").TotalPrice())
	assert.Zero(t, store.Load(ctx, "never-seen").TotalItems())
}

func TestMemoryStoreCorruptBlobYieldsEmptyCart(t *testing.T) {
	store := NewMemoryCartStore()
	store.Seed("tok", []byte("{not json"))

	cart := store.Load(context.Background(), "tok")
	assert.True(t, cart.IsEmpty())
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	var cart Cart
	cart.Add(card(1, "Counterspell", 19.9), 1)
	require.NoError(t, store.Save(ctx, "tok", cart))
	require.NoError(t, store.Clear(ctx, "tok"))

	assert.True(t, store.Load(ctx, "tok").IsEmpty())
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := "tok-" + strconv.Itoa(i%2)
			for j := 0; j < 50; j++ {
				var cart Cart
				cart.Add(card(1, "Lightning Bolt", 24.9), 1)
				_ = store.Save(ctx, token, cart)
				_ = store.Load(ctx, token)
				_ = store.Clear(ctx, token)
			}
		}(i)
	}
	wg.Wait()
}

type fakeCards struct {
	byID map[uint]models.Card
}

func (f *fakeCards) FindByID(id uint) (models.Card, error) {
	c, ok := f.byID[id]
	if !ok {
		return models.Card{}, ErrCardNotFound
	}
	return c, nil
}

func TestCartServiceAddUnknownCard(t *testing.T) {
	svc := NewCartService(NewMemoryCartStore(), &fakeCards{byID: map[uint]models.Card{}})

	_, err := svc.Add(context.Background(), "tok", 42, 1)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestCartServiceAddPersists(t *testing.T) {
	store := NewMemoryCartStore()
	svc := NewCartService(store, &fakeCards{byID: map[uint]models.Card{
		1: card(1, "Lightning Bolt", 24.9),
	}})
	ctx := context.Background()

	_, err := svc.Add(ctx, "tok", 1, 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "tok", 1, 1)
	require.NoError(t, err)

	cart := svc.Get(ctx, "tok")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}
