// Package services implements the storefront business rules.
package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/pkg/cache"
	"github.com/shashiranjanraj/cartinhas/pkg/collection"
)

// CartItem is one line in a shopping cart.
type CartItem struct {
	CardID   uint    `json:"card_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Cart holds a client's pending purchase, keyed by the opaque cart
// token the client sends in the X-Cart-Token header.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add merges qty of card into the cart. Adding a card already present
// increases its quantity instead of duplicating the line.
func (c *Cart) Add(card models.Card, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].CardID == card.ID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		CardID:   card.ID,
		Name:     card.Name,
		Price:    card.Price,
		Image:    card.Image,
		Quantity: qty,
	})
}

// Remove drops the line for cardID, if present.
func (c *Cart) Remove(cardID uint) {
	c.Items = collection.Filter(c.Items, func(item CartItem) bool {
		return item.CardID != cardID
	})
}

// SetQuantity sets the quantity for cardID. Zero or negative removes
// the line.
func (c *Cart) SetQuantity(cardID uint, qty int) {
	if qty <= 0 {
		c.Remove(cardID)
		return
	}
	for i := range c.Items {
		if c.Items[i].CardID == cardID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

// TotalPrice is the sum of price times quantity over all lines.
func (c Cart) TotalPrice() float64 {
	return collection.Sum(c.Items, func(item CartItem) float64 {
		return item.Price * float64(item.Quantity)
	})
}

// TotalItems is the sum of quantities over all lines.
func (c Cart) TotalItems() int {
	return int(collection.Sum(c.Items, func(item CartItem) float64 {
		return float64(item.Quantity)
	}))
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartStore persists carts between requests.
type CartStore interface {
	// Load returns the cart for token. A missing or unreadable blob
	// yields an empty cart, never an error the client has to handle.
	Load(ctx context.Context, token string) Cart

	// Save persists the cart for token.
	Save(ctx context.Context, token string, cart Cart) error

	// Clear deletes the persisted cart for token.
	Clear(ctx context.Context, token string) error
}

// RedisCartStore keeps carts in Redis with a sliding TTL.
type RedisCartStore struct {
	ttl time.Duration
}

func NewRedisCartStore() *RedisCartStore {
	return &RedisCartStore{ttl: 30 * 24 * time.Hour}
}

func (s *RedisCartStore) key(token string) string {
	return "cartinhas:cart:" + token
}

func (s *RedisCartStore) Load(ctx context.Context, token string) Cart {
	var cart Cart
	raw, err := cache.Get(ctx, s.key(token))
	if err != nil {
		return cart
	}
	if json.Unmarshal([]byte(raw), &cart) != nil {
		return Cart{}
	}
	return cart
}

func (s *RedisCartStore) Save(ctx context.Context, token string, cart Cart) error {
	encoded, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return cache.Set(ctx, s.key(token), string(encoded), s.ttl)
}

func (s *RedisCartStore) Clear(ctx context.Context, token string) error {
	return cache.Forget(ctx, s.key(token))
}

// MemoryCartStore keeps carts in a map. It is the fallback store when
// Redis is unavailable, so concurrent handlers hit it.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string][]byte)}
}

func (s *MemoryCartStore) Load(_ context.Context, token string) Cart {
	s.mu.RLock()
	raw, ok := s.carts[token]
	s.mu.RUnlock()

	var cart Cart
	if !ok {
		return cart
	}
	if json.Unmarshal(raw, &cart) != nil {
		return Cart{}
	}
	return cart
}

func (s *MemoryCartStore) Save(_ context.Context, token string, cart Cart) error {
	encoded, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[token] = encoded
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.carts, token)
	s.mu.Unlock()
	return nil
}

// Seed writes a raw blob for a token, used in tests to simulate
// corrupt persisted carts.
func (s *MemoryCartStore) Seed(token string, raw []byte) {
	s.mu.Lock()
	s.carts[token] = raw
	s.mu.Unlock()
}
