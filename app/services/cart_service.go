package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/pkg/metrics"
)

// ErrCardNotFound is returned when a cart mutation names an unknown card.
var ErrCardNotFound = errors.New("card not found")

// CardFinder resolves card ids to catalog entries.
type CardFinder interface {
	FindByID(id uint) (models.Card, error)
}

// CartService applies cart mutations against the persisted cart of a
// client token.
type CartService struct {
	store CartStore
	cards CardFinder
}

func NewCartService(store CartStore, cards CardFinder) *CartService {
	return &CartService{store: store, cards: cards}
}

// Get returns the cart for token.
func (s *CartService) Get(ctx context.Context, token string) Cart {
	return s.store.Load(ctx, token)
}

// Add puts qty of the card into the cart, merging duplicate lines.
func (s *CartService) Add(ctx context.Context, token string, cardID uint, qty int) (Cart, error) {
	card, err := s.cards.FindByID(cardID)
	if err != nil {
		return Cart{}, ErrCardNotFound
	}

	cart := s.store.Load(ctx, token)
	cart.Add(card, qty)
	if err := s.store.Save(ctx, token, cart); err != nil {
		return Cart{}, err
	}

	metrics.CartMutations.WithLabelValues("add").Inc()
	return cart, nil
}

// SetQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) SetQuantity(ctx context.Context, token string, cardID uint, qty int) (Cart, error) {
	cart := s.store.Load(ctx, token)
	cart.SetQuantity(cardID, qty)
	if err := s.store.Save(ctx, token, cart); err != nil {
		return Cart{}, err
	}

	metrics.CartMutations.WithLabelValues("set_quantity").Inc()
	return cart, nil
}

// Remove drops a line from the cart.
func (s *CartService) Remove(ctx context.Context, token string, cardID uint) (Cart, error) {
	cart := s.store.Load(ctx, token)
	cart.Remove(cardID)
	if err := s.store.Save(ctx, token, cart); err != nil {
		return Cart{}, err
	}

	metrics.CartMutations.WithLabelValues("remove").Inc()
	return cart, nil
}

// Clear deletes the persisted cart entirely.
func (s *CartService) Clear(ctx context.Context, token string) error {
	if err := s.store.Clear(ctx, token); err != nil {
		return err
	}
	metrics.CartMutations.WithLabelValues("clear").Inc()
	return nil
}
