package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shashiranjanraj/cartinhas/app/jobs"
	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/config"
	"github.com/shashiranjanraj/cartinhas/pkg/collection"
	"github.com/shashiranjanraj/cartinhas/pkg/logger"
	"github.com/shashiranjanraj/cartinhas/pkg/metrics"
	"github.com/shashiranjanraj/cartinhas/pkg/queue"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingContact = errors.New("name and phone are required")
)

// OrderWriter persists new orders.
type OrderWriter interface {
	Create(order *models.Order) error
}

// CheckoutService turns a cart into a pending order paid via PIX.
type CheckoutService struct {
	orders OrderWriter
	carts  CartStore
}

func NewCheckoutService(orders OrderWriter, carts CartStore) *CheckoutService {
	return &CheckoutService{orders: orders, carts: carts}
}

// Checkout snapshots the cart into an order, clears the cart and
// returns the order with its PIX payment code. Name and phone are
// required; the order starts pending.
func (s *CheckoutService) Checkout(ctx context.Context, user models.User, token, name, phone string) (models.Order, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return models.Order{}, ErrMissingContact
	}

	cart := s.carts.Load(ctx, token)
	if cart.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}

	items := collection.Map(cart.Items, func(item CartItem) models.OrderItem {
		return models.OrderItem{
			CardID:   item.CardID,
			Name:     item.Name,
			Price:    item.Price,
			Image:    item.Image,
			Quantity: item.Quantity,
		}
	})

	order := models.Order{
		UserID:    user.ID,
		UserName:  name,
		UserPhone: phone,
		UserEmail: user.Email,
		Items:     items,
		Total:     cart.TotalPrice(),
		Status:    models.OrderStatusPending,
		PixCode:   config.PixCode(),
	}

	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, err
	}

	if err := s.carts.Clear(ctx, token); err != nil {
		logger.Warn("checkout: cart clear failed", "error", err)
	}

	if err := queue.Dispatch(&jobs.OrderCreatedJob{OrderID: order.ID, Total: order.Total}); err != nil {
		logger.Warn("checkout: dispatch order job failed", "error", err)
	}

	metrics.OrdersCreated.Inc()
	return order, nil
}
