package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/pkg/orm"
)

var ErrOrderNotFound = errors.New("order not found")

// InvalidTransitionError reports a rejected status change.
type InvalidTransitionError struct {
	From, To string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %q to %q", e.From, e.To)
}

// OrderStore is the slice of the order repository this service needs.
type OrderStore interface {
	FindByID(id uint) (models.Order, error)
	Update(order *models.Order) error
	ByUser(userID uint) ([]models.Order, error)
	All(page, perPage int) ([]models.Order, orm.Pagination, error)
}

// OrderService serves order listings and admin status changes.
type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// ForUser returns the user's own orders, newest first.
func (s *OrderService) ForUser(userID uint) ([]models.Order, error) {
	return s.orders.ByUser(userID)
}

// All returns one page of every order for the admin panel.
func (s *OrderService) All(page, perPage int) ([]models.Order, int64, error) {
	orders, pagination, err := s.orders.All(page, perPage)
	return orders, pagination.Total, err
}

// Find returns one order for the admin panel.
func (s *OrderService) Find(id uint) (models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// SetStatus moves an order to completed or cancelled. Only pending
// orders may change; finished orders are immutable.
func (s *OrderService) SetStatus(id uint, status string) (models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}

	if !order.CanTransition(status) {
		return models.Order{}, &InvalidTransitionError{From: order.Status, To: status}
	}

	order.Status = status
	if err := s.orders.Update(&order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}
