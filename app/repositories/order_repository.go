package repositories

import (
	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/pkg/feed"
	"github.com/shashiranjanraj/cartinhas/pkg/orm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	hub *feed.Hub
}

func NewOrderRepository(hub *feed.Hub) *OrderRepository {
	return &OrderRepository{hub: hub}
}

// Create persists a new order and announces it on the admin feed.
func (r *OrderRepository) Create(order *models.Order) error {
	if err := orm.DB().Create(order); err != nil {
		return err
	}
	r.publish(feed.OrderCreated, order)
	return nil
}

// Update persists changes and announces them on the admin feed.
func (r *OrderRepository) Update(order *models.Order) error {
	if err := orm.DB().Save(order); err != nil {
		return err
	}
	r.publish(feed.OrderUpdated, order)
	return nil
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).Where("id = ?", id).First(&order)
	return order, err
}

// ByUser returns a user's orders, newest first.
func (r *OrderRepository) ByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).Where("user_id = ?", userID).
		Order("created_at desc").Get(&orders)
	return orders, err
}

// All returns one page of orders for the admin panel, newest first.
func (r *OrderRepository) All(page, perPage int) ([]models.Order, orm.Pagination, error) {
	var orders []models.Order
	pagination, err := orm.DB().Model(&models.Order{}).Order("created_at desc").
		Paginate(page, perPage, &orders)
	return orders, pagination, err
}

func (r *OrderRepository) publish(kind string, data any) {
	if r.hub != nil {
		r.hub.Publish(kind, data)
	}
}
