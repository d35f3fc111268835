package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/pkg/orm"
)

type fakeOrderStore struct {
	orders map[uint]models.Order
}

func newFakeOrderStore(orders ...models.Order) *fakeOrderStore {
	store := &fakeOrderStore{orders: map[uint]models.Order{}}
	for _, o := range orders {
		store.orders[o.ID] = o
	}
	return store
}

func (f *fakeOrderStore) FindByID(id uint) (models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return models.Order{}, errors.New("record not found")
	}
	return o, nil
}

func (f *fakeOrderStore) Update(order *models.Order) error {
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeOrderStore) ByUser(userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) All(page, perPage int) ([]models.Order, orm.Pagination, error) {
	var out []models.Order
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, orm.Pagination{Page: page, PerPage: perPage, Total: int64(len(out))}, nil
}

func pendingOrder(id uint) models.Order {
	o := models.Order{Status: models.OrderStatusPending, UserID: 7}
	o.ID = id
	return o
}

func TestSetStatusCompletesPendingOrder(t *testing.T) {
	store := newFakeOrderStore(pendingOrder(1))
	svc := NewOrderService(store)

	order, err := svc.SetStatus(1, models.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.Equal(t, models.OrderStatusCompleted, store.orders[1].Status)
}

func TestSetStatusCancelsPendingOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrderStore(pendingOrder(1)))

	order, err := svc.SetStatus(1, models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
}

func TestSetStatusFinishedOrdersAreImmutable(t *testing.T) {
	completed := pendingOrder(1)
	completed.Status = models.OrderStatusCompleted
	cancelled := pendingOrder(2)
	cancelled.Status = models.OrderStatusCancelled

	svc := NewOrderService(newFakeOrderStore(completed, cancelled))

	for _, id := range []uint{1, 2} {
		for _, target := range []string{models.OrderStatusCompleted, models.OrderStatusCancelled, models.OrderStatusPending} {
			_, err := svc.SetStatus(id, target)

			var invalid *InvalidTransitionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, target, invalid.To)
		}
	}
}

func TestSetStatusRejectsUnknownTarget(t *testing.T) {
	svc := NewOrderService(newFakeOrderStore(pendingOrder(1)))

	_, err := svc.SetStatus(1, "shipped")

	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.OrderStatusPending, invalid.From)
}

func TestSetStatusUnknownOrder(t *testing.T) {
	svc := NewOrderService(newFakeOrderStore())

	_, err := svc.SetStatus(99, models.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestForUserFiltersOwnership(t *testing.T) {
	mine := pendingOrder(1)
	other := pendingOrder(2)
	other.UserID = 8

	svc := NewOrderService(newFakeOrderStore(mine, other))

	orders, err := svc.ForUser(7)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, uint(1), orders[0].ID)
}
