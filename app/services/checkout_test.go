package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/cartinhas/app/models"
)

type fakeOrderWriter struct {
	created []models.Order
	err     error
}

func (f *fakeOrderWriter) Create(order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	order.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *order)
	return nil
}

func buyer() models.User {
	u := models.User{Name: "Ana", Email: "ana@example.com"}
	u.ID = 7
	return u
}

func seededCheckout(t *testing.T) (*CheckoutService, *fakeOrderWriter, *MemoryCartStore) {
	t.Helper()

	store := NewMemoryCartStore()
	var cart Cart
	cart.Add(card(1, "Lightning Bolt", 10), 2)
	cart.Add(card(2, "Counterspell", 20), 1)
	require.NoError(t, store.Save(context.Background(), "tok", cart))

	writer := &fakeOrderWriter{}
	return NewCheckoutService(writer, store), writer, store
}

func TestCheckoutCreatesPendingOrder(t *testing.T) {
	svc, writer, store := seededCheckout(t)
	ctx := context.Background()

	order, err := svc.Checkout(ctx, buyer(), "tok", "Ana Souza", "+55 11 98888-0000")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.PixCode)
	assert.Equal(t, uint(7), order.UserID)
	assert.Equal(t, "Ana Souza", order.UserName)
	assert.Equal(t, "ana@example.com", order.UserEmail)
	assert.InDelta(t, 40.0, order.Total, 1e-9)
	require.Len(t, writer.created, 1)

	// Cart is consumed by checkout.
	assert.True(t, store.Load(ctx, "tok").IsEmpty())
}

func TestCheckoutSnapshotsItems(t *testing.T) {
	svc, _, _ := seededCheckout(t)

	order, err := svc.Checkout(context.Background(), buyer(), "tok", "Ana", "+55 11 98888-0000")
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, uint(1), order.Items[0].CardID)
	assert.Equal(t, "Lightning Bolt", order.Items[0].Name)
	assert.InDelta(t, 10.0, order.Items[0].Price, 1e-9)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCheckoutRequiresContact(t *testing.T) {
	svc, writer, _ := seededCheckout(t)
	ctx := context.Background()

	_, err := svc.Checkout(ctx, buyer(), "tok", "   ", "+55 11 98888-0000")
	assert.ErrorIs(t, err, ErrMissingContact)

	_, err = svc.Checkout(ctx, buyer(), "tok", "Ana", "")
	assert.ErrorIs(t, err, ErrMissingContact)

	assert.Empty(t, writer.created)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	writer := &fakeOrderWriter{}
	svc := NewCheckoutService(writer, NewMemoryCartStore())

	_, err := svc.Checkout(context.Background(), buyer(), "tok", "Ana", "+55 11 98888-0000")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, writer.created)
}

func TestCheckoutKeepsCartOnPersistError(t *testing.T) {
	store := NewMemoryCartStore()
	var cart Cart
	cart.Add(card(1, "Lightning Bolt", 10), 1)
	require.NoError(t, store.Save(context.Background(), "tok", cart))

	writer := &fakeOrderWriter{err: assert.AnError}
	svc := NewCheckoutService(writer, store)

	_, err := svc.Checkout(context.Background(), buyer(), "tok", "Ana", "+55 11 98888-0000")
	require.Error(t, err)
	assert.False(t, store.Load(context.Background(), "tok").IsEmpty())
}
