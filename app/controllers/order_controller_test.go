package controllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/cartinhas/app/controllers"
	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/pkg/ctx"
	"github.com/shashiranjanraj/cartinhas/pkg/orm"
	"github.com/shashiranjanraj/cartinhas/pkg/router"
)

type stubOrders struct {
	orders map[uint]models.Order
}

func (s *stubOrders) FindByID(id uint) (models.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, errors.New("record not found")
	}
	return o, nil
}

func (s *stubOrders) Update(order *models.Order) error {
	s.orders[order.ID] = *order
	return nil
}

func (s *stubOrders) ByUser(userID uint) ([]models.Order, error) {
	return nil, nil
}

func (s *stubOrders) All(page, perPage int) ([]models.Order, orm.Pagination, error) {
	return nil, orm.Pagination{}, nil
}

func orderRouter(store *stubOrders) http.Handler {
	oc := controllers.NewOrderController(services.NewOrderService(store))

	r := router.New()
	r.Patch("/api/admin/orders/{id}/status", "admin.orders.status", ctx.Wrap(oc.SetStatus))
	return r.Handler()
}

func patchStatus(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSetStatusCompletesPending(t *testing.T) {
	order := models.Order{Status: models.OrderStatusPending}
	order.ID = 1
	store := &stubOrders{orders: map[uint]models.Order{1: order}}

	rec := patchStatus(t, orderRouter(store), "/api/admin/orders/1/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.OrderStatusCompleted, store.orders[1].Status)
}

func TestSetStatusFinishedOrderReturns422(t *testing.T) {
	order := models.Order{Status: models.OrderStatusCompleted}
	order.ID = 1
	store := &stubOrders{orders: map[uint]models.Order{1: order}}

	rec := patchStatus(t, orderRouter(store), "/api/admin/orders/1/status", `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, models.OrderStatusCompleted, store.orders[1].Status)
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	order := models.Order{Status: models.OrderStatusPending}
	order.ID = 1
	store := &stubOrders{orders: map[uint]models.Order{1: order}}

	rec := patchStatus(t, orderRouter(store), "/api/admin/orders/1/status", `{"status":"shipped"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSetStatusUnknownOrderReturns404(t *testing.T) {
	store := &stubOrders{orders: map[uint]models.Order{}}

	rec := patchStatus(t, orderRouter(store), "/api/admin/orders/9/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
