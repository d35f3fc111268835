package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/pkg/ctx"
	"github.com/shashiranjanraj/cartinhas/pkg/middleware"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Mine lists the authenticated user's own orders.
func (c *OrderController) Mine(cc *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(cc.Context())
	if !ok {
		cc.Unauthorized()
		return
	}

	orders, err := c.service.ForUser(userID)
	if err != nil {
		cc.Error(http.StatusInternalServerError, "could not load orders")
		return
	}
	cc.Success(orders)
}

// List serves one page of all orders for the admin panel.
func (c *OrderController) List(cc *ctx.Context) {
	page, _ := strconv.Atoi(cc.Query("page"))
	perPage, _ := strconv.Atoi(cc.Query("per_page"))

	orders, total, err := c.service.All(page, perPage)
	if err != nil {
		cc.Error(http.StatusInternalServerError, "could not load orders")
		return
	}
	cc.Success(map[string]any{
		"orders": orders,
		"total":  total,
	})
}

func (c *OrderController) Show(cc *ctx.Context) {
	id, err := strconv.ParseUint(cc.Param("id"), 10, 32)
	if err != nil {
		cc.Error(http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := c.service.Find(uint(id))
	if err != nil {
		cc.NotFound()
		return
	}
	cc.Success(order)
}

type statusInput struct {
	Status string `json:"status" validate:"required,in=completed,cancelled"`
}

// SetStatus completes or cancels a pending order.
func (c *OrderController) SetStatus(cc *ctx.Context) {
	id, err := strconv.ParseUint(cc.Param("id"), 10, 32)
	if err != nil {
		cc.Error(http.StatusBadRequest, "invalid order id")
		return
	}

	var input statusInput
	if !cc.BindJSON(&input) {
		return
	}

	order, err := c.service.SetStatus(uint(id), input.Status)
	if err != nil {
		var transition *services.InvalidTransitionError
		switch {
		case errors.As(err, &transition):
			cc.Error(http.StatusUnprocessableEntity, transition.Error())
		case err == services.ErrOrderNotFound:
			cc.NotFound()
		default:
			cc.Error(http.StatusInternalServerError, "could not update order")
		}
		return
	}
	cc.Success(order)
}
