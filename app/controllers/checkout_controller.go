package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/pkg/ctx"
	"github.com/shashiranjanraj/cartinhas/pkg/middleware"
)

type CheckoutController struct {
	checkout *services.CheckoutService
	auth     *services.AuthService
}

func NewCheckoutController(checkout *services.CheckoutService, auth *services.AuthService) *CheckoutController {
	return &CheckoutController{checkout: checkout, auth: auth}
}

type checkoutInput struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,min=8"`
}

// Create places an order from the client's cart. Requires a logged-in
// user plus the buyer's name and phone for the PIX receipt.
func (c *CheckoutController) Create(cc *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(cc.Context())
	if !ok {
		cc.Unauthorized()
		return
	}

	user, err := c.auth.Me(userID)
	if err != nil {
		cc.Unauthorized()
		return
	}

	var input checkoutInput
	if !cc.BindJSON(&input) {
		return
	}

	token := cc.Header(CartTokenHeader)
	if token == "" {
		cc.Error(http.StatusBadRequest, "missing cart token")
		return
	}

	order, err := c.checkout.Checkout(cc.Context(), user, token, input.Name, input.Phone)
	switch err {
	case nil:
	case services.ErrEmptyCart:
		cc.Error(http.StatusUnprocessableEntity, "cart is empty")
		return
	case services.ErrMissingContact:
		cc.ValidationError(map[string]string{
			"name":  "name and phone are required",
			"phone": "name and phone are required",
		})
		return
	default:
		cc.Error(http.StatusInternalServerError, "checkout failed")
		return
	}

	cc.Created(order)
}
