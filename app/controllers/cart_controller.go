package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/pkg/ctx"
)

// CartTokenHeader identifies a client's cart. The storefront stores
// the token locally and replays it on every cart request; responses
// echo it back so first-time clients learn theirs.
const CartTokenHeader = "X-Cart-Token"

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

func (c *CartController) token(cc *ctx.Context) string {
	token := cc.Header(CartTokenHeader)
	if token == "" {
		buf := make([]byte, 16)
		rand.Read(buf) //nolint:errcheck
		token = hex.EncodeToString(buf)
	}
	cc.Writer.Header().Set(CartTokenHeader, token)
	return token
}

func (c *CartController) Show(cc *ctx.Context) {
	cart := c.service.Get(cc.Context(), c.token(cc))
	cc.Success(cartPayload(cart))
}

type addItemInput struct {
	CardID   uint `json:"card_id" validate:"required,gt=0"`
	Quantity int  `json:"quantity" validate:"nullable,gte=1"`
}

func (c *CartController) Add(cc *ctx.Context) {
	var input addItemInput
	if !cc.BindJSON(&input) {
		return
	}
	if input.Quantity < 1 {
		input.Quantity = 1
	}

	cart, err := c.service.Add(cc.Context(), c.token(cc), input.CardID, input.Quantity)
	if err == services.ErrCardNotFound {
		cc.NotFound()
		return
	}
	if err != nil {
		cc.Error(http.StatusInternalServerError, "could not update cart")
		return
	}
	cc.Success(cartPayload(cart))
}

type setQuantityInput struct {
	Quantity int `json:"quantity"`
}

func (c *CartController) SetQuantity(cc *ctx.Context) {
	cardID, err := strconv.ParseUint(cc.Param("cardID"), 10, 32)
	if err != nil {
		cc.Error(http.StatusBadRequest, "invalid card id")
		return
	}

	var input setQuantityInput
	if !cc.BindJSON(&input) {
		return
	}

	cart, err := c.service.SetQuantity(cc.Context(), c.token(cc), uint(cardID), input.Quantity)
	if err != nil {
		cc.Error(http.StatusInternalServerError, "could not update cart")
		return
	}
	cc.Success(cartPayload(cart))
}

func (c *CartController) Remove(cc *ctx.Context) {
	cardID, err := strconv.ParseUint(cc.Param("cardID"), 10, 32)
	if err != nil {
		cc.Error(http.StatusBadRequest, "invalid card id")
		return
	}

	cart, err := c.service.Remove(cc.Context(), c.token(cc), uint(cardID))
	if err != nil {
		cc.Error(http.StatusInternalServerError, "could not update cart")
		return
	}
	cc.Success(cartPayload(cart))
}

func (c *CartController) Clear(cc *ctx.Context) {
	if err := c.service.Clear(cc.Context(), c.token(cc)); err != nil {
		cc.Error(http.StatusInternalServerError, "could not clear cart")
		return
	}
	cc.Success(cartPayload(services.Cart{}))
}

func cartPayload(cart services.Cart) map[string]any {
	items := cart.Items
	if items == nil {
		items = []services.CartItem{}
	}
	return map[string]any{
		"items":       items,
		"total_price": cart.TotalPrice(),
		"total_items": cart.TotalItems(),
	}
}
