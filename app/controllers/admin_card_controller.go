package controllers

import (
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/internal/scryfall"
	"github.com/shashiranjanraj/cartinhas/pkg/ctx"
)

// AdminCardController manages the catalog and the upstream card picker.
type AdminCardController struct {
	catalog *services.CatalogService
	search  *scryfall.Client
}

func NewAdminCardController(catalog *services.CatalogService, search *scryfall.Client) *AdminCardController {
	return &AdminCardController{catalog: catalog, search: search}
}

func (c *AdminCardController) Create(cc *ctx.Context) {
	var input services.CardInput
	if !cc.BindJSON(&input) {
		return
	}

	card, err := c.catalog.Create(cc.Context(), input)
	if err != nil {
		cc.Error(http.StatusInternalServerError, "could not create card")
		return
	}
	cc.Created(card)
}

func (c *AdminCardController) Update(cc *ctx.Context) {
	id, err := strconv.ParseUint(cc.Param("id"), 10, 32)
	if err != nil {
		cc.Error(http.StatusBadRequest, "invalid card id")
		return
	}

	var input services.CardInput
	if !cc.BindJSON(&input) {
		return
	}

	card, err := c.catalog.Update(cc.Context(), uint(id), input)
	if err == services.ErrCardNotFound {
		cc.NotFound()
		return
	}
	if err != nil {
		cc.Error(http.StatusInternalServerError, "could not update card")
		return
	}
	cc.Success(card)
}

func (c *AdminCardController) Delete(cc *ctx.Context) {
	id, err := strconv.ParseUint(cc.Param("id"), 10, 32)
	if err != nil {
		cc.Error(http.StatusBadRequest, "invalid card id")
		return
	}

	if err := c.catalog.Delete(cc.Context(), uint(id)); err != nil {
		cc.NotFound()
		return
	}
	cc.Success(map[string]string{"message": "card deleted"})
}

// Search proxies the upstream card API for the admin picker. Short
// queries and upstream misses both come back as an empty list.
func (c *AdminCardController) Search(cc *ctx.Context) {
	results := c.search.Search(cc.Context(), cc.Query("q"))
	if results == nil {
		results = []scryfall.Result{}
	}
	cc.Success(results)
}
