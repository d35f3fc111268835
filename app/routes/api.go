// Package routes mounts the HTTP API.
package routes

import (
	"time"

	"github.com/shashiranjanraj/cartinhas/app/controllers"
	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/internal/graph"
	"github.com/shashiranjanraj/cartinhas/internal/scryfall"
	"github.com/shashiranjanraj/cartinhas/pkg/ctx"
	"github.com/shashiranjanraj/cartinhas/pkg/feed"
	gql "github.com/shashiranjanraj/cartinhas/pkg/graphql"
	"github.com/shashiranjanraj/cartinhas/pkg/logger"
	"github.com/shashiranjanraj/cartinhas/pkg/metrics"
	"github.com/shashiranjanraj/cartinhas/pkg/middleware"
	"github.com/shashiranjanraj/cartinhas/pkg/rbac"
	"github.com/shashiranjanraj/cartinhas/pkg/router"
)

// Services bundles what the API needs, wired in internal/server.
type Services struct {
	Auth     *services.AuthService
	Cart     *services.CartService
	Catalog  *services.CatalogService
	Checkout *services.CheckoutService
	Orders   *services.OrderService
	Search   *scryfall.Client
	Hub      *feed.Hub
}

// RegisterAPI mounts every endpoint on r.
func RegisterAPI(r *router.Router, deps Services) {
	authController := controllers.NewAuthController(deps.Auth)
	cartController := controllers.NewCartController(deps.Cart)
	catalogController := controllers.NewCatalogController(deps.Catalog, deps.Hub)
	checkoutController := controllers.NewCheckoutController(deps.Checkout, deps.Auth)
	orderController := controllers.NewOrderController(deps.Orders)
	adminCardController := controllers.NewAdminCardController(deps.Catalog, deps.Search)
	feedController := controllers.NewFeedController(deps.Hub)

	r.HandleFunc("/metrics", metrics.Handler())

	api := r.Group("/api")

	// Public catalog.
	api.Get("/cards", "cards.list", ctx.Wrap(catalogController.List))
	api.Get("/cards/feed", "cards.feed", ctx.Wrap(catalogController.Feed))
	api.Get("/cards/{id}", "cards.show", ctx.Wrap(catalogController.Show))

	if schema, err := graph.NewSchema(deps.Catalog); err == nil {
		api.Post("/graphql", "graphql", gql.Handler(schema))
	} else {
		logger.Error("graphql: schema build failed", "error", err)
	}

	// Cart, addressed by the X-Cart-Token header.
	api.Get("/cart", "cart.show", ctx.Wrap(cartController.Show))
	api.Post("/cart/items", "cart.add", ctx.Wrap(cartController.Add))
	api.Put("/cart/items/{cardID}", "cart.set_quantity", ctx.Wrap(cartController.SetQuantity))
	api.Delete("/cart/items/{cardID}", "cart.remove", ctx.Wrap(cartController.Remove))
	api.Delete("/cart", "cart.clear", ctx.Wrap(cartController.Clear))

	// Guest-only auth endpoints.
	guest := api.Group("/auth", rbac.Guest)
	guest.Post("/register", "auth.register", ctx.Wrap(authController.Register))
	guest.Post("/login", "auth.login", ctx.Wrap(authController.Login))

	// Authenticated endpoints.
	authed := api.Group("", middleware.Auth)
	authed.Post("/auth/logout", "auth.logout", ctx.Wrap(authController.Logout))
	authed.Get("/auth/me", "auth.me", ctx.Wrap(authController.Me))
	authed.Post("/checkout", "checkout", ctx.Wrap(checkoutController.Create))
	authed.Get("/orders", "orders.mine", ctx.Wrap(orderController.Mine))

	// Admin panel.
	admin := api.Group("/admin", middleware.Auth, rbac.HasRole(rbac.RoleAdmin))
	admin.Get("/orders", "admin.orders.list", ctx.Wrap(orderController.List))
	admin.Get("/orders/{id}", "admin.orders.show", ctx.Wrap(orderController.Show))
	admin.Patch("/orders/{id}/status", "admin.orders.status", ctx.Wrap(orderController.SetStatus))
	admin.Post("/cards", "admin.cards.create", ctx.Wrap(adminCardController.Create))
	admin.Put("/cards/{id}", "admin.cards.update", ctx.Wrap(adminCardController.Update))
	admin.Delete("/cards/{id}", "admin.cards.delete", ctx.Wrap(adminCardController.Delete))
	admin.Get("/feed", "admin.feed", ctx.Wrap(feedController.Connect))

	// The picker hits the upstream API, so keep its rate tight.
	admin.Get("/cards/search", "admin.cards.search",
		ctx.Wrap(adminCardController.Search),
		middleware.RateLimit(30, time.Minute))
}
