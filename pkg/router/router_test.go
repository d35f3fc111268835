package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/cartinhas/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	r.Get("/cards/{id}", "cards.show", ok)

	url, err := r.URL("cards.show", map[string]string{"id": "42"})
	if err != nil {
		t.Fatalf("URL failed: %v", err)
	}
	if url != "/cards/42" {
		t.Errorf("expected /cards/42, got %s", url)
	}

	if _, err := r.URL("cards.missing", nil); err == nil {
		t.Error("expected error for unknown route name")
	}
}

func TestGroupPrefixesNestedRoutes(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	admin := api.Group("/admin")
	admin.Get("/orders", "admin.orders", ok)

	path, found := r.Path("admin.orders")
	if !found {
		t.Fatal("expected route to be registered")
	}
	if path != "/api/admin/orders" {
		t.Errorf("expected /api/admin/orders, got %s", path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestGroupMiddlewareAppliesOnlyInsideGroup(t *testing.T) {
	mark := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Guarded", "yes")
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	r.Get("/open", "open", ok)
	guarded := r.Group("/guarded", mark)
	guarded.Get("/inner", "guarded.inner", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded/inner", nil))
	if rec.Header().Get("X-Guarded") != "yes" {
		t.Error("expected group middleware to run")
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))
	if rec.Header().Get("X-Guarded") != "" {
		t.Error("expected open route to skip group middleware")
	}
}

func TestRoutesListsRegistrations(t *testing.T) {
	r := router.New()
	r.Get("/cards", "cards.index", ok)
	r.Post("/cards", "cards.store", ok)
	r.Delete("/cart", "cart.clear", ok)

	routes := r.Routes()
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}

	seen := map[string]string{}
	for _, info := range routes {
		seen[info.Name] = info.Method + " " + info.Path
	}
	if seen["cards.store"] != "POST /cards" {
		t.Errorf("unexpected entry for cards.store: %s", seen["cards.store"])
	}
	if seen["cart.clear"] != "DELETE /cart" {
		t.Errorf("unexpected entry for cart.clear: %s", seen["cart.clear"])
	}
}

func TestMethodsAreDistinct(t *testing.T) {
	r := router.New()
	r.Get("/cart", "cart.show", ok)
	r.Delete("/cart", "cart.clear", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cart", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
