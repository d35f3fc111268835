// Package ctx provides a pooled request context wrapper over net/http.
package ctx

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/cartinhas/pkg/bind"
	"github.com/shashiranjanraj/cartinhas/pkg/response"
)

// Context carries the request/response pair plus a per-request value store.
type Context struct {
	Writer  http.ResponseWriter
	Request *http.Request

	mu    sync.RWMutex
	store map[string]any
}

var pool = sync.Pool{
	New: func() any {
		return &Context{store: make(map[string]any)}
	},
}

// Handler is a handler that receives the wrapped context.
type Handler func(*Context)

// Wrap adapts a Handler to http.HandlerFunc. The Context is pooled and
// must not be retained after the handler returns.
func Wrap(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := pool.Get().(*Context)
		c.reset(w, r)
		defer pool.Put(c)

		h(c)
	}
}

func (c *Context) reset(w http.ResponseWriter, r *http.Request) {
	c.Writer = w
	c.Request = r
	c.mu.Lock()
	clear(c.store)
	c.mu.Unlock()
}

// Context returns the request's context.Context.
func (c *Context) Context() context.Context {
	return c.Request.Context()
}

// Param returns a chi URL parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.Request, key)
}

// Query returns a query string value.
func (c *Context) Query(key string) string {
	return c.Request.URL.Query().Get(key)
}

// Header returns a request header value.
func (c *Context) Header(key string) string {
	return c.Request.Header.Get(key)
}

// Set stores a value for the lifetime of the request.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	c.store[key] = value
	c.mu.Unlock()
}

// Get reads a value stored with Set.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	value, ok := c.store[key]
	c.mu.RUnlock()
	return value, ok
}

// BindJSON decodes and validates the request body into dest. On failure
// it writes the error response and returns false.
func (c *Context) BindJSON(dest any) bool {
	errs, err := bind.JSON(c.Request, dest)
	if err != nil {
		response.Error(c.Writer, http.StatusBadRequest, "invalid request body")
		return false
	}
	if len(errs) > 0 {
		response.ValidationError(c.Writer, errs)
		return false
	}
	return true
}

func (c *Context) Success(data any) {
	response.Success(c.Writer, data)
}

func (c *Context) Created(data any) {
	response.Created(c.Writer, data)
}

func (c *Context) Error(code int, message string) {
	response.Error(c.Writer, code, message)
}

func (c *Context) ValidationError(errs map[string]string) {
	response.ValidationError(c.Writer, errs)
}

func (c *Context) Unauthorized() {
	response.Unauthorized(c.Writer)
}

func (c *Context) Forbidden() {
	response.Forbidden(c.Writer)
}

func (c *Context) NotFound() {
	response.NotFound(c.Writer)
}
