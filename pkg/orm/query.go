// Package orm is a thin fluent wrapper over the shared GORM connection.
package orm

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/cartinhas/pkg/cache"
	"github.com/shashiranjanraj/cartinhas/pkg/database"
)

type Query struct {
	db *gorm.DB
}

// DB starts a query on the shared connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// Use starts a query on an explicit connection, for tests.
func Use(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v any) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...any) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(order string) *Query {
	return &Query{db: q.db.Order(order)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Get(dest any) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest any) error {
	return q.db.First(dest).Error
}

func (q *Query) Count(count *int64) error {
	return q.db.Count(count).Error
}

func (q *Query) Create(v any) error {
	return q.db.Create(v).Error
}

func (q *Query) Save(v any) error {
	return q.db.Save(v).Error
}

func (q *Query) Delete(v any) error {
	return q.db.Delete(v).Error
}

// Pagination holds one page of results with the total row count.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

// Paginate fills dest with one page and returns pagination metadata.
func (q *Query) Paginate(page, perPage int, dest any) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int64
	if err := q.db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * perPage
	if err := q.db.Offset(offset).Limit(perPage).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	return Pagination{Page: page, PerPage: perPage, Total: total}, nil
}

// Cached reads dest from Redis if present, otherwise runs the query
// and caches its JSON encoding.
func (q *Query) Cached(ctx context.Context, key string, ttl time.Duration, dest any) error {
	if raw, err := cache.Get(ctx, key); err == nil {
		if json.Unmarshal([]byte(raw), dest) == nil {
			return nil
		}
	}

	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	if encoded, err := json.Marshal(dest); err == nil {
		_ = cache.Set(ctx, key, string(encoded), ttl)
	}
	return nil
}
