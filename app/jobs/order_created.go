// Package jobs holds the background job types and their registration.
package jobs

import (
	"github.com/shashiranjanraj/cartinhas/pkg/logger"
	"github.com/shashiranjanraj/cartinhas/pkg/queue"
)

// OrderCreatedJob runs after checkout. It records the sale for later
// follow-up; payment confirmation is manual, so there is nothing to
// verify here yet.
type OrderCreatedJob struct {
	OrderID uint    `json:"order_id"`
	Total   float64 `json:"total"`
}

func (j *OrderCreatedJob) Handle() error {
	logger.Info("order placed", "order_id", j.OrderID, "total", j.Total)
	return nil
}

// RegisterAll registers every job type with the queue. Call once at
// boot before starting workers.
func RegisterAll() {
	queue.Register("*jobs.OrderCreatedJob", func() queue.Job { return &OrderCreatedJob{} })
}
