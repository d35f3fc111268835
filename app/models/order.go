package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// Order statuses. New orders start pending; only pending orders can
// move to completed or cancelled.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is a snapshot of one cart line at checkout time. It copies
// the card's name and price so later catalog edits never change the
// order.
type OrderItem struct {
	CardID   uint    `json:"card_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// OrderItems is stored as a JSON column.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	case nil:
		*items = nil
		return nil
	default:
		return fmt.Errorf("order items: cannot scan %T", value)
	}
}

// Order is a placed checkout with denormalised buyer details and a
// frozen item snapshot.
type Order struct {
	gorm.Model
	UserID    uint       `gorm:"not null;index"              json:"user_id"`
	UserName  string     `gorm:"size:255;not null"           json:"user_name"`
	UserPhone string     `gorm:"size:50;not null"            json:"user_phone"`
	UserEmail string     `gorm:"size:255"                    json:"user_email"`
	Items     OrderItems `gorm:"type:text;not null"          json:"items"`
	Total     float64    `gorm:"not null"                    json:"total"`
	Status    string     `gorm:"size:50;default:pending;index" json:"status"`
	PixCode   string     `gorm:"type:text"                   json:"pix_code"`
}

// CanTransition reports whether the order may move to target.
func (o *Order) CanTransition(target string) bool {
	if o.Status != OrderStatusPending {
		return false
	}
	return target == OrderStatusCompleted || target == OrderStatusCancelled
}
