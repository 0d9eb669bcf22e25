package entity

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// IsValid cek status termasuk enumerated set.
// There is no transition graph: any valid status may follow any other.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

const DefaultCurrency = "USD"

type OrderItem struct {
	Name  string  `bson:"name"`
	Qty   int     `bson:"qty"`
	Price float64 `bson:"price"`
}

// Order references its owner by user ID only (weak reference,
// deleting the user does not cascade here).
// Total is a snapshot computed at creation time; editing items later
// does NOT recompute it - callers needing consistency must call
// ComputeTotal again and overwrite Total explicitly.
type Order struct {
	ID        string      `bson:"_id"`
	UserID    string      `bson:"user_id"`
	Items     []OrderItem `bson:"items"`
	Status    OrderStatus `bson:"status"`
	Total     float64     `bson:"total"`
	Currency  string      `bson:"currency"`
	PlacedAt  time.Time   `bson:"placed_at"`
	CreatedAt time.Time   `bson:"created_at"`
	UpdatedAt time.Time   `bson:"updated_at"`
}

// ComputeTotal returns the sum of qty * price over all items.
// Items are validated first: qty >= 1, price >= 0, name non-empty.
// A violating item fails with ErrInvalidItem, it is never clamped.
// An empty list totals 0.
func ComputeTotal(items []OrderItem) (float64, error) {
	if err := ValidateItems(items); err != nil {
		return 0, err
	}

	total := 0.0
	for _, item := range items {
		total += float64(item.Qty) * item.Price
	}

	return total, nil
}

// ValidateItems checks every line item against its floors
func ValidateItems(items []OrderItem) error {
	for i, item := range items {
		if item.Name == "" {
			return fmt.Errorf("%w: item %d has no name", ErrInvalidItem, i)
		}
		if item.Qty < 1 {
			return fmt.Errorf("%w: item %q qty %d (must be >= 1)", ErrInvalidItem, item.Name, item.Qty)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %q price %.2f (must be >= 0)", ErrInvalidItem, item.Name, item.Price)
		}
	}
	return nil
}
