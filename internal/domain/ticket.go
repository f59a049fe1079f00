package domain

import "time"

// Category is the seating tier of a ticket. Prices are per event, not per
// category.
type Category string

const (
	CategoryEconomy Category = "economy"
	CategoryBar     Category = "bar"
	CategoryPremium Category = "premium"
)

// ParseCategory accepts a category name as received on the wire.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryEconomy, CategoryBar, CategoryPremium:
		return Category(s), nil
	}
	return "", ErrInvalidCategory
}

// Ticket is a sold seat. A live ticket is unique by (EventID, Place,
// Category); the store enforces that with a unique constraint.
type Ticket struct {
	ID        string
	UserID    string
	EventID   string
	Place     int
	Category  Category
	CreatedAt time.Time
}
