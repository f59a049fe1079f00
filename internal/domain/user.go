package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a ticket buyer with a prepaid account balance.
//
// The tickets a user owns are not stored on the struct: the tickets
// relation is the single authority, and Tickets is filled from a lookup
// when a caller asks for it.
type User struct {
	ID        string
	Name      string
	Email     string
	Account   decimal.Decimal
	Tickets   []string
	CreatedAt time.Time
}
