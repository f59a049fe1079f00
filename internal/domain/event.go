package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a ticketed event with a fixed per-event ticket price.
type Event struct {
	ID          string
	Title       string
	StartsAt    time.Time
	TicketPrice decimal.Decimal
	CreatedAt   time.Time
}
