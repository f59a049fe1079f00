package domain

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEventNotFound = errors.New("event not found")

	// ErrSeatTaken reports that a live ticket already occupies the
	// (event, place, category) slot.
	ErrSeatTaken = errors.New("seat already booked")

	// ErrInsufficientFunds reports that the user's account cannot cover
	// the event's ticket price.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTransactionFailed wraps store-level failures during the booking
	// mutation; the transaction has been rolled back.
	ErrTransactionFailed = errors.New("booking transaction failed")

	ErrInvalidPlace       = errors.New("place must be a positive integer")
	ErrInvalidCategory    = errors.New("unknown ticket category")
	ErrInvalidPageRequest = errors.New("invalid page request")

	ErrNameRequired    = errors.New("user name required")
	ErrEmailRequired   = errors.New("user email required")
	ErrEmailTaken      = errors.New("email already registered")
	ErrNegativeAccount = errors.New("account must not be negative")
	ErrTitleRequired   = errors.New("event title required")
	ErrNegativePrice   = errors.New("ticket price must not be negative")
)
