package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/cimillas/ticket-booking/internal/domain"
)

// BookingRepository backs the booking transaction. Seat uniqueness is
// enforced by the unique constraint on (event_id, place, category), so a
// lost race on CreateTicket reports domain.ErrSeatTaken instead of
// inserting a duplicate.
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// GetUserForUpdate loads the user and takes a row lock, serialising
// concurrent bookings by the same buyer.
func (r *BookingRepository) GetUserForUpdate(ctx context.Context, userID string) (domain.User, error) {
	const query = `SELECT id, name, email, account, created_at FROM users WHERE id = $1 FOR UPDATE`

	var u domain.User
	err := r.queryRow(ctx, query, userID).Scan(&u.ID, &u.Name, &u.Email, &u.Account, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows || isInvalidUUID(err) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user for update: %w", err)
	}
	return u, nil
}

func (r *BookingRepository) GetEvent(ctx context.Context, eventID string) (domain.Event, error) {
	const query = `SELECT id, title, starts_at, ticket_price, created_at FROM events WHERE id = $1`

	var e domain.Event
	err := r.queryRow(ctx, query, eventID).Scan(&e.ID, &e.Title, &e.StartsAt, &e.TicketPrice, &e.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows || isInvalidUUID(err) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (r *BookingRepository) SeatTaken(ctx context.Context, eventID string, place int, category domain.Category) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM tickets WHERE event_id = $1 AND place = $2 AND category = $3)`

	var taken bool
	if err := r.queryRow(ctx, query, eventID, place, category).Scan(&taken); err != nil {
		return false, fmt.Errorf("check seat: %w", err)
	}
	return taken, nil
}

func (r *BookingRepository) CreateTicket(ctx context.Context, ticket domain.Ticket) error {
	const stmt = `
INSERT INTO tickets (id, user_id, event_id, place, category, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.exec(ctx, stmt,
		ticket.ID,
		ticket.UserID,
		ticket.EventID,
		ticket.Place,
		ticket.Category,
		ticket.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSeatTaken
		}
		return fmt.Errorf("create ticket: %w", err)
	}
	return nil
}

// DebitUser subtracts amount from the user's account. The caller holds the
// row lock and has already verified the balance covers the amount; the
// CHECK constraint on the column is the backstop.
func (r *BookingRepository) DebitUser(ctx context.Context, userID string, amount decimal.Decimal) error {
	const stmt = `UPDATE users SET account = account - $2 WHERE id = $1`

	tag, err := r.exec(ctx, stmt, userID, amount)
	if err != nil {
		return fmt.Errorf("debit user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *BookingRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *BookingRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
