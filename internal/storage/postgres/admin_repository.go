package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cimillas/ticket-booking/internal/domain"
)

// AdminRepository persists users and events.
type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) CreateUser(ctx context.Context, user domain.User) error {
	const stmt = `
INSERT INTO users (id, name, email, account, created_at)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, stmt, user.ID, user.Name, user.Email, user.Account, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUser returns the user and the ids of the tickets they own, looked up
// from the tickets relation.
func (r *AdminRepository) GetUser(ctx context.Context, userID string) (domain.User, error) {
	const query = `SELECT id, name, email, account, created_at FROM users WHERE id = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, userID).Scan(&u.ID, &u.Name, &u.Email, &u.Account, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows || isInvalidUUID(err) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	const ticketsQuery = `SELECT id FROM tickets WHERE user_id = $1 ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, ticketsQuery, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("list user tickets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return domain.User{}, fmt.Errorf("scan ticket id: %w", err)
		}
		u.Tickets = append(u.Tickets, id)
	}
	if rows.Err() != nil {
		return domain.User{}, fmt.Errorf("iterate ticket ids: %w", rows.Err())
	}
	return u, nil
}

func (r *AdminRepository) CreateEvent(ctx context.Context, event domain.Event) error {
	const stmt = `
INSERT INTO events (id, title, starts_at, ticket_price, created_at)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, stmt, event.ID, event.Title, event.StartsAt, event.TicketPrice, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *AdminRepository) GetEventByID(ctx context.Context, eventID string) (domain.Event, error) {
	const query = `SELECT id, title, starts_at, ticket_price, created_at FROM events WHERE id = $1`

	var e domain.Event
	err := r.pool.QueryRow(ctx, query, eventID).Scan(&e.ID, &e.Title, &e.StartsAt, &e.TicketPrice, &e.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows || isInvalidUUID(err) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (r *AdminRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	const query = `SELECT id, title, starts_at, ticket_price, created_at FROM events ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.StartsAt, &e.TicketPrice, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate events: %w", rows.Err())
	}
	return events, nil
}
