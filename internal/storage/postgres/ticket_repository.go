package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cimillas/ticket-booking/internal/domain"
)

// TicketRepository serves cancellation and the paged ticket listings.
type TicketRepository struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool}
}

// DeleteTicket removes the ticket row and reports whether one existed. A
// malformed id is treated as "no such ticket" rather than an error.
func (r *TicketRepository) DeleteTicket(ctx context.Context, ticketID string) (bool, error) {
	const stmt = `DELETE FROM tickets WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, ticketID)
	if err != nil {
		if isInvalidUUID(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete ticket: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TicketRepository) PageTicketsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Ticket, error) {
	const query = `
SELECT id, user_id, event_id, place, category, created_at
FROM tickets
WHERE user_id = $1
ORDER BY created_at, id
LIMIT $2 OFFSET $3`

	return r.pageTickets(ctx, query, userID, limit, offset)
}

func (r *TicketRepository) PageTicketsByEvent(ctx context.Context, eventID string, limit, offset int) ([]domain.Ticket, error) {
	const query = `
SELECT id, user_id, event_id, place, category, created_at
FROM tickets
WHERE event_id = $1
ORDER BY created_at, id
LIMIT $2 OFFSET $3`

	return r.pageTickets(ctx, query, eventID, limit, offset)
}

func (r *TicketRepository) pageTickets(ctx context.Context, query, keyID string, limit, offset int) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, query, keyID, limit, offset)
	if err != nil {
		if isInvalidUUID(err) {
			return []domain.Ticket{}, nil
		}
		return nil, fmt.Errorf("page tickets: %w", err)
	}
	defer rows.Close()

	tickets := []domain.Ticket{}
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.UserID, &t.EventID, &t.Place, &t.Category, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	if rows.Err() != nil {
		if isInvalidUUID(rows.Err()) {
			return []domain.Ticket{}, nil
		}
		return nil, fmt.Errorf("iterate tickets: %w", rows.Err())
	}
	return tickets, nil
}
