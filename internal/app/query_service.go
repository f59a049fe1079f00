package app

import (
	"context"

	"github.com/cimillas/ticket-booking/internal/domain"
)

// PageRequest selects a bounded slice of an ordered result set. Num is
// 1-indexed for callers.
type PageRequest struct {
	Size int
	Num  int
}

func (p PageRequest) validate() error {
	if p.Size <= 0 || p.Num <= 0 {
		return domain.ErrInvalidPageRequest
	}
	return nil
}

func (p PageRequest) offset() int {
	return (p.Num - 1) * p.Size
}

// QueryService serves the paged ticket listings. Unlike the other services
// it performs no writes.
type QueryService struct {
	repo TicketRepository
}

func NewQueryService(repo TicketRepository) *QueryService {
	return &QueryService{repo: repo}
}

// TicketsByUser returns one page of the user's booked tickets, ordered by
// booking time. An unknown user yields an empty page, not an error; a
// store failure is returned as an error so callers can tell "no tickets"
// from "query failed".
func (s *QueryService) TicketsByUser(ctx context.Context, userID string, page PageRequest) ([]domain.Ticket, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	return s.repo.PageTicketsByUser(ctx, userID, page.Size, page.offset())
}

// TicketsByEvent is TicketsByUser keyed by event.
func (s *QueryService) TicketsByEvent(ctx context.Context, eventID string, page PageRequest) ([]domain.Ticket, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	return s.repo.PageTicketsByEvent(ctx, eventID, page.Size, page.offset())
}
