package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cimillas/ticket-booking/internal/domain"
)

// TicketRepository serves cancellation and the paged ticket queries.
type TicketRepository interface {
	DeleteTicket(ctx context.Context, ticketID string) (bool, error)
	PageTicketsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Ticket, error)
	PageTicketsByEvent(ctx context.Context, eventID string, limit, offset int) ([]domain.Ticket, error)
}

// CancellationService removes booked tickets.
type CancellationService struct {
	repo TicketRepository
	log  logrus.FieldLogger
}

func NewCancellationService(repo TicketRepository, log logrus.FieldLogger) *CancellationService {
	return &CancellationService{
		repo: repo,
		log:  log,
	}
}

// CancelTicket deletes the ticket record and reports whether a record was
// removed. Every failure mode, including an unknown id and store errors,
// collapses to false; the cause is logged here since callers never see it.
//
// Cancellation does not refund the buyer's debit. The delete itself unlinks
// the ticket from the user's and event's ticket lists, since both lists are
// reads over the tickets relation.
func (s *CancellationService) CancelTicket(ctx context.Context, ticketID string) bool {
	log := s.log.WithField("ticket_id", ticketID)

	deleted, err := s.repo.DeleteTicket(ctx, ticketID)
	if err != nil {
		log.WithError(err).Warn("cancel ticket failed")
		return false
	}
	if !deleted {
		log.Warn("cancel ticket: no such ticket")
		return false
	}

	log.Info("ticket cancelled")
	return true
}
