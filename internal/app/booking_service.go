package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cimillas/ticket-booking/internal/clock"
	"github.com/cimillas/ticket-booking/internal/domain"
)

// BookingRepository is the store surface the booking transaction needs.
// All methods called inside the WithTx callback run in one transaction.
type BookingRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetUserForUpdate(ctx context.Context, userID string) (domain.User, error)
	GetEvent(ctx context.Context, eventID string) (domain.Event, error)
	SeatTaken(ctx context.Context, eventID string, place int, category domain.Category) (bool, error)
	CreateTicket(ctx context.Context, ticket domain.Ticket) error
	DebitUser(ctx context.Context, userID string, amount decimal.Decimal) error
}

// BookingService runs the booking transaction: validate the request, check
// seat availability and funds, debit the buyer, and create the ticket, all
// as one atomic unit. On any failure nothing is persisted.
type BookingService struct {
	repo  BookingRepository
	clock clock.Clock
	log   logrus.FieldLogger
}

func NewBookingService(repo BookingRepository, clk clock.Clock, log logrus.FieldLogger) *BookingService {
	return &BookingService{
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

type BookTicketInput struct {
	UserID   string
	EventID  string
	Place    int
	Category domain.Category
}

// BookTicket books a seat for a user and debits the event's ticket price
// from the user's account.
//
// Preconditions are checked in order: user exists, event exists, seat is
// free, funds are sufficient. Each failure is a distinct sentinel error and
// leaves no state behind. The seat pre-check is advisory; the unique
// constraint on (event_id, place, category) is the authority, so a racing
// second booking surfaces as ErrSeatTaken rather than a duplicate. The user
// row is locked for the duration of the transaction, making the funds check
// and the debit atomic per user.
//
// Store failures after the preconditions pass roll the transaction back and
// are reported as ErrTransactionFailed. No retry is attempted here.
func (s *BookingService) BookTicket(ctx context.Context, in BookTicketInput) (domain.Ticket, error) {
	if in.Place <= 0 {
		return domain.Ticket{}, domain.ErrInvalidPlace
	}
	if _, err := domain.ParseCategory(string(in.Category)); err != nil {
		return domain.Ticket{}, err
	}

	log := s.log.WithFields(logrus.Fields{
		"user_id":  in.UserID,
		"event_id": in.EventID,
		"place":    in.Place,
		"category": in.Category,
	})
	log.Info("booking ticket")

	now := s.clock.Now()
	var result domain.Ticket

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		user, err := s.repo.GetUserForUpdate(txCtx, in.UserID)
		if err != nil {
			return err
		}
		event, err := s.repo.GetEvent(txCtx, in.EventID)
		if err != nil {
			return err
		}

		taken, err := s.repo.SeatTaken(txCtx, in.EventID, in.Place, in.Category)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrSeatTaken
		}

		if user.Account.LessThan(event.TicketPrice) {
			return domain.ErrInsufficientFunds
		}

		ticket := domain.Ticket{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			EventID:   event.ID,
			Place:     in.Place,
			Category:  in.Category,
			CreatedAt: now,
		}
		if err := s.repo.CreateTicket(txCtx, ticket); err != nil {
			return err
		}
		if err := s.repo.DebitUser(txCtx, user.ID, event.TicketPrice); err != nil {
			return err
		}

		result = ticket
		return nil
	})
	if err != nil {
		if !isBookingReject(err) {
			err = fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
		}
		log.WithError(err).Warn("booking rejected")
		return domain.Ticket{}, err
	}

	log.WithField("ticket_id", result.ID).Info("ticket booked")
	return result, nil
}

// isBookingReject reports whether err is one of the precondition sentinels,
// as opposed to a store-level failure.
func isBookingReject(err error) bool {
	return errors.Is(err, domain.ErrUserNotFound) ||
		errors.Is(err, domain.ErrEventNotFound) ||
		errors.Is(err, domain.ErrSeatTaken) ||
		errors.Is(err, domain.ErrInsufficientFunds)
}
