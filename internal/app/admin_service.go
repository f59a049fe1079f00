package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cimillas/ticket-booking/internal/clock"
	"github.com/cimillas/ticket-booking/internal/domain"
)

// AdminRepository is the store surface for user and event provisioning.
type AdminRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUser(ctx context.Context, userID string) (domain.User, error)
	CreateEvent(ctx context.Context, event domain.Event) error
	GetEventByID(ctx context.Context, eventID string) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

// AdminService provisions the users and events the booking engine operates
// on. Pricing and account funding happen here, never during booking.
type AdminService struct {
	repo  AdminRepository
	clock clock.Clock
}

func NewAdminService(repo AdminRepository, clk clock.Clock) *AdminService {
	return &AdminService{
		repo:  repo,
		clock: clk,
	}
}

type CreateUserInput struct {
	Name    string
	Email   string
	Account decimal.Decimal
}

func (s *AdminService) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Name == "" {
		return domain.User{}, domain.ErrNameRequired
	}
	if in.Email == "" {
		return domain.User{}, domain.ErrEmailRequired
	}
	if in.Account.IsNegative() {
		return domain.User{}, domain.ErrNegativeAccount
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Account:   in.Account,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetUser returns the user together with the ids of the tickets they own.
func (s *AdminService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	return s.repo.GetUser(ctx, userID)
}

type CreateEventInput struct {
	Title       string
	StartsAt    *time.Time
	TicketPrice decimal.Decimal
}

func (s *AdminService) CreateEvent(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return domain.Event{}, domain.ErrTitleRequired
	}
	if in.TicketPrice.IsNegative() {
		return domain.Event{}, domain.ErrNegativePrice
	}

	startsAt := s.clock.Now()
	if in.StartsAt != nil {
		startsAt = in.StartsAt.UTC()
	}

	event := domain.Event{
		ID:          uuid.NewString(),
		Title:       in.Title,
		StartsAt:    startsAt,
		TicketPrice: in.TicketPrice,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *AdminService) GetEvent(ctx context.Context, eventID string) (domain.Event, error) {
	return s.repo.GetEventByID(ctx, eventID)
}

func (s *AdminService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.repo.ListEvents(ctx)
}
