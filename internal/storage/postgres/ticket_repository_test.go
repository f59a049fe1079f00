package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cimillas/ticket-booking/internal/domain"
	"github.com/cimillas/ticket-booking/internal/storage/postgres"
	"github.com/cimillas/ticket-booking/internal/testutil"
)

func TestTicketRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := postgres.NewTicketRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	seed := func(ctx context.Context) (userID, eventID string, ticketIDs []string) {
		t.Helper()
		testutil.TruncateAll(t, ctx, pool)
		userID = testutil.InsertUser(t, ctx, pool, "Ann", "ann@example.com", decimal.RequireFromString("100"))
		eventID = testutil.InsertEvent(t, ctx, pool, "Concert", decimal.RequireFromString("60"))
		for place := 1; place <= 3; place++ {
			ticketIDs = append(ticketIDs, testutil.InsertTicket(t, ctx, pool, userID, eventID, place, domain.CategoryEconomy))
		}
		return
	}

	t.Run("DeleteTicket removes the row once", func(t *testing.T) {
		ctx := context.Background()
		_, _, ticketIDs := seed(ctx)

		deleted, err := repo.DeleteTicket(ctx, ticketIDs[0])
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !deleted {
			t.Fatalf("expected delete to report a removed row")
		}

		deleted, err = repo.DeleteTicket(ctx, ticketIDs[0])
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if deleted {
			t.Fatalf("expected second delete to report nothing removed")
		}

		deleted, err = repo.DeleteTicket(ctx, uuid.NewString())
		if err != nil || deleted {
			t.Fatalf("unknown id: expected (false, nil), got (%v, %v)", deleted, err)
		}

		deleted, err = repo.DeleteTicket(ctx, "not-a-uuid")
		if err != nil || deleted {
			t.Fatalf("malformed id: expected (false, nil), got (%v, %v)", deleted, err)
		}
	})

	t.Run("PageTicketsByUser orders by booking time and bounds the slice", func(t *testing.T) {
		ctx := context.Background()
		userID, _, ticketIDs := seed(ctx)

		page, err := repo.PageTicketsByUser(ctx, userID, 2, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(page) != 2 || page[0].ID != ticketIDs[0] || page[1].ID != ticketIDs[1] {
			t.Fatalf("unexpected page: %+v", page)
		}

		page, err = repo.PageTicketsByUser(ctx, userID, 2, 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(page) != 1 || page[0].ID != ticketIDs[2] {
			t.Fatalf("unexpected page: %+v", page)
		}
	})

	t.Run("unknown and malformed user ids yield empty pages", func(t *testing.T) {
		ctx := context.Background()
		seed(ctx)

		page, err := repo.PageTicketsByUser(ctx, uuid.NewString(), 10, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(page) != 0 {
			t.Fatalf("expected empty page, got %+v", page)
		}

		page, err = repo.PageTicketsByUser(ctx, "not-a-uuid", 10, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(page) != 0 {
			t.Fatalf("expected empty page, got %+v", page)
		}
	})

	t.Run("PageTicketsByEvent keys by event", func(t *testing.T) {
		ctx := context.Background()
		userID, eventID, ticketIDs := seed(ctx)

		otherEvent := testutil.InsertEvent(t, ctx, pool, "Other", decimal.RequireFromString("10"))
		testutil.InsertTicket(t, ctx, pool, userID, otherEvent, 1, domain.CategoryBar)

		page, err := repo.PageTicketsByEvent(ctx, eventID, 10, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(page) != len(ticketIDs) {
			t.Fatalf("expected %d tickets, got %d", len(ticketIDs), len(page))
		}
		for _, ticket := range page {
			if ticket.EventID != eventID {
				t.Fatalf("ticket from wrong event: %+v", ticket)
			}
		}
	})
}
