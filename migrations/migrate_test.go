package migrations_test

import (
	"context"
	"testing"

	"github.com/cimillas/ticket-booking/internal/testutil"
	"github.com/cimillas/ticket-booking/migrations"
)

func TestApplyIsIdempotent(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()

	if err := migrations.Apply(ctx, pool); err != nil {
		t.Fatalf("first apply: %v", err)
	}

	var applied int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied < 3 {
		t.Fatalf("expected at least 3 applied migrations, got %d", applied)
	}

	if err := migrations.Apply(ctx, pool); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	var after int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&after); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if after != applied {
		t.Fatalf("expected count unchanged at %d, got %d", applied, after)
	}

	for _, table := range []string{"users", "events", "tickets"} {
		var exists bool
		if err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
			table).Scan(&exists); err != nil {
			t.Fatalf("check table %s: %v", table, err)
		}
		if !exists {
			t.Fatalf("expected table %s to exist", table)
		}
	}
}
