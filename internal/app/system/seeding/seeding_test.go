package seeding

import (
	"testing"

	userstore "github.com/dalemusser/stratafriends/internal/app/store/users"
	"github.com/dalemusser/stratafriends/internal/app/system/authutil"
	"github.com/dalemusser/stratafriends/internal/testutil"
	"go.uber.org/zap"
)

func TestEnsureDemoUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := SeedUser{Username: "demo", Password: "sup3rsecret"}
	if err := EnsureDemoUser(ctx, db, cfg, zap.NewNop()); err != nil {
		t.Fatalf("EnsureDemoUser() error = %v", err)
	}

	store := userstore.New(db)
	u, err := store.GetByUsername(ctx, "demo")
	if err != nil {
		t.Fatalf("seeded user not found: %v", err)
	}
	if u.Email != "demo@example.com" {
		t.Errorf("email = %q, want demo@example.com", u.Email)
	}
	if !authutil.CheckPassword("sup3rsecret", u.PasswordHash) {
		t.Error("seeded password hash does not verify")
	}
}

func TestEnsureDemoUser_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := SeedUser{Username: "demo"}
	for i := 0; i < 2; i++ {
		if err := EnsureDemoUser(ctx, db, cfg, zap.NewNop()); err != nil {
			t.Fatalf("EnsureDemoUser() run %d error = %v", i, err)
		}
	}

	store := userstore.New(db)
	users, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(users) != 1 {
		t.Errorf("seeded %d users, want 1", len(users))
	}
}

func TestEnsureDemoUser_NoopWithoutUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := EnsureDemoUser(ctx, db, SeedUser{}, zap.NewNop()); err != nil {
		t.Fatalf("EnsureDemoUser() error = %v", err)
	}

	store := userstore.New(db)
	users, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(users) != 0 {
		t.Errorf("noop seeding created %d users", len(users))
	}
}
