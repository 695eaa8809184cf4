package userstore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dalemusser/stratafriends/internal/domain/models"
	"github.com/dalemusser/stratafriends/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// testUser returns a valid user document with a unique username/email
// derived from n.
func testUser(n int) models.User {
	return models.User{
		FirstName:            "Ana",
		LastName:             "Silva",
		Username:             fmt.Sprintf("user%d", n),
		Email:                fmt.Sprintf("user%d@example.com", n),
		Phone:                "11987654321",
		Age:                  30,
		UF:                   "SP",
		PasswordHash:         "$2a$12$abcdefghijklmnopqrstuv",
		ShareInfoWithFriends: true,
	}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	in := testUser(1)
	in.Email = "  User1@Example.COM "
	in.Phone = "(11) 98765-4321"
	in.UF = "sp"

	created, err := store.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.ID.IsZero() {
		t.Error("Create() did not assign ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Create() did not set timestamps")
	}

	// Normalization
	if created.Email != "user1@example.com" {
		t.Errorf("Create() Email = %q, want %q", created.Email, "user1@example.com")
	}
	if created.Phone != "11987654321" {
		t.Errorf("Create() Phone = %q, want %q", created.Phone, "11987654321")
	}
	if created.UF != "SP" {
		t.Errorf("Create() UF = %q, want %q", created.UF, "SP")
	}

	// New users start with an empty (non-nil) friends set.
	if created.Friends == nil {
		t.Error("Create() Friends is nil, want empty slice")
	}
	if len(created.Friends) != 0 {
		t.Errorf("Create() len(Friends) = %d, want 0", len(created.Friends))
	}
}

func TestStore_Create_DuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, testUser(1)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	dup := testUser(1)
	dup.Email = "different@example.com"
	if _, err := store.Create(ctx, dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Create() with duplicate username error = %v, want ErrDuplicate", err)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, testUser(1)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	dup := testUser(1)
	dup.Username = "differentuser"
	if _, err := store.Create(ctx, dup); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Create() with duplicate email error = %v, want ErrDuplicate", err)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetByID() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_GetByIDs_Partial(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, err := store.Create(ctx, testUser(1))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b, err := store.Create(ctx, testUser(2))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// A missing id is simply absent from the result.
	users, err := store.GetByIDs(ctx, []primitive.ObjectID{a.ID, primitive.NewObjectID(), b.ID})
	if err != nil {
		t.Fatalf("GetByIDs() error = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("GetByIDs() returned %d users, want 2", len(users))
	}
}

func TestStore_GetByIDs_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	users, err := store.GetByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("GetByIDs() error = %v", err)
	}
	if users != nil {
		t.Errorf("GetByIDs() with no ids = %v, want nil", users)
	}
}

func TestStore_GetByUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, testUser(1))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := store.GetByUsername(ctx, "user1")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("GetByUsername() ID = %v, want %v", found.ID, created.ID)
	}

	if _, err := store.GetByUsername(ctx, "nosuchuser"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetByUsername() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_ListAll_SortedByUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b := testUser(1)
	b.Username = "bruno"
	a := testUser(2)
	a.Username = "alice"

	for _, u := range []models.User{b, a} {
		if _, err := store.Create(ctx, u); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	users, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("ListAll() returned %d users, want 2", len(users))
	}
	if users[0].Username != "alice" || users[1].Username != "bruno" {
		t.Errorf("ListAll() order = [%q, %q], want [alice, bruno]", users[0].Username, users[1].Username)
	}
}

func TestStore_UpdateFromInput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, testUser(1))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	newFirst := "Beatriz"
	newAge := 31
	updated, err := store.UpdateFromInput(ctx, created.ID, UpdateInput{
		FirstName: &newFirst,
		Age:       &newAge,
	})
	if err != nil {
		t.Fatalf("UpdateFromInput() error = %v", err)
	}

	if updated.FirstName != "Beatriz" {
		t.Errorf("UpdateFromInput() FirstName = %q, want %q", updated.FirstName, "Beatriz")
	}
	if updated.Age != 31 {
		t.Errorf("UpdateFromInput() Age = %d, want 31", updated.Age)
	}
	// Untouched fields survive.
	if updated.Username != created.Username {
		t.Errorf("UpdateFromInput() Username = %q, want %q", updated.Username, created.Username)
	}
}

func TestStore_UpdateFromInput_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	name := "Nobody"
	_, err := store.UpdateFromInput(ctx, primitive.NewObjectID(), UpdateInput{FirstName: &name})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("UpdateFromInput() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_UpdateFromInput_DuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, testUser(1)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b, err := store.Create(ctx, testUser(2))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	taken := "user1"
	_, err = store.UpdateFromInput(ctx, b.ID, UpdateInput{Username: &taken})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("UpdateFromInput() error = %v, want ErrDuplicate", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, testUser(1))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleted, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.ID != created.ID {
		t.Errorf("Delete() returned ID %v, want %v", deleted.ID, created.ID)
	}

	if _, err := store.GetByID(ctx, created.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetByID() after delete error = %v, want mongo.ErrNoDocuments", err)
	}

	if _, err := store.Delete(ctx, created.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Delete() twice error = %v, want mongo.ErrNoDocuments", err)
	}
}

// Deleting a user leaves its id behind in other users' friends sets.
// This documents the current behavior so a future cascade is a
// deliberate change, not an accident.
func TestStore_Delete_LeavesFriendReferences(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, err := store.Create(ctx, testUser(1))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b, err := store.Create(ctx, testUser(2))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := store.AddFriendID(ctx, a.ID, b.ID); err != nil {
		t.Fatalf("AddFriendID() error = %v", err)
	}
	if _, err := store.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, err := store.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.HasFriend(b.ID) {
		t.Error("deleting a user unexpectedly removed its id from the other user's friends set")
	}
}

func TestStore_AddFriendID_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, err := store.Create(ctx, testUser(1))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b, err := store.Create(ctx, testUser(2))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	first, err := store.AddFriendID(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatalf("AddFriendID() error = %v", err)
	}
	if len(first.Friends) != 1 {
		t.Fatalf("AddFriendID() len(Friends) = %d, want 1", len(first.Friends))
	}

	// Adding the same id again is a no-op, not an error.
	second, err := store.AddFriendID(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatalf("AddFriendID() repeat error = %v", err)
	}
	if len(second.Friends) != 1 {
		t.Errorf("AddFriendID() repeat len(Friends) = %d, want 1", len(second.Friends))
	}
}

func TestStore_AddFriendID_MissingUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.AddFriendID(ctx, primitive.NewObjectID(), primitive.NewObjectID())
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("AddFriendID() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_UsernameExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, testUser(1)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err := store.UsernameExists(ctx, "user1")
	if err != nil {
		t.Fatalf("UsernameExists() error = %v", err)
	}
	if !exists {
		t.Error("UsernameExists() = false, want true")
	}

	exists, err = store.UsernameExists(ctx, "ghost")
	if err != nil {
		t.Fatalf("UsernameExists() error = %v", err)
	}
	if exists {
		t.Error("UsernameExists() = true, want false")
	}
}
