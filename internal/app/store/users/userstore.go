// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/stratafriends/internal/app/system/normalize"
	"github.com/dalemusser/stratafriends/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicate is returned when an insert or update violates the unique
// username or email index.
var ErrDuplicate = errors.New("a user with this username or email already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByIDs loads multiple users by their ObjectIDs. Missing ids are
// simply absent from the result; the caller decides whether an empty
// result is an error.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByUsername looks up a user by exact username.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"username": normalize.Username(username)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListAll returns all users sorted by username.
func (s *Store) ListAll(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.M{"username": 1})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user after normalizing fields. The caller is
// responsible for input validation and password hashing.
// Returns ErrDuplicate if the username or email is already taken.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.FirstName = normalize.Name(u.FirstName)
	u.LastName = normalize.Name(u.LastName)
	u.Username = normalize.Username(u.Username)
	u.Email = normalize.Email(u.Email)
	u.Phone = normalize.Phone(u.Phone)
	u.UF = normalize.UF(u.UF)

	// friends serializes as [] rather than null for brand-new users.
	if u.Friends == nil {
		u.Friends = []primitive.ObjectID{}
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, err
	}
	return u, nil
}

// UpdateInput holds the optional fields for updating a user.
// All fields are pointers - nil means "don't update this field".
type UpdateInput struct {
	FirstName              *string
	LastName               *string
	Username               *string
	Email                  *string
	Phone                  *string
	Age                    *int
	UF                     *string
	PasswordHash           *string
	ShareInfoWithFriends   *bool
	ShareInfoWithStrangers *bool
}

// UpdateFromInput updates a user using optional fields and returns the
// updated document. Only non-nil fields in input are updated.
// Returns mongo.ErrNoDocuments if the user does not exist and
// ErrDuplicate if the new username or email is already taken.
func (s *Store) UpdateFromInput(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.User, error) {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}

	if input.FirstName != nil {
		set["first_name"] = normalize.Name(*input.FirstName)
	}
	if input.LastName != nil {
		set["last_name"] = normalize.Name(*input.LastName)
	}
	if input.Username != nil {
		set["username"] = normalize.Username(*input.Username)
	}
	if input.Email != nil {
		set["email"] = normalize.Email(*input.Email)
	}
	if input.Phone != nil {
		set["phone"] = normalize.Phone(*input.Phone)
	}
	if input.Age != nil {
		set["age"] = *input.Age
	}
	if input.UF != nil {
		set["uf"] = normalize.UF(*input.UF)
	}
	if input.PasswordHash != nil {
		set["password_hash"] = *input.PasswordHash
	}
	if input.ShareInfoWithFriends != nil {
		set["share_info_with_friends"] = *input.ShareInfoWithFriends
	}
	if input.ShareInfoWithStrangers != nil {
		set["share_info_with_strangers"] = *input.ShareInfoWithStrangers
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&u); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes a user by ID and returns the deleted document.
// Returns mongo.ErrNoDocuments if the user does not exist.
//
// Deleting a user does NOT remove its id from other users' friends
// sets. Stale references are an accepted inconsistency of the current
// data model; listing resolves friends through GetByIDs, which drops
// ids that no longer exist.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// AddFriendID adds friendID to the user's friends set and returns the
// updated document. $addToSet makes the operation idempotent: adding an
// id that is already present is a no-op, not an error. Returns
// mongo.ErrNoDocuments if the user does not exist; this is the
// updated-doc-or-null primitive the friendship manager builds on.
func (s *Store) AddFriendID(ctx context.Context, id, friendID primitive.ObjectID) (*models.User, error) {
	update := bson.M{
		"$addToSet": bson.M{"friends": friendID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UsernameExists checks if a user with the given username exists.
func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"username": normalize.Username(username)})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
