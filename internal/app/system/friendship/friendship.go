// Package friendship owns the rule that friendship is a symmetric,
// deduplicated relation between two user documents.
//
// Each side of the relation lives in its own document's friends set.
// AddSymmetric issues the two add-to-set updates concurrently and waits
// for both to settle (fan-out/fan-in); it is NOT a transaction. The
// document store guarantees per-document atomicity only, so there is an
// inherent window where one side is applied and the other fails (store
// unavailable, user deleted in between). Because both updates are
// idempotent, the client is expected to retry the whole operation; a
// replay converges without creating duplicates. Whether a background
// reconciliation job should repair half-applied pairs is an open
// follow-up; none exists today.
package friendship

import (
	"context"
	"errors"

	userstore "github.com/dalemusser/stratafriends/internal/app/store/users"
	"github.com/dalemusser/stratafriends/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrSelfFriend is returned when a user tries to befriend themselves.
	// Checked before any store call is made.
	ErrSelfFriend = errors.New("cannot add yourself as a friend")

	// ErrUserNotFound is returned when the requesting user's document is missing.
	ErrUserNotFound = errors.New("user not found")

	// ErrFriendNotFound is returned when the friend's document is missing.
	ErrFriendNotFound = errors.New("friend not found")
)

// Manager coordinates friend-relation updates over the users store.
type Manager struct {
	users  *userstore.Store
	logger *zap.Logger
}

// New creates a friendship Manager backed by the given users store.
func New(users *userstore.Store, logger *zap.Logger) *Manager {
	return &Manager{users: users, logger: logger}
}

// AddSymmetric adds each user to the other's friends set and returns
// the updated requesting-user document.
//
// Both updates run concurrently and both are waited on, even if one
// fails; a plain errgroup (no shared cancellation) is used on purpose
// so a failing side never aborts the other mid-flight. If either
// document is missing the operation reports ErrUserNotFound or
// ErrFriendNotFound, and the surviving side's update may already be
// applied. That partial state is visible (the existing user's set can
// hold the id of a user that was never updated) and is accepted; see
// the package comment.
func (m *Manager) AddSymmetric(ctx context.Context, userID, friendID primitive.ObjectID) (*models.User, error) {
	if userID == friendID {
		return nil, ErrSelfFriend
	}

	var (
		g    errgroup.Group
		user *models.User
	)
	g.Go(func() error {
		u, err := m.users.AddFriendID(ctx, userID, friendID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrUserNotFound
			}
			return err
		}
		user = u
		return nil
	})
	g.Go(func() error {
		if _, err := m.users.AddFriendID(ctx, friendID, userID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrFriendNotFound
			}
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		m.logger.Warn("symmetric friend add incomplete",
			zap.String("user_id", userID.Hex()),
			zap.String("friend_id", friendID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}

	m.logger.Debug("friend added",
		zap.String("user_id", userID.Hex()),
		zap.String("friend_id", friendID.Hex()),
	)
	return user, nil
}

// Friends resolves the user's friends set into full user documents.
// Returns ErrUserNotFound if the base user does not exist, and an empty
// slice (not an error) when the friends set is empty. Ids that no
// longer resolve to a document - stale references left behind by
// deletes - are silently dropped from the result.
func (m *Manager) Friends(ctx context.Context, userID primitive.ObjectID) ([]models.User, error) {
	u, err := m.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if len(u.Friends) == 0 {
		return []models.User{}, nil
	}

	friends, err := m.users.GetByIDs(ctx, u.Friends)
	if err != nil {
		return nil, err
	}
	if friends == nil {
		friends = []models.User{}
	}
	return friends, nil
}
