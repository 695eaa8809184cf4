// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"
	"errors"

	userstore "github.com/dalemusser/stratafriends/internal/app/store/users"
	"github.com/dalemusser/stratafriends/internal/app/system/authutil"
	"github.com/dalemusser/stratafriends/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedUser describes the demo user that can be created at startup.
// Early client builds hardcoded a current-user id; seeding a known user
// by configuration replaces that with something an operator controls.
type SeedUser struct {
	Username string
	Email    string
	Name     string
	Password string
}

// EnsureDemoUser creates the configured demo user if no user with that
// username exists. It is a no-op when cfg.Username is empty.
func EnsureDemoUser(ctx context.Context, db *mongo.Database, cfg SeedUser, logger *zap.Logger) error {
	if cfg.Username == "" {
		return nil
	}

	store := userstore.New(db)

	if _, err := store.GetByUsername(ctx, cfg.Username); err == nil {
		logger.Debug("demo user already present", zap.String("username", cfg.Username))
		return nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	name := cfg.Name
	if name == "" {
		name = "Demo"
	}
	email := cfg.Email
	if email == "" {
		email = cfg.Username + "@example.com"
	}
	password := cfg.Password
	if password == "" {
		password = "changeme"
	}
	hash, err := authutil.HashPassword(password)
	if err != nil {
		return err
	}

	created, err := store.Create(ctx, models.User{
		FirstName:            name,
		LastName:             "User",
		Username:             cfg.Username,
		Email:                email,
		Phone:                "0000000000",
		Age:                  0,
		UF:                   "SP",
		PasswordHash:         hash,
		ShareInfoWithFriends: true,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicate) {
			// Raced with another instance seeding the same user.
			return nil
		}
		return err
	}

	logger.Info("created demo user",
		zap.String("username", created.Username),
		zap.String("user_id", created.ID.Hex()))
	return nil
}
