// Package usersapi provides the users directory REST endpoints.
//
// Endpoints (mounted at /users):
//   - POST   /                    - create a user
//   - GET    /                    - list all users
//   - GET    /{id}                - fetch one user by id
//   - POST   /batch               - fetch many users by id
//   - GET    /username/{username} - fetch one user by username
//   - PUT    /{id}                - partial update
//   - DELETE /{id}                - delete (returns the deleted user)
//   - GET    /{id}/friends        - resolve the user's friends to documents
//   - POST   /{id}/add-friend     - symmetric friend add
//
// Every error response uses {"status":"error","message":...} via the
// apierr boundary. Success bodies are plain user documents (password
// hash excluded, _id exposed as id).
package usersapi

import (
	"errors"
	"net/http"

	userstore "github.com/dalemusser/stratafriends/internal/app/store/users"
	"github.com/dalemusser/stratafriends/internal/app/system/apierr"
	"github.com/dalemusser/stratafriends/internal/app/system/authutil"
	"github.com/dalemusser/stratafriends/internal/app/system/friendship"
	"github.com/dalemusser/stratafriends/internal/app/system/jsonutil"
	"github.com/dalemusser/stratafriends/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler handles users directory API requests.
type Handler struct {
	store   *userstore.Store
	friends *friendship.Manager
	logger  *zap.Logger
}

// NewHandler creates a new usersapi handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	store := userstore.New(db)
	return &Handler{
		store:   store,
		friends: friendship.New(store, logger),
		logger:  logger,
	}
}

// pathID parses the {id} route param as an ObjectID.
func pathID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apierr.BadRequest("Invalid ID format")
	}
	return id, nil
}

// Create handles POST /users.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateUserInput
	if err := jsonutil.Decode(r, &in); err != nil {
		apierr.Write(w, h.logger, apierr.BadRequest("Invalid JSON payload"))
		return
	}

	if result := in.validate(); result.HasErrors() {
		apierr.Write(w, h.logger, apierr.Validation(result.All()))
		return
	}

	hash, err := authutil.HashPassword(in.Password)
	if err != nil {
		apierr.Write(w, h.logger, err)
		return
	}

	user, err := h.store.Create(r.Context(), models.User{
		FirstName:              in.FirstName,
		LastName:               in.LastName,
		Username:               in.Username,
		Email:                  in.Email,
		Phone:                  in.Phone,
		Age:                    in.Age,
		UF:                     in.UF,
		PasswordHash:           hash,
		ShareInfoWithFriends:   boolOrDefault(in.ShareInfoWithFriends, true),
		ShareInfoWithStrangers: boolOrDefault(in.ShareInfoWithStrangers, false),
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicate) {
			apierr.Write(w, h.logger, apierr.Validation("username or email already in use"))
			return
		}
		apierr.Write(w, h.logger, err)
		return
	}

	h.logger.Debug("user created",
		zap.String("user_id", user.ID.Hex()),
		zap.String("username", user.Username),
	)
	jsonutil.Created(w, user)
}

// List handles GET /users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListAll(r.Context())
	if err != nil {
		apierr.Write(w, h.logger, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	jsonutil.OK(w, users)
}

// GetByID handles GET /users/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierr.Write(w, h.logger, err)
		return
	}

	user, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.Write(w, h.logger, apierr.NotFound("User not found"))
			return
		}
		apierr.Write(w, h.logger, err)
		return
	}
	jsonutil.OK(w, user)
}

// GetBatch handles POST /users/batch. Only found documents are
// returned; a missing id is not an error unless nothing was found.
func (h *Handler) GetBatch(w http.ResponseWriter, r *http.Request) {
	var in BatchInput
	if err := jsonutil.Decode(r, &in); err != nil {
		apierr.Write(w, h.logger, apierr.BadRequest("Invalid JSON payload"))
		return
	}
	if len(in.IDs) == 0 {
		apierr.Write(w, h.logger, apierr.BadRequest("IDs array is required"))
		return
	}

	ids := make([]primitive.ObjectID, 0, len(in.IDs))
	for _, raw := range in.IDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			apierr.Write(w, h.logger, apierr.BadRequest("Invalid ID format"))
			return
		}
		ids = append(ids, id)
	}

	users, err := h.store.GetByIDs(r.Context(), ids)
	if err != nil {
		apierr.Write(w, h.logger, err)
		return
	}
	if len(users) == 0 {
		apierr.Write(w, h.logger, apierr.NotFound("No users found"))
		return
	}
	jsonutil.OK(w, users)
}

// GetByUsername handles GET /users/username/{username}.
func (h *Handler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.Write(w, h.logger, apierr.NotFound("User not found"))
			return
		}
		apierr.Write(w, h.logger, err)
		return
	}
	jsonutil.OK(w, user)
}

// Update handles PUT /users/{id}. Only provided fields change.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierr.Write(w, h.logger, err)
		return
	}

	var in UpdateUserInput
	if err := jsonutil.Decode(r, &in); err != nil {
		apierr.Write(w, h.logger, apierr.BadRequest("Invalid JSON payload"))
		return
	}

	if result := in.validate(); result.HasErrors() {
		apierr.Write(w, h.logger, apierr.Validation(result.All()))
		return
	}

	upd := userstore.UpdateInput{
		FirstName:              in.FirstName,
		LastName:               in.LastName,
		Username:               in.Username,
		Email:                  in.Email,
		Phone:                  in.Phone,
		Age:                    in.Age,
		UF:                     in.UF,
		ShareInfoWithFriends:   in.ShareInfoWithFriends,
		ShareInfoWithStrangers: in.ShareInfoWithStrangers,
	}
	if in.Password != nil {
		hash, err := authutil.HashPassword(*in.Password)
		if err != nil {
			apierr.Write(w, h.logger, err)
			return
		}
		upd.PasswordHash = &hash
	}

	user, err := h.store.UpdateFromInput(r.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			apierr.Write(w, h.logger, apierr.NotFound("User not found"))
		case errors.Is(err, userstore.ErrDuplicate):
			apierr.Write(w, h.logger, apierr.Validation("username or email already in use"))
		default:
			apierr.Write(w, h.logger, err)
		}
		return
	}
	jsonutil.OK(w, user)
}

// Delete handles DELETE /users/{id} and echoes the deleted user.
//
// The deleted id is intentionally left in other users' friends sets;
// see the friendship package for how stale references are handled.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierr.Write(w, h.logger, err)
		return
	}

	user, err := h.store.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierr.Write(w, h.logger, apierr.NotFound("User not found"))
			return
		}
		apierr.Write(w, h.logger, err)
		return
	}

	h.logger.Debug("user deleted", zap.String("user_id", id.Hex()))
	jsonutil.OK(w, user)
}

// ListFriends handles GET /users/{id}/friends.
func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierr.Write(w, h.logger, err)
		return
	}

	friends, err := h.friends.Friends(r.Context(), id)
	if err != nil {
		if errors.Is(err, friendship.ErrUserNotFound) {
			apierr.Write(w, h.logger, apierr.NotFound("User not found"))
			return
		}
		apierr.Write(w, h.logger, err)
		return
	}
	jsonutil.OK(w, friends)
}

// AddFriend handles POST /users/{id}/add-friend.
func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apierr.Write(w, h.logger, err)
		return
	}

	var in AddFriendInput
	if err := jsonutil.Decode(r, &in); err != nil {
		apierr.Write(w, h.logger, apierr.BadRequest("Invalid JSON payload"))
		return
	}
	friendID, err := primitive.ObjectIDFromHex(in.FriendID)
	if err != nil {
		apierr.Write(w, h.logger, apierr.BadRequest("Invalid ID format"))
		return
	}

	user, err := h.friends.AddSymmetric(r.Context(), id, friendID)
	if err != nil {
		switch {
		case errors.Is(err, friendship.ErrSelfFriend):
			apierr.Write(w, h.logger, apierr.BadRequest("Cannot add yourself as a friend"))
		case errors.Is(err, friendship.ErrUserNotFound):
			apierr.Write(w, h.logger, apierr.NotFound("User not found"))
		case errors.Is(err, friendship.ErrFriendNotFound):
			apierr.Write(w, h.logger, apierr.NotFound("Friend not found"))
		default:
			apierr.Write(w, h.logger, err)
		}
		return
	}

	jsonutil.OK(w, map[string]any{
		"message": "Friend added",
		"user":    user,
	})
}
