// internal/app/features/usersapi/routes.go
package usersapi

import (
	"github.com/dalemusser/stratafriends/internal/app/system/apicors"
	"github.com/dalemusser/stratafriends/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Routes returns the users API router. apiKey may be empty, in which
// case the API is open.
func Routes(db *mongo.Database, apiKey string, logger *zap.Logger) chi.Router {
	h := NewHandler(db, logger)

	r := chi.NewRouter()
	r.Use(apicors.Middleware())
	r.Use(auth.APIKeyAuth(apiKey, logger))
	r.Use(auth.LoadRequester())

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Post("/batch", h.GetBatch)
	r.Get("/username/{username}", h.GetByUsername)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/friends", h.ListFriends)
	r.Post("/{id}/add-friend", h.AddFriend)

	return r
}
