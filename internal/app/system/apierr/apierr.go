// Package apierr defines the error taxonomy for the JSON API and the
// centralized boundary that converts store-level failures into it.
//
// Handlers return a single tagged error carrying an HTTP status and a
// client-safe message. Write maps anything else (malformed ObjectIDs,
// duplicate-key errors, missing documents) into the taxonomy before
// responding, so no handler formats error bodies by hand.
package apierr

import (
	"errors"
	"net/http"

	"github.com/dalemusser/stratafriends/internal/app/system/jsonutil"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Error is a tagged API error: an HTTP status plus a message safe to
// show to clients.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the given status and message.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest tags a malformed-input error (400).
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NotFound tags a missing-document error (404).
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict tags a duplicate-state error (409).
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Validation tags a field validation failure (422).
func Validation(message string) *Error {
	return New(http.StatusUnprocessableEntity, message)
}

// From converts an arbitrary error into a tagged *Error.
//
// Conversions, in order:
//   - *Error passes through unchanged
//   - primitive.ErrInvalidHex (bad ObjectID) -> 400 "Invalid ID format"
//   - mongo.ErrNoDocuments -> 404 "User not found"
//   - duplicate-key errors -> 422 (unique username/email violated)
//   - anything else -> 500 with a generic message
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, primitive.ErrInvalidHex) {
		return BadRequest("Invalid ID format")
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NotFound("User not found")
	}
	if wafflemongo.IsDup(err) {
		return Validation("username or email already in use")
	}
	return New(http.StatusInternalServerError, "Internal Server Error")
}

// Write converts err through From and writes the JSON error envelope.
//
// Internal errors (500) are logged with the underlying cause and a
// generated reference id; the id is echoed in the X-Error-ID header so
// a client report can be matched to the server log without leaking any
// internal detail in the message.
func Write(w http.ResponseWriter, logger *zap.Logger, err error) {
	apiErr := From(err)
	if apiErr.Status >= http.StatusInternalServerError {
		errID := uuid.NewString()
		logger.Error("internal error",
			zap.String("error_id", errID),
			zap.Error(err),
		)
		w.Header().Set("X-Error-ID", errID)
	}
	jsonutil.Error(w, apiErr.Status, apiErr.Message)
}
