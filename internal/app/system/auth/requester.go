// internal/app/system/auth/requester.go
package auth

import (
	"context"
	"net/http"
	"strings"
)

// RequesterHeader carries the id of the user making the request. The
// client sends it explicitly on every call; it replaces the hardcoded
// current-user id earlier client builds shipped with. It is identity
// assertion only - when a real auth collaborator lands, this becomes
// the verified subject of its token.
const RequesterHeader = "X-Requester-ID"

type ctxKey int

const requesterKey ctxKey = iota

// LoadRequester returns middleware that copies the requester id header
// into the request context. Absent or blank headers leave the context
// without a requester; handlers that need one decide what that means.
func LoadRequester() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := strings.TrimSpace(r.Header.Get(RequesterHeader)); id != "" {
				r = r.WithContext(context.WithValue(r.Context(), requesterKey, id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequesterID returns the requester id carried in ctx, or "" when the
// request did not identify one.
func RequesterID(ctx context.Context) string {
	id, _ := ctx.Value(requesterKey).(string)
	return id
}
