package middleware

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/spotifaux/spotifaux-go/internal/crypto"
	"github.com/spotifaux/spotifaux-go/internal/model"
)

// SessionCookie is the name of the cookie carrying the access token.
const SessionCookie = "access_token"

type contextKey string

const userKey contextKey = "user"

// UserLookup resolves a token subject to a stored user.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// SessionAuth returns middleware that validates the session cookie and loads
// the user it names. Requests without a valid session are rejected with 401.
func SessionAuth(secret string, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			userID, err := crypto.UserIDFromToken(cookie.Value, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "User not found")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userKey).(*model.User)
	return u, ok && u != nil
}

// WithUser returns a copy of ctx carrying user, as SessionAuth does.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
