package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/pixelgrid/snake-arena-api/internal/sessions"
)

// UserResolver resolves a session token to the authenticated user's row.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*models.UserDB, error)
}

type userContextKey struct{}

var userKey = userContextKey{}

// AuthMiddleware resolves the request's session token and puts the
// authenticated user into the request context. When no valid session exists
// it short-circuits with the route's failure message in the standard
// envelope; the protected handler is never invoked without a user.
func AuthMiddleware(resolver UserResolver, failureMessage string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := sessions.TokenFromRequest(r)
			if err != nil {
				writeFailure(w, failureMessage)
				return
			}

			user, err := resolver.ResolveUser(ctx, token)
			if err != nil {
				writeFailure(w, failureMessage)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

func writeFailure(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.Fail(msg))
}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user. Returns nil outside
// AuthMiddleware.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
