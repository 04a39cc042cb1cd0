package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/akorolev/todoapi/internal/apperrors"
	"github.com/akorolev/todoapi/internal/handlers/render"
	"github.com/akorolev/todoapi/internal/handlers/userctx"
	"github.com/akorolev/todoapi/internal/models"
)

type userResolver interface {
	Resolve(ctx context.Context, r *http.Request) (models.User, error)
}

// Identity resolves the acting user from the request before any route logic
// and gates access:
//   - registration with an already taken username is rejected with 401
//     (existing clients depend on this status, even if 409 would fit better)
//   - any route under the todos namespace requires a known user, 404 otherwise
//
// On success the resolved user is attached to the request context.
func Identity(resolver userResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolver.Resolve(r.Context(), r)
			if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
				render.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			found := err == nil

			if found && r.Method == http.MethodPost && r.URL.Path == "/users" {
				render.Error(w, "username already taken", http.StatusUnauthorized)
				return
			}

			if !found && strings.Contains(r.URL.Path, "/todos") {
				render.Error(w, "user does not exist", http.StatusNotFound)
				return
			}

			if found {
				r = r.WithContext(userctx.New(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}
