// Package identity resolves the acting user of a request.
//
// The only strategy for now reads a plaintext username header, matching
// what existing clients send. Anything smarter (sessions, tokens) should
// be another resolver behind the same Resolve method.
package identity

import (
	"context"
	"net/http"

	"github.com/akorolev/todoapi/internal/apperrors"
	"github.com/akorolev/todoapi/internal/models"
	"github.com/akorolev/todoapi/internal/repository"
)

const DefaultHeader = "username"

type HeaderResolver struct {
	header string
	users  repository.UserRepo
}

func NewHeaderResolver(users repository.UserRepo) *HeaderResolver {
	return &HeaderResolver{
		header: DefaultHeader,
		users:  users,
	}
}

// Resolve returns the user whose username equals the header value.
// An absent or empty header matches no user.
func (h *HeaderResolver) Resolve(ctx context.Context, r *http.Request) (models.User, error) {
	username := r.Header.Get(h.header)
	if username == "" {
		return models.User{}, apperrors.ErrUserNotFound
	}

	return h.users.GetUserByUsername(ctx, username)
}
