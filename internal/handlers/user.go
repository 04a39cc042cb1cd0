package handlers

import (
	"errors"
	"net/http"

	"github.com/akorolev/todoapi/internal/apperrors"
	"github.com/akorolev/todoapi/internal/handlers/render"
	"github.com/akorolev/todoapi/internal/logger"
	"github.com/akorolev/todoapi/internal/models"
)

func handleCreateUser(userService userService, l logger.Logger) http.Handler {
	// Fields are intentionally unconstrained: absent values are stored as-is
	type request struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	}
	type response struct {
		User models.User `json:"user"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		user, err := userService.Register(r.Context(), data.Name, data.Username)

		switch {
		case err == nil:
			render.JSONWithStatus(w, response{User: user}, http.StatusCreated)
		case errors.Is(err, apperrors.ErrUsernameTaken):
			// Middleware already gates this, kept for safety against races
			render.Error(w, "username already taken", http.StatusUnauthorized)
		default:
			l.Error("Failed to register user", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}
