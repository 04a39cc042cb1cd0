package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akorolev/todoapi/internal/apperrors"
	"github.com/akorolev/todoapi/internal/handlers/render"
	"github.com/akorolev/todoapi/internal/handlers/userctx"
	"github.com/akorolev/todoapi/internal/logger"
	"github.com/akorolev/todoapi/internal/models"
)

type todoRequest struct {
	Title    string    `json:"title"`
	Deadline time.Time `json:"deadline"`
}

type userResponse struct {
	User models.User `json:"user"`
}

func handleListTodos(todoService todoService, l logger.Logger) http.Handler {
	type response struct {
		Todos []models.Todo `json:"todos"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userctx.FromContext(r.Context())
		if !ok {
			render.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		todos, err := todoService.List(r.Context(), user.Username)
		if err != nil {
			l.Error("Failed to list todos", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, response{Todos: todos})
	})
}

func handleCreateTodo(todoService todoService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userctx.FromContext(r.Context())
		if !ok {
			render.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		data, err := render.BindAndValidate[todoRequest](w, r)
		if err != nil {
			return
		}

		updated, err := todoService.Create(r.Context(), user.Username, data.Title, data.Deadline)
		if err != nil {
			l.Error("Failed to create todo", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		render.JSONWithStatus(w, userResponse{User: updated}, http.StatusCreated)
	})
}

func handleUpdateTodo(todoService todoService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userctx.FromContext(r.Context())
		if !ok {
			render.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		todoID, ok := todoIDFromPath(w, r)
		if !ok {
			return
		}

		data, err := render.BindAndValidate[todoRequest](w, r)
		if err != nil {
			return
		}

		updated, err := todoService.Update(r.Context(), user.Username, todoID, data.Title, data.Deadline)

		switch {
		case err == nil:
			render.JSON(w, userResponse{User: updated})
		case errors.Is(err, apperrors.ErrTodoNotFound):
			render.Error(w, "todo does not exist", http.StatusNotFound)
		default:
			l.Error("Failed to update todo", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}

func handleMarkTodoDone(todoService todoService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userctx.FromContext(r.Context())
		if !ok {
			render.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		todoID, ok := todoIDFromPath(w, r)
		if !ok {
			return
		}

		updated, err := todoService.MarkDone(r.Context(), user.Username, todoID)

		switch {
		case err == nil:
			render.JSON(w, userResponse{User: updated})
		case errors.Is(err, apperrors.ErrTodoNotFound):
			render.Error(w, "todo does not exist", http.StatusNotFound)
		default:
			l.Error("Failed to mark todo done", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}

func handleDeleteTodo(todoService todoService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userctx.FromContext(r.Context())
		if !ok {
			render.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		todoID, ok := todoIDFromPath(w, r)
		if !ok {
			return
		}

		_, err := todoService.Delete(r.Context(), user.Username, todoID)

		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, apperrors.ErrTodoNotFound):
			render.Error(w, "todo does not exist", http.StatusNotFound)
		default:
			l.Error("Failed to delete todo", "error", err)
			render.Error(w, "internal server error", http.StatusInternalServerError)
		}
	})
}

// todoIDFromPath parses the {id} path segment. Ids are uuids, so anything
// that does not parse cannot name an existing todo and renders 404.
func todoIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	todoID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		render.Error(w, "todo does not exist", http.StatusNotFound)
		return uuid.UUID{}, false
	}

	return todoID, true
}
