package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akorolev/todoapi/internal/handlers/middleware"
	"github.com/akorolev/todoapi/internal/logger"
	"github.com/akorolev/todoapi/internal/models"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	userService userService,
	todoService todoService,
	resolver userResolver,
	logger logger.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /users", handleCreateUser(userService, logger))

	mux.Handle("GET /todos", handleListTodos(todoService, logger))
	mux.Handle("POST /todos", handleCreateTodo(todoService, logger))
	mux.Handle("PUT /todos/{id}", handleUpdateTodo(todoService, logger))
	mux.Handle("PATCH /todos/{id}/done", handleMarkTodoDone(todoService, logger))
	mux.Handle("DELETE /todos/{id}", handleDeleteTodo(todoService, logger))

	// Identity runs before every route, logger wraps it all
	handler := chain(mux,
		middleware.LoggerMiddleware(logger),
		middleware.Identity(resolver),
	)

	return handler
}

type userResolver interface {
	Resolve(ctx context.Context, r *http.Request) (models.User, error)
}

type userService interface {
	// Register new user
	// Has to return apperrors.ErrUsernameTaken if the username is in use
	Register(ctx context.Context, name string, username string) (models.User, error)
}

type todoService interface {
	// All methods have to return apperrors.ErrUserNotFound for unknown users
	// and apperrors.ErrTodoNotFound for ids outside the user's own list
	List(ctx context.Context, username string) ([]models.Todo, error)
	Create(ctx context.Context, username string, title string, deadline time.Time) (models.User, error)
	Update(ctx context.Context, username string, todoID uuid.UUID, title string, deadline time.Time) (models.User, error)
	MarkDone(ctx context.Context, username string, todoID uuid.UUID) (models.User, error)
	Delete(ctx context.Context, username string, todoID uuid.UUID) (models.User, error)
}
