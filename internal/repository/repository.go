package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/akorolev/todoapi/internal/models"
)

type CreateUserParams struct {
	Name     string
	Username string
}

type CreateTodoParams struct {
	Title    string
	Deadline time.Time
}

type UpdateTodoParams struct {
	Title    string
	Deadline time.Time
}

// User repository interface
type UserRepo interface {
	// Create user
	// If user with the username exists already has to return apperrors.ErrUsernameTaken
	CreateUser(ctx context.Context, arg CreateUserParams) (models.User, error)

	// Get user by username
	// If user not found must return apperrors.ErrUserNotFound
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

// Todo repository interface
// Every method returns the owning user with the todos in their current order.
// If user not found must return apperrors.ErrUserNotFound.
// If the todo id is not in that user's list must return apperrors.ErrTodoNotFound;
// a todo owned by a different user counts as not found.
type TodoRepo interface {
	AddTodo(ctx context.Context, username string, arg CreateTodoParams) (models.User, error)
	UpdateTodo(ctx context.Context, username string, todoID uuid.UUID, arg UpdateTodoParams) (models.User, error)
	MarkTodoDone(ctx context.Context, username string, todoID uuid.UUID) (models.User, error)
	DeleteTodo(ctx context.Context, username string, todoID uuid.UUID) (models.User, error)
}

type Storage interface {
	User() UserRepo
	Todo() TodoRepo
}
