package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akorolev/todoapi/internal/models"
	"github.com/akorolev/todoapi/internal/repository"
)

type TodoService struct {
	userRepo repository.UserRepo
	todoRepo repository.TodoRepo
}

func NewService(userRepo repository.UserRepo, todoRepo repository.TodoRepo) *TodoService {
	return &TodoService{
		userRepo: userRepo,
		todoRepo: todoRepo,
	}
}

// List returns the user's todos in insertion order
func (s *TodoService) List(ctx context.Context, username string) ([]models.Todo, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("can't list todos: %w", err)
	}

	return user.Todos, nil
}

// Create appends a new todo to the user's list and returns the updated user
func (s *TodoService) Create(ctx context.Context, username string, title string, deadline time.Time) (models.User, error) {
	user, err := s.todoRepo.AddTodo(ctx, username, repository.CreateTodoParams{
		Title:    title,
		Deadline: deadline,
	})
	if err != nil {
		return user, fmt.Errorf("can't create todo: %w", err)
	}

	return user, nil
}

// Update changes title and deadline of the todo, other fields stay untouched
func (s *TodoService) Update(ctx context.Context, username string, todoID uuid.UUID, title string, deadline time.Time) (models.User, error) {
	user, err := s.todoRepo.UpdateTodo(ctx, username, todoID, repository.UpdateTodoParams{
		Title:    title,
		Deadline: deadline,
	})
	if err != nil {
		return user, fmt.Errorf("can't update todo: %w", err)
	}

	return user, nil
}

// MarkDone sets done on the todo. Repeated calls are idempotent.
func (s *TodoService) MarkDone(ctx context.Context, username string, todoID uuid.UUID) (models.User, error) {
	user, err := s.todoRepo.MarkTodoDone(ctx, username, todoID)
	if err != nil {
		return user, fmt.Errorf("can't mark todo done: %w", err)
	}

	return user, nil
}

// Delete removes the todo keeping the order of the remaining ones
func (s *TodoService) Delete(ctx context.Context, username string, todoID uuid.UUID) (models.User, error) {
	user, err := s.todoRepo.DeleteTodo(ctx, username, todoID)
	if err != nil {
		return user, fmt.Errorf("can't delete todo: %w", err)
	}

	return user, nil
}
