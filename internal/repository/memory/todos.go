package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/akorolev/todoapi/internal/apperrors"
	"github.com/akorolev/todoapi/internal/models"
	"github.com/akorolev/todoapi/internal/repository"
)

type TodoRepo struct {
	storage *Storage
}

func (r *TodoRepo) AddTodo(_ context.Context, username string, arg repository.CreateTodoParams) (models.User, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byName[username]
	if !ok {
		return models.User{}, apperrors.ErrUserNotFound
	}

	todo := models.Todo{
		ID:        s.newID(),
		Title:     arg.Title,
		Done:      false,
		Deadline:  arg.Deadline,
		CreatedAt: s.now(),
	}

	user.Todos = append(user.Todos, todo)

	return snapshot(user), nil
}

func (r *TodoRepo) UpdateTodo(_ context.Context, username string, todoID uuid.UUID, arg repository.UpdateTodoParams) (models.User, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	user, i, err := s.findTodo(username, todoID)
	if err != nil {
		return models.User{}, err
	}

	user.Todos[i].Title = arg.Title
	user.Todos[i].Deadline = arg.Deadline

	return snapshot(user), nil
}

func (r *TodoRepo) MarkTodoDone(_ context.Context, username string, todoID uuid.UUID) (models.User, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	user, i, err := s.findTodo(username, todoID)
	if err != nil {
		return models.User{}, err
	}

	user.Todos[i].Done = true

	return snapshot(user), nil
}

func (r *TodoRepo) DeleteTodo(_ context.Context, username string, todoID uuid.UUID) (models.User, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	user, i, err := s.findTodo(username, todoID)
	if err != nil {
		return models.User{}, err
	}

	user.Todos = append(user.Todos[:i], user.Todos[i+1:]...)

	return snapshot(user), nil
}

// findTodo locates the todo strictly within the user's own list.
// Caller must hold the storage lock.
func (s *Storage) findTodo(username string, todoID uuid.UUID) (*models.User, int, error) {
	user, ok := s.byName[username]
	if !ok {
		return nil, 0, apperrors.ErrUserNotFound
	}

	for i := range user.Todos {
		if user.Todos[i].ID == todoID {
			return user, i, nil
		}
	}

	return nil, 0, apperrors.ErrTodoNotFound
}
