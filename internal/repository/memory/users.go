package memory

import (
	"context"

	"github.com/akorolev/todoapi/internal/apperrors"
	"github.com/akorolev/todoapi/internal/models"
	"github.com/akorolev/todoapi/internal/repository"
)

type UserRepo struct {
	storage *Storage
}

func (r *UserRepo) CreateUser(_ context.Context, arg repository.CreateUserParams) (models.User, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[arg.Username]; ok {
		return models.User{}, apperrors.ErrUsernameTaken
	}

	user := &models.User{
		ID:       s.newID(),
		Name:     arg.Name,
		Username: arg.Username,
		Todos:    make([]models.Todo, 0),
	}

	s.users = append(s.users, user)
	s.byName[user.Username] = user

	return snapshot(user), nil
}

func (r *UserRepo) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byName[username]
	if !ok {
		return models.User{}, apperrors.ErrUserNotFound
	}

	return snapshot(user), nil
}
