package user

import (
	"context"
	"fmt"

	"github.com/akorolev/todoapi/internal/models"
	"github.com/akorolev/todoapi/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepo
}

func NewService(userRepo repository.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Register creates a user with an empty todo list.
// Uniqueness of the username is enforced by the repository.
func (s *UserService) Register(ctx context.Context, name string, username string) (models.User, error) {
	user, err := s.userRepo.CreateUser(ctx, repository.CreateUserParams{
		Name:     name,
		Username: username,
	})
	if err != nil {
		return user, fmt.Errorf("can't create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return user, fmt.Errorf("can't get user: %w", err)
	}

	return user, nil
}
