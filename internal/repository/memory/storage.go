package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akorolev/todoapi/internal/models"
	"github.com/akorolev/todoapi/internal/repository"
)

// Storage keeps the whole registry in process memory.
// A single mutex serializes every mutation, so it is safe to share one
// Storage between the server's request goroutines.
type Storage struct {
	mu     sync.Mutex
	users  []*models.User
	byName map[string]*models.User

	now   func() time.Time
	newID func() uuid.UUID
}

func NewStorage() *Storage {
	return &Storage{
		byName: map[string]*models.User{},
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.New,
	}
}

func (s *Storage) User() repository.UserRepo {
	return &UserRepo{storage: s}
}

func (s *Storage) Todo() repository.TodoRepo {
	return &TodoRepo{storage: s}
}

// snapshot copies the user with its todos so callers never alias live state
func snapshot(u *models.User) models.User {
	copied := *u
	copied.Todos = make([]models.Todo, len(u.Todos))
	copy(copied.Todos, u.Todos)
	return copied
}
