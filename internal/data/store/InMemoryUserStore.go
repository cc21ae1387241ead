package store

import (
	"context"
	"sync"

	"github.com/ajinkya1806/Data-Diggers/internal/domain/userModel"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

type InMemoryUserStore struct {
	mu     sync.RWMutex
	users  map[string]userModel.User
	logger *logger_i.Logger
}

func InitInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:  make(map[string]userModel.User),
		logger: logger_i.NewLogger("InMemoryUserStore"),
	}
}

func (s *InMemoryUserStore) GetUser(_ context.Context, username string) (userModel.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	return user, ok, nil
}

func (s *InMemoryUserStore) SaveUser(_ context.Context, user userModel.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return userModel.ErrUserExists
	}
	s.users[user.Username] = user
	return nil
}
