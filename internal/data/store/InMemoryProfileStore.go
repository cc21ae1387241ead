package store

import (
	"context"
	"sync"

	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

// InMemoryProfileStore is the fallback when Redis is offline. It keeps the
// same flat field representation as the Redis store.
type InMemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]map[string]string
	logger   *logger_i.Logger
}

func InitInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{
		profiles: make(map[string]map[string]string),
		logger:   logger_i.NewLogger("InMemoryProfileStore"),
	}
}

func (s *InMemoryProfileStore) FindOne(_ context.Context, username string) (docModel.StoredProfile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.profiles[username]
	if !ok {
		return docModel.StoredProfile{}, false, nil
	}
	profile, found := profileFromFields(username, fields)
	return profile, found, nil
}

func (s *InMemoryProfileStore) UpsertField(_ context.Context, username string, slot string, record docModel.DocumentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, ok := s.profiles[username]
	if !ok {
		fields = make(map[string]string)
		s.profiles[username] = fields
	}
	for key, value := range recordToFields(slot, record) {
		fields[key] = value
	}
	return nil
}

func (s *InMemoryProfileStore) UpdateFields(_ context.Context, username string, updates map[string]string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, ok := s.profiles[username]
	if !ok {
		return 0, nil
	}

	var modified int64
	for path, value := range updates {
		if fields[path] != value {
			fields[path] = value
			modified++
		}
	}
	return modified, nil
}
