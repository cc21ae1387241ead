package store

import (
	"context"
	"encoding/json"

	"github.com/ajinkya1806/Data-Diggers/internal/config"
	"github.com/ajinkya1806/Data-Diggers/internal/data/redisStore"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/userModel"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

type RedisUserStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisUserStore(ctx context.Context) *RedisUserStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisUserStore)
	if inner == nil {
		return nil
	}
	return &RedisUserStore{
		store:  inner,
		logger: logger_i.NewLogger("UserStore"),
	}
}

func userKey(username string) string {
	return "user:" + username
}

type storedUser struct {
	FullName     string `json:"fullName"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
}

func (s *RedisUserStore) GetUser(ctx context.Context, username string) (userModel.User, bool, error) {
	val, err := s.store.Get(ctx, userKey(username))
	if s.store.IsNil(err) {
		return userModel.User{}, false, nil
	} else if err != nil {
		return userModel.User{}, false, err
	}

	var stored storedUser
	if err := json.Unmarshal([]byte(val), &stored); err != nil {
		return userModel.User{}, false, err
	}
	return userModel.User{
		FullName:     stored.FullName,
		Username:     stored.Username,
		PasswordHash: stored.PasswordHash,
	}, true, nil
}

// SaveUser relies on SETNX for uniqueness, so two racing signups cannot
// both win.
func (s *RedisUserStore) SaveUser(ctx context.Context, user userModel.User) error {
	data, err := json.Marshal(storedUser{
		FullName:     user.FullName,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	})
	if err != nil {
		return err
	}

	ok, err := s.store.SetNX(ctx, userKey(user.Username), data, 0)
	if err != nil {
		return err
	}
	if !ok {
		return userModel.ErrUserExists
	}
	s.logger.Debug("Saved new user", "username", user.Username)
	return nil
}

func TestUserStore(store *redisStore.Store) *RedisUserStore {
	return &RedisUserStore{
		store:  store,
		logger: logger_i.NewLogger("test user store"),
	}
}
