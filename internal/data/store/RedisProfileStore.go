package store

import (
	"context"

	"github.com/ajinkya1806/Data-Diggers/internal/config"
	"github.com/ajinkya1806/Data-Diggers/internal/data/redisStore"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

type RedisProfileStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisProfileStore(ctx context.Context) *RedisProfileStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisProfileStore)
	if inner == nil {
		return nil
	}
	return &RedisProfileStore{
		store:  inner,
		logger: logger_i.NewLogger("ProfileStore"),
	}
}

func profileKey(username string) string {
	return "profile:" + username
}

func (s *RedisProfileStore) FindOne(ctx context.Context, username string) (docModel.StoredProfile, bool, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "username", username)
	log.Debug("loading profile")

	fields, err := s.store.HGetAll(ctx, profileKey(username))
	if err != nil {
		return docModel.StoredProfile{}, false, err
	}
	profile, found := profileFromFields(username, fields)
	return profile, found, nil
}

// UpsertField writes the whole sub-record in a single HSET. Racing inserts
// for the same slot resolve last-writer-wins without a lost update.
func (s *RedisProfileStore) UpsertField(ctx context.Context, username string, slot string, record docModel.DocumentRecord) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "username", username, "slot", slot)
	log.Debug("upserting slot")

	return s.store.HSetMap(ctx, profileKey(username), recordToFields(slot, record))
}

// UpdateFields only writes values that differ from what is stored and
// reports how many changed. An absent profile modifies nothing.
func (s *RedisProfileStore) UpdateFields(ctx context.Context, username string, fields map[string]string) (int64, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "username", username)

	existing, err := s.store.HGetAll(ctx, profileKey(username))
	if err != nil {
		return 0, err
	}
	if len(existing) == 0 {
		log.Debug("no profile to patch")
		return 0, nil
	}

	changed := make(map[string]string)
	for path, value := range fields {
		if existing[path] != value {
			changed[path] = value
		}
	}
	if len(changed) == 0 {
		return 0, nil
	}

	if err := s.store.HSetMap(ctx, profileKey(username), changed); err != nil {
		return 0, err
	}
	log.Debug("patched profile", "modified", len(changed))
	return int64(len(changed)), nil
}

func TestProfileStore(store *redisStore.Store) *RedisProfileStore {
	return &RedisProfileStore{
		store:  store,
		logger: logger_i.NewLogger("test profile store"),
	}
}
