package redis

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cvlm/crm-backend/internal/models"
)

const profilesKey = "crm:profiles"

// ProfileStore snapshots the whole collection as a single JSON value.
type ProfileStore struct {
	rdb *goredis.Client
}

func NewProfileStore(rdb *goredis.Client) *ProfileStore {
	return &ProfileStore{rdb: rdb}
}

func (s *ProfileStore) Load(ctx context.Context) ([]models.Profile, error) {
	raw, err := s.rdb.Get(ctx, profilesKey).Result()
	if err == goredis.Nil {
		return []models.Profile{}, nil
	}
	if err != nil {
		return nil, err
	}

	var profiles []models.Profile
	if err := json.Unmarshal([]byte(raw), &profiles); err != nil {
		// snapshot corrupt: drop it and start empty
		_ = s.rdb.Del(ctx, profilesKey).Err()
		return []models.Profile{}, nil
	}
	return profiles, nil
}

func (s *ProfileStore) Save(ctx context.Context, profiles []models.Profile) error {
	b, err := json.Marshal(profiles)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, profilesKey, b, 0).Err()
}
