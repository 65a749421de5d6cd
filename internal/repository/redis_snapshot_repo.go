package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lingora-app/lingora-api/internal/models"
)

// DefaultSnapshotKey is the Redis key holding the platform snapshot.
const DefaultSnapshotKey = "lingora:snapshot"

type redisSnapshotRepository struct {
	client *redis.Client
	key    string
}

// NewRedisSnapshotRepository stores the snapshot as a single JSON blob under
// one key. The backing store is shared mutable state; callers must not point
// multiple store instances at the same key.
func NewRedisSnapshotRepository(client *redis.Client, key string) SnapshotRepository {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &redisSnapshotRepository{client: client, key: key}
}

func (r *redisSnapshotRepository) Load(ctx context.Context) (models.Snapshot, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		var snapshot models.Snapshot
		snapshot.ApplyDefaults()
		return snapshot, nil
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	// Missing top-level keys decode to zero values; defaults keep schema
	// additions non-breaking.
	snapshot.ApplyDefaults()
	return snapshot, nil
}

func (r *redisSnapshotRepository) Save(ctx context.Context, snapshot models.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}
