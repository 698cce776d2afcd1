// Package storage provides SlotStore implementations that mirror the
// booked-slot collection for offline use.
package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/medscheduler/booking-core/internal/domain/entities"
	"github.com/medscheduler/booking-core/internal/domain/providers"
	redisclient "github.com/medscheduler/booking-core/internal/infrastructure/clients/redis"
	apperrors "github.com/medscheduler/booking-core/pkg/errors"
)

// RedisAdapter implements the SlotStore interface on a single Redis key
// holding the full collection as a JSON array, mirroring the on-device
// table the client keeps for offline use.
type RedisAdapter struct {
	client *redisclient.Client
	key    string
}

// NewRedisAdapter creates a Redis-backed slot store writing under key.
func NewRedisAdapter(client *redisclient.Client, key string) providers.SlotStore {
	return &RedisAdapter{
		client: client,
		key:    key,
	}
}

// LoadAll reads the persisted collection. A key that has never been
// written yields an empty collection.
func (a *RedisAdapter) LoadAll(ctx context.Context) ([]entities.BookedSlot, error) {
	raw, err := a.client.Client().Get(ctx, a.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entities.BookedSlot{}, nil
	}
	if err != nil {
		return nil, apperrors.NewExternalError("failed to load booked slots", err)
	}

	var slots []entities.BookedSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, apperrors.NewInternalError("corrupt booked slot snapshot", err)
	}
	return slots, nil
}

// SaveAll replaces the persisted collection with the snapshot. No TTL: the
// mirror lives as long as the key does.
func (a *RedisAdapter) SaveAll(ctx context.Context, slots []entities.BookedSlot) error {
	if slots == nil {
		slots = []entities.BookedSlot{}
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return apperrors.NewInternalError("failed to encode booked slot snapshot", err)
	}
	if err := a.client.Client().Set(ctx, a.key, raw, 0).Err(); err != nil {
		return apperrors.NewExternalError("failed to save booked slots", err)
	}
	return nil
}
