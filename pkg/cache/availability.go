package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	roomKeyPrefix = "room:available:"
	hintTTL       = time.Minute
)

// ErrMiss is returned when no hint is cached for the room.
var ErrMiss = errors.New("availability cache: miss")

// AvailabilityCache holds the derived per-room availability hint. The hint is
// advisory only: the overlap check over active bookings remains the single
// source of truth, and every method degrades to a miss when redis is absent.
type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{client: client}
}

func (c *AvailabilityCache) key(roomID uint) string {
	return fmt.Sprintf("%s%d", roomKeyPrefix, roomID)
}

func (c *AvailabilityCache) GetRoomAvailability(ctx context.Context, roomID uint) (bool, error) {
	if c == nil || c.client == nil {
		return false, ErrMiss
	}
	v, err := c.client.Get(ctx, c.key(roomID)).Result()
	if err == redis.Nil {
		return false, ErrMiss
	}
	if err != nil {
		return false, fmt.Errorf("redis get: %w", err)
	}
	return v == "1", nil
}

func (c *AvailabilityCache) SetRoomAvailability(ctx context.Context, roomID uint, available bool) error {
	if c == nil || c.client == nil {
		return nil
	}
	v := "0"
	if available {
		v = "1"
	}
	return c.client.Set(ctx, c.key(roomID), v, hintTTL).Err()
}

// InvalidateRoom drops the hint after a booking mutation touching the room.
func (c *AvailabilityCache) InvalidateRoom(ctx context.Context, roomID uint) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.key(roomID)).Err()
}
