package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/roombooking/config"
	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client   *redis.Client
	roomsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, roomsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		roomsTTL: roomsTTL,
	}
}

func (c *RedisCache) GetRooms(ctx context.Context) ([]domain.Room, error) {
	data, err := c.client.Get(ctx, roomsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var rooms []domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *RedisCache) SetRooms(ctx context.Context, rooms []domain.Room) error {
	payload, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, roomsKey(), payload, c.roomsTTL).Err()
}

func (c *RedisCache) InvalidateRooms(ctx context.Context) error {
	return c.client.Del(ctx, roomsKey()).Err()
}

// AcquireSlotLock is the fast-path guard against two admissions racing for
// the same room slot. The database transaction remains authoritative; the
// lock only cuts the window between the two.
func (c *RedisCache) AcquireSlotLock(ctx context.Context, roomID uuid.UUID, startsAt time.Time, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, slotLockKey(roomID, startsAt), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSlotLock(ctx context.Context, roomID uuid.UUID, startsAt time.Time) error {
	return c.client.Del(ctx, slotLockKey(roomID, startsAt)).Err()
}

func roomsKey() string {
	return "cache:rooms"
}

func slotLockKey(roomID uuid.UUID, startsAt time.Time) string {
	return fmt.Sprintf("lock:room:%s:slot:%d", roomID, startsAt.UTC().Unix())
}
