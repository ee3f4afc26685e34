package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisVisitStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisVisitStore(client *redis.Client, ttl time.Duration) *RedisVisitStore {
	return &RedisVisitStore{Client: client, TTL: ttl}
}

func (s *RedisVisitStore) LastRestaurantKey(userID int64) string {
	return "cart:last_restaurant:" + strconv.FormatInt(userID, 10)
}

func (s *RedisVisitStore) LastRestaurant(ctx context.Context, userID int64) (string, error) {
	value, err := s.Client.Get(ctx, s.LastRestaurantKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetLastRestaurant stores the id; a zero TTL keeps it forever.
func (s *RedisVisitStore) SetLastRestaurant(ctx context.Context, userID int64, restaurantID string) error {
	return s.Client.Set(ctx, s.LastRestaurantKey(userID), restaurantID, s.TTL).Err()
}
