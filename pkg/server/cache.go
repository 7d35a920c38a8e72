package server

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a redis backed response cache for listing results.
type Cache struct {
	client *redis.Client
	ctx    context.Context
}

func NewCache(addr, password string, db int) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{client: rdb, ctx: context.Background()}
}

func (c *Cache) Get(key string, out any) error {
	data, err := c.client.Get(c.ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), out)
}

func (c *Cache) Set(key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(c.ctx, key, data, expiration).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

type CacheHelper[T any] struct {
	Cache *Cache
}

func NewCacheHelper[T any](cache *Cache) *CacheHelper[T] {
	return &CacheHelper[T]{Cache: cache}
}

// Handle fills out from cache, falling back to fn and storing its result.
func (c *CacheHelper[T]) Handle(key string, out *T, fn func() T, expiration time.Duration) error {
	err := c.Cache.Get(key, out)
	if err != nil {
		*out = fn()
		err = c.Cache.Set(key, out, expiration)
	}
	return err
}
