package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps each cart under a fixed "cart:<id>" key holding the
// JSON item array. A zero ttl keeps carts forever.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStorage(addr, password string, db int, ttl time.Duration) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStorage{client: rdb, ttl: ttl}
}

func cartKey(cartId string) string {
	return "cart:" + cartId
}

func (s *RedisStorage) Load(ctx context.Context, cartId string) ([]LineItem, error) {
	data, err := s.client.Get(ctx, cartKey(cartId)).Result()
	if err != nil {
		return nil, err
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RedisStorage) Save(ctx context.Context, cartId string, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(cartId), data, s.ttl).Err()
}

func (s *RedisStorage) Delete(ctx context.Context, cartId string) error {
	return s.client.Del(ctx, cartKey(cartId)).Err()
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}

// DiskStorage writes each cart as a JSON file, sharded into folders by id
// prefix to keep directories small.
type DiskStorage struct {
	Path string
}

func NewDiskStorage(path string) *DiskStorage {
	return &DiskStorage{Path: path}
}

func (s *DiskStorage) cartPath(cartId string) (string, string) {
	folder := "00"
	if len(cartId) >= 2 {
		folder = cartId[:2]
	}
	return filepath.Join(s.Path, folder), fmt.Sprintf("%s.json", cartId)
}

func (s *DiskStorage) Load(ctx context.Context, cartId string) ([]LineItem, error) {
	folder, filename := s.cartPath(cartId)
	file, err := os.Open(filepath.Join(folder, filename))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var items []LineItem
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *DiskStorage) Save(ctx context.Context, cartId string, items []LineItem) error {
	folder, filename := s.cartPath(cartId)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return err
	}
	file, err := os.Create(filepath.Join(folder, filename))
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewEncoder(file).Encode(items)
}

func (s *DiskStorage) Delete(ctx context.Context, cartId string) error {
	folder, filename := s.cartPath(cartId)
	return os.Remove(filepath.Join(folder, filename))
}

// MemoryStorage holds carts in a map, for tests and storage-less runs.
type MemoryStorage struct {
	mu    sync.Mutex
	carts map[string][]LineItem
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string][]LineItem)}
}

func (s *MemoryStorage) Load(ctx context.Context, cartId string) ([]LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.carts[cartId]
	if !ok {
		return nil, fmt.Errorf("cart %s not found", cartId)
	}
	result := make([]LineItem, len(items))
	copy(result, items)
	return result, nil
}

func (s *MemoryStorage) Save(ctx context.Context, cartId string, items []LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]LineItem, len(items))
	copy(stored, items)
	s.carts[cartId] = stored
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, cartId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartId)
	return nil
}
