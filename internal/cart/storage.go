package cart

import (
	"context"
	"errors"

	"github.com/checkout-next/internal/cache"
	"github.com/checkout-next/internal/repository"
)

// ErrStorageUnavailable Redis 后端未启用时返回
var ErrStorageUnavailable = errors.New("cart snapshot storage unavailable")

// SnapshotStorage 购物车快照存储接口。每个存储键保存一份完整的条目数组 JSON。
type SnapshotStorage interface {
	// Read 读取快照，键不存在时返回 ("", false, nil)
	Read(ctx context.Context, key string) (string, bool, error)
	// Write 整份覆盖写入快照
	Write(ctx context.Context, key string, itemsJSON string) error
}

// DatabaseStorage 数据库快照存储
type DatabaseStorage struct {
	repo repository.CartSnapshotRepository
}

// NewDatabaseStorage 创建数据库快照存储
func NewDatabaseStorage(repo repository.CartSnapshotRepository) *DatabaseStorage {
	return &DatabaseStorage{repo: repo}
}

// Read 读取快照
func (s *DatabaseStorage) Read(ctx context.Context, key string) (string, bool, error) {
	snapshot, err := s.repo.GetByKey(key)
	if err != nil {
		return "", false, err
	}
	if snapshot == nil {
		return "", false, nil
	}
	return snapshot.ItemsJSON, true, nil
}

// Write 写入快照
func (s *DatabaseStorage) Write(ctx context.Context, key string, itemsJSON string) error {
	return s.repo.Upsert(key, itemsJSON)
}

// RedisStorage Redis 快照存储
type RedisStorage struct{}

// NewRedisStorage 创建 Redis 快照存储
func NewRedisStorage() *RedisStorage {
	return &RedisStorage{}
}

// Read 读取快照
func (s *RedisStorage) Read(ctx context.Context, key string) (string, bool, error) {
	if !cache.Enabled() {
		return "", false, ErrStorageUnavailable
	}
	return cache.GetRaw(ctx, redisKey(key))
}

// Write 写入快照（快照是持久状态，不设置过期时间）
func (s *RedisStorage) Write(ctx context.Context, key string, itemsJSON string) error {
	if !cache.Enabled() {
		return ErrStorageUnavailable
	}
	return cache.SetRaw(ctx, redisKey(key), itemsJSON, 0)
}

func redisKey(key string) string {
	return "cart:" + key
}
