package cart

import (
	"context"
	"sync"

	"github.com/checkout-next/internal/catalog"
)

// Manager 按存储键管理购物车实例。不同键的购物车完全独立，互不共享可变状态。
type Manager struct {
	storage  SnapshotStorage
	delivery catalog.DeliveryCatalog

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager 创建购物车管理器
func NewManager(storage SnapshotStorage, delivery catalog.DeliveryCatalog) *Manager {
	return &Manager{
		storage:  storage,
		delivery: delivery,
		stores:   make(map[string]*Store),
	}
}

// Get 获取指定存储键的购物车，首次访问时创建并加载
func (m *Manager) Get(ctx context.Context, key string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[key]; ok {
		return store
	}

	store := NewStore(key, m.storage, m.delivery)
	store.Load(ctx)
	m.stores[key] = store
	return store
}

// Preload 预加载一组存储键对应的购物车
func (m *Manager) Preload(ctx context.Context, keys []string) {
	for _, key := range keys {
		m.Get(ctx, key)
	}
}
