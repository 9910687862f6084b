package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/checkout-next/internal/catalog"
	"github.com/checkout-next/internal/constants"
	"github.com/checkout-next/internal/logger"
)

// ErrInvalidQuantity 数量非正数时由 Add 返回
var ErrInvalidQuantity = errors.New("quantity must be positive")

// LineItem 购物车条目
type LineItem struct {
	ProductID        string `json:"productId"`
	Quantity         int    `json:"quantity"`
	DeliveryOptionID string `json:"deliveryOptionId"`
}

// Result 变更结果。调用方据此决定记录日志还是向用户反馈，
// 存储层本身不把"条目不存在"当作错误。
type Result int

const (
	// Applied 变更已执行并持久化
	Applied Result = iota
	// NotFound 无匹配条目，购物车未变化
	NotFound
	// InvalidOption 配送方式未通过目录校验，购物车未变化
	InvalidOption
)

// Store 单个存储键的购物车。条目列表的唯一持有者：
// 所有变更都经由 Store 操作完成，且每次成功变更都在返回前同步持久化整份快照。
type Store struct {
	key      string
	storage  SnapshotStorage
	delivery catalog.DeliveryCatalog

	mu    sync.Mutex
	items []LineItem
}

// NewStore 创建指定存储键的购物车
func NewStore(key string, storage SnapshotStorage, delivery catalog.DeliveryCatalog) *Store {
	return &Store{
		key:      key,
		storage:  storage,
		delivery: delivery,
	}
}

// Key 返回购物车存储键
func (s *Store) Key() string {
	return s.key
}

// defaultSeed 默认条目集。持久状态缺失或无法解析时使用。
func defaultSeed() []LineItem {
	return []LineItem{
		{
			ProductID:        "e43638ce-6aa0-4b85-b27f-e1d07eb678c6",
			Quantity:         2,
			DeliveryOptionID: "1",
		},
		{
			ProductID:        "15b6fc6f-327a-4ec4-896f-486349e85a3d",
			Quantity:         1,
			DeliveryOptionID: "2",
		},
	}
}

// Load 从持久存储读取快照并填充内存状态。
// 快照缺失或无法解析时回落到默认条目集，不向外失败。
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.storage.Read(ctx, s.key)
	if err != nil {
		logger.Warnw("cart_snapshot_read_failed", "cart_key", s.key, "error", err)
		s.items = defaultSeed()
		return
	}
	if !ok {
		s.items = defaultSeed()
		return
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		logger.Warnw("cart_snapshot_malformed", "cart_key", s.key, "error", err)
		s.items = defaultSeed()
		return
	}
	s.items = items
}

// Add 合并或追加条目。已存在相同 productId 时累加数量，
// 否则以默认配送方式追加新条目。数量必须为正数。
func (s *Store) Add(ctx context.Context, productID string, quantity int) (Result, error) {
	if quantity <= 0 {
		return NotFound, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity += quantity
			return Applied, s.persist(ctx)
		}
	}

	s.items = append(s.items, LineItem{
		ProductID:        productID,
		Quantity:         quantity,
		DeliveryOptionID: constants.BaselineDeliveryOptionID,
	})
	return Applied, s.persist(ctx)
}

// Remove 删除匹配条目。无匹配条目时购物车不变，仍会持久化当前状态。
func (s *Store) Remove(ctx context.Context, productID string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	result := NotFound
	for _, item := range s.items {
		if item.ProductID == productID {
			result = Applied
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return result, s.persist(ctx)
}

// SetQuantity 覆盖匹配条目的数量。范围校验属于编辑边界，不在存储层。
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return Applied, s.persist(ctx)
		}
	}
	return NotFound, nil
}

// SetDeliveryOption 更换匹配条目的配送方式。
// 条目不存在或配送方式未通过目录校验时购物车不变。
func (s *Store) SetDeliveryOption(ctx context.Context, productID, deliveryOptionID string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matching *LineItem
	for i := range s.items {
		if s.items[i].ProductID == productID {
			matching = &s.items[i]
			break
		}
	}
	if matching == nil {
		return NotFound, nil
	}
	if !s.delivery.ValidDeliveryOption(deliveryOptionID) {
		return InvalidOption, nil
	}

	matching.DeliveryOptionID = deliveryOptionID
	return Applied, s.persist(ctx)
}

// TotalQuantity 所有条目数量之和（纯查询）
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Items 当前条目的只读副本（保持插入顺序）
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// persist 将完整条目列表同步写入存储。调用方必须持有 s.mu。
func (s *Store) persist(ctx context.Context) error {
	payload, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	if err := s.storage.Write(ctx, s.key, string(payload)); err != nil {
		logger.Errorw("cart_snapshot_write_failed", "cart_key", s.key, "error", err)
		return err
	}
	return nil
}
