package repository

import (
	"errors"
	"time"

	"github.com/checkout-next/internal/models"

	"gorm.io/gorm"
)

// CartSnapshotRepository 购物车快照数据访问接口
type CartSnapshotRepository interface {
	GetByKey(key string) (*models.CartSnapshot, error)
	Upsert(key string, itemsJSON string) error
}

// GormCartSnapshotRepository GORM 实现
type GormCartSnapshotRepository struct {
	db *gorm.DB
}

// NewCartSnapshotRepository 创建购物车快照仓库
func NewCartSnapshotRepository(db *gorm.DB) *GormCartSnapshotRepository {
	return &GormCartSnapshotRepository{db: db}
}

// GetByKey 获取快照，不存在时返回 (nil, nil)
func (r *GormCartSnapshotRepository) GetByKey(key string) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	if err := r.db.Where("key = ?", key).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// Upsert 写入快照（整份覆盖）
func (r *GormCartSnapshotRepository) Upsert(key string, itemsJSON string) error {
	snapshot, err := r.GetByKey(key)
	if err != nil {
		return err
	}
	if snapshot == nil {
		snapshot = &models.CartSnapshot{
			Key:       key,
			ItemsJSON: itemsJSON,
			UpdatedAt: time.Now(),
		}
		return r.db.Create(snapshot).Error
	}

	snapshot.ItemsJSON = itemsJSON
	snapshot.UpdatedAt = time.Now()
	return r.db.Save(snapshot).Error
}
