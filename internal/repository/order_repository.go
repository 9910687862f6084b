package repository

import (
	"github.com/checkout-next/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 本地订单历史数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	List() ([]models.Order, error)
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单历史仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create 追加一条订单确认记录
func (r *GormOrderRepository) Create(order *models.Order) error {
	if order == nil {
		return nil
	}
	return r.db.Create(order).Error
}

// List 按创建时间倒序获取订单历史
func (r *GormOrderRepository) List() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
