package repository

import (
	"errors"

	"github.com/checkout-next/internal/models"

	"gorm.io/gorm"
)

// DeliveryOptionRepository 配送方式数据访问接口
type DeliveryOptionRepository interface {
	GetByID(id string) (*models.DeliveryOption, error)
	List() ([]models.DeliveryOption, error)
}

// GormDeliveryOptionRepository GORM 实现
type GormDeliveryOptionRepository struct {
	db *gorm.DB
}

// NewDeliveryOptionRepository 创建配送方式仓库
func NewDeliveryOptionRepository(db *gorm.DB) *GormDeliveryOptionRepository {
	return &GormDeliveryOptionRepository{db: db}
}

// GetByID 获取配送方式，不存在时返回 (nil, nil)
func (r *GormDeliveryOptionRepository) GetByID(id string) (*models.DeliveryOption, error) {
	var option models.DeliveryOption
	if err := r.db.Where("id = ?", id).First(&option).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}

// List 按排序权重获取全部配送方式
func (r *GormDeliveryOptionRepository) List() ([]models.DeliveryOption, error) {
	var options []models.DeliveryOption
	if err := r.db.Order("sort_order asc").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}
