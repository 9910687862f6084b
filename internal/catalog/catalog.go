package catalog

import (
	"github.com/checkout-next/internal/logger"
	"github.com/checkout-next/internal/models"
	"github.com/checkout-next/internal/repository"
)

// ProductCatalog 商品目录只读能力接口
type ProductCatalog interface {
	GetProduct(id string) (*models.Product, bool)
}

// DeliveryCatalog 配送方式目录只读能力接口
type DeliveryCatalog interface {
	GetDeliveryOption(id string) (*models.DeliveryOption, bool)
	ValidDeliveryOption(id string) bool
	ListDeliveryOptions() []models.DeliveryOption
}

// RepoProductCatalog 仓库支撑的商品目录
type RepoProductCatalog struct {
	repo repository.ProductRepository
}

// NewProductCatalog 创建商品目录
func NewProductCatalog(repo repository.ProductRepository) *RepoProductCatalog {
	return &RepoProductCatalog{repo: repo}
}

// GetProduct 按 ID 查找商品。存储错误按缺失处理并记录日志，目录查询不向上失败。
func (c *RepoProductCatalog) GetProduct(id string) (*models.Product, bool) {
	product, err := c.repo.GetByID(id)
	if err != nil {
		logger.Warnw("product_catalog_lookup_failed", "product_id", id, "error", err)
		return nil, false
	}
	if product == nil {
		return nil, false
	}
	return product, true
}

// RepoDeliveryCatalog 仓库支撑的配送方式目录
type RepoDeliveryCatalog struct {
	repo repository.DeliveryOptionRepository
}

// NewDeliveryCatalog 创建配送方式目录
func NewDeliveryCatalog(repo repository.DeliveryOptionRepository) *RepoDeliveryCatalog {
	return &RepoDeliveryCatalog{repo: repo}
}

// GetDeliveryOption 按 ID 查找配送方式
func (c *RepoDeliveryCatalog) GetDeliveryOption(id string) (*models.DeliveryOption, bool) {
	option, err := c.repo.GetByID(id)
	if err != nil {
		logger.Warnw("delivery_catalog_lookup_failed", "delivery_option_id", id, "error", err)
		return nil, false
	}
	if option == nil {
		return nil, false
	}
	return option, true
}

// ValidDeliveryOption 判断配送方式是否存在
func (c *RepoDeliveryCatalog) ValidDeliveryOption(id string) bool {
	_, ok := c.GetDeliveryOption(id)
	return ok
}

// ListDeliveryOptions 按排序权重列出全部配送方式
func (c *RepoDeliveryCatalog) ListDeliveryOptions() []models.DeliveryOption {
	options, err := c.repo.List()
	if err != nil {
		logger.Warnw("delivery_catalog_list_failed", "error", err)
		return nil
	}
	return options
}
