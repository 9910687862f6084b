package models

import (
	"errors"

	"github.com/checkout-next/internal/logger"

	"gorm.io/gorm"
)

// DefaultProducts 默认商品目录数据
func DefaultProducts() []Product {
	return []Product{
		{
			ID:         "e43638ce-6aa0-4b85-b27f-e1d07eb678c6",
			Name:       "Black and Gray Athletic Cotton Socks - 6 Pairs",
			Image:      "images/products/athletic-cotton-socks-6-pairs.jpg",
			PriceCents: 1090,
		},
		{
			ID:         "15b6fc6f-327a-4ec4-896f-486349e85a3d",
			Name:       "Intermediate Size Basketball",
			Image:      "images/products/intermediate-composite-basketball.jpg",
			PriceCents: 2095,
		},
		{
			ID:         "83d4ca15-0f35-48f5-b7a3-1ea210004f2e",
			Name:       "Adults Plain Cotton T-Shirt - 2 Pack",
			Image:      "images/products/adults-plain-cotton-tshirt-2-pack-teal.jpg",
			PriceCents: 799,
		},
		{
			ID:         "54e0eccd-8f36-462b-b68a-8182611d9add",
			Name:       "Black 2 Slot Toaster",
			Image:      "images/products/black-2-slot-toaster.jpg",
			PriceCents: 1899,
		},
	}
}

// DefaultDeliveryOptions 默认配送方式目录数据
func DefaultDeliveryOptions() []DeliveryOption {
	return []DeliveryOption{
		{ID: "1", DeliveryDays: 7, PriceCents: 0, SortOrder: 1},
		{ID: "2", DeliveryDays: 3, PriceCents: 499, SortOrder: 2},
		{ID: "3", DeliveryDays: 1, PriceCents: 999, SortOrder: 3},
	}
}

// InitCatalogData 初始化商品与配送方式目录（已存在的条目不覆盖）
func InitCatalogData() error {
	for _, product := range DefaultProducts() {
		var existing Product
		err := DB.Where("id = ?", product.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := DB.Create(&product).Error; err != nil {
				return err
			}
			logger.Infow("catalog_product_seeded", "product_id", product.ID)
			continue
		}
		if err != nil {
			return err
		}
	}

	for _, option := range DefaultDeliveryOptions() {
		var existing DeliveryOption
		err := DB.Where("id = ?", option.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := DB.Create(&option).Error; err != nil {
				return err
			}
			logger.Infow("catalog_delivery_option_seeded", "delivery_option_id", option.ID)
			continue
		}
		if err != nil {
			return err
		}
	}

	return nil
}
