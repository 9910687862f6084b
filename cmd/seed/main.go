package main

import (
	"github.com/checkout-next/internal/config"
	"github.com/checkout-next/internal/logger"
	"github.com/checkout-next/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 基础目录数据（默认商品 + 配送方式）
	if err := models.InitCatalogData(); err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}

	// 演示用的扩展商品目录
	products := []models.Product{
		{
			ID:         "3ebe75dc-64d2-4137-8860-1f5a963e534b",
			Name:       "6 Piece White Dinner Plate Set",
			Image:      "images/products/6-piece-white-dinner-plate-set.jpg",
			PriceCents: 2067,
		},
		{
			ID:         "8c9c52b5-5a19-4bcb-a5d1-158a74287c53",
			Name:       "6-Piece Nonstick, Carbon Steel Oven Bakeware Baking Set",
			Image:      "images/products/6-piece-non-stick-baking-set.webp",
			PriceCents: 3499,
		},
		{
			ID:         "dd82ca78-a18b-4e2a-9250-31e67412f98d",
			Name:       "Plain Hooded Fleece Sweatshirt",
			Image:      "images/products/plain-hooded-fleece-sweatshirt-yellow.jpg",
			PriceCents: 2400,
		},
		{
			ID:         "77919bbe-0e56-475b-adde-4f24dfed3a04",
			Name:       "Luxury Towel Set - Graphite Gray",
			Image:      "images/products/luxury-tower-set-6-piece.jpg",
			PriceCents: 3599,
		},
		{
			ID:         "3fdfe8d6-9a15-4979-b459-585b0d0545b9",
			Name:       "Liquid Laundry Detergent, 110 Loads",
			Image:      "images/products/liquid-laundry-detergent-plain.jpg",
			PriceCents: 2899,
		},
		{
			ID:         "e1f352e8-b7f6-4c32-98e1-0b8a9b9c472a",
			Name:       "Waterproof Knit Athletic Sneakers - Gray",
			Image:      "images/products/knit-athletic-sneakers-gray.jpg",
			PriceCents: 3390,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("id = ?", product.ID).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.ID, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	stdLog.Println("Seed completed")
}
