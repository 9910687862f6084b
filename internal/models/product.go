package models

import (
	"time"
)

// Product 商品目录表
type Product struct {
	ID         string    `gorm:"primarykey;type:varchar(64)" json:"id"` // 商品ID（UUID 字符串）
	Name       string    `gorm:"not null" json:"name"`                  // 商品名称
	Image      string    `json:"image"`                                 // 商品图片地址
	PriceCents int64     `gorm:"not null;default:0" json:"price_cents"` // 单价（分）
	CreatedAt  time.Time `json:"created_at"`                            // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                            // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
