package models

import (
	"time"
)

// Order 本地订单历史表（保存远端下单接口返回的确认内容）
type Order struct {
	ID          string    `gorm:"primarykey;type:varchar(64)" json:"id"` // 订单ID（远端返回，缺失时本地生成 UUID）
	CartKey     string    `gorm:"index" json:"cart_key"`                 // 下单时的购物车存储键
	PayloadJSON string    `gorm:"type:json" json:"payload"`              // 远端确认的原始 JSON
	CreatedAt   time.Time `gorm:"index" json:"created_at"`               // 创建时间
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
