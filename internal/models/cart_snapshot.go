package models

import (
	"time"
)

// CartSnapshot 购物车快照表（键值对存储，每个存储键一份完整 JSON 条目数组）
type CartSnapshot struct {
	Key       string    `gorm:"primarykey;type:varchar(64)" json:"key"` // 购物车存储键
	ItemsJSON string    `gorm:"type:json" json:"items"`                 // 条目数组的 JSON 序列化
	UpdatedAt time.Time `json:"updated_at"`                             // 更新时间
}

// TableName 指定表名
func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
