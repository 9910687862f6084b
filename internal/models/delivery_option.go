package models

// DeliveryOption 配送方式目录表
type DeliveryOption struct {
	ID           string `gorm:"primarykey;type:varchar(16)" json:"id"`    // 配送方式ID
	DeliveryDays int    `gorm:"not null" json:"delivery_days"`            // 配送天数
	PriceCents   int64  `gorm:"not null;default:0" json:"price_cents"`    // 运费（分）
	SortOrder    int    `gorm:"not null;default:0;index" json:"sort_order"` // 排序权重
}

// TableName 指定表名
func (DeliveryOption) TableName() string {
	return "delivery_options"
}
