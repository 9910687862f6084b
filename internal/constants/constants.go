package constants

// 购物车存储常量
const (
	// DefaultCartKey 默认购物车存储键
	DefaultCartKey = "cart-default"
	// BusinessCartKey 企业购物车存储键
	BusinessCartKey = "cart-business"
	// BaselineDeliveryOptionID 新增条目的默认配送方式
	BaselineDeliveryOptionID = "1"
)

// 数量边界常量（编辑边界校验，非存储层校验）
const (
	MinLineItemQuantity = 1
	MaxLineItemQuantity = 999
)

// 购物车存储后端常量
const (
	CartStorageDatabase = "database"
	CartStorageRedis    = "redis"
)
