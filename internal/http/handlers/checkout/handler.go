package checkout

import "github.com/checkout-next/internal/provider"

// Handler 结算接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建结算处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
