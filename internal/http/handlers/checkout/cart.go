package checkout

import (
	"errors"
	"strings"

	"github.com/checkout-next/internal/cart"
	"github.com/checkout-next/internal/constants"
	"github.com/checkout-next/internal/http/response"
	"github.com/checkout-next/internal/logger"
	"github.com/checkout-next/internal/summary"

	"github.com/gin-gonic/gin"
)

// AddItemRequest 加购请求
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// SaveQuantityRequest 数量编辑提交请求
type SaveQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// DeliveryOptionRequest 配送方式选择请求
type DeliveryOptionRequest struct {
	DeliveryOptionID string `json:"delivery_option_id" binding:"required"`
}

func (h *Handler) cartKey(c *gin.Context) string {
	key := strings.TrimSpace(c.Param("cart_key"))
	if key == "" {
		key = constants.DefaultCartKey
	}
	return key
}

func (h *Handler) resolveCart(c *gin.Context) *cart.Store {
	return h.Carts.Get(c.Request.Context(), h.cartKey(c))
}

// failInternal 以统一错误包装记录内部错误并返回 500 响应
func failInternal(c *gin.Context, event, message string, err error, fields ...interface{}) {
	appErr := response.WrapError(response.CodeInternal, message, err)
	logger.Errorw(event, append(fields, "error", appErr)...)
	response.Error(c, appErr.Code, appErr.Message)
}

// renderView 对购物车做一次完整渲染并作为成功响应返回。
// 所有购物车变更接口都以重新渲染后的视图作为响应体。
func (h *Handler) renderView(c *gin.Context, store *cart.Store) {
	view, err := h.Presenter.Render(store)
	if err != nil {
		failInternal(c, "checkout_render_failed", "render failed", err, "cart_key", store.Key())
		return
	}
	response.Success(c, view)
}

// GetCheckoutView 获取结算页完整视图
func (h *Handler) GetCheckoutView(c *gin.Context) {
	h.renderView(c, h.resolveCart(c))
}

// AddItem 加购商品
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if _, ok := h.Products.GetProduct(req.ProductID); !ok {
		response.NotFound(c, "product not found")
		return
	}

	store := h.resolveCart(c)
	if _, err := store.Add(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			response.BadRequest(c, "quantity must be positive")
			return
		}
		failInternal(c, "cart_add_failed", "cart update failed", err, "cart_key", store.Key(), "product_id", req.ProductID)
		return
	}
	h.renderView(c, store)
}

// RemoveItem 删除购物车条目。条目不存在不是错误，响应仍是当前视图。
func (h *Handler) RemoveItem(c *gin.Context) {
	store := h.resolveCart(c)
	productID := c.Param("product_id")

	result, err := store.Remove(c.Request.Context(), productID)
	if err != nil {
		failInternal(c, "cart_remove_failed", "cart update failed", err, "cart_key", store.Key(), "product_id", productID)
		return
	}
	if result == cart.NotFound {
		logger.Warnw("cart_remove_missing_item", "cart_key", store.Key(), "product_id", productID)
	}
	h.renderView(c, store)
}

// BeginQuantityEdit 条目进入数量编辑态
func (h *Handler) BeginQuantityEdit(c *gin.Context) {
	store := h.resolveCart(c)
	productID := c.Param("product_id")

	if err := h.Presenter.BeginEdit(store, productID); err != nil {
		response.NotFound(c, "cart item not found")
		return
	}
	h.renderView(c, store)
}

// SaveQuantityEdit 提交数量编辑。校验失败时购物车不变，条目保持编辑态。
func (h *Handler) SaveQuantityEdit(c *gin.Context) {
	var req SaveQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	store := h.resolveCart(c)
	productID := c.Param("product_id")

	if err := h.Presenter.SaveEdit(c.Request.Context(), store, productID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, summary.ErrQuantityOutOfRange):
			response.BadRequest(c, "quantity must be at least 1 and less than 1000")
		case errors.Is(err, summary.ErrItemNotFound):
			response.NotFound(c, "cart item not found")
		default:
			failInternal(c, "cart_save_quantity_failed", "cart update failed", err, "cart_key", store.Key(), "product_id", productID)
		}
		return
	}
	h.renderView(c, store)
}

// SelectDeliveryOption 更换条目的配送方式
func (h *Handler) SelectDeliveryOption(c *gin.Context) {
	var req DeliveryOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	store := h.resolveCart(c)
	productID := c.Param("product_id")

	if err := h.Presenter.SelectDeliveryOption(c.Request.Context(), store, productID, req.DeliveryOptionID); err != nil {
		switch {
		case errors.Is(err, summary.ErrInvalidDeliveryOption):
			response.BadRequest(c, "invalid delivery option")
		case errors.Is(err, summary.ErrItemNotFound):
			response.NotFound(c, "cart item not found")
		default:
			failInternal(c, "cart_delivery_option_failed", "cart update failed", err, "cart_key", store.Key(), "product_id", productID)
		}
		return
	}
	h.renderView(c, store)
}
