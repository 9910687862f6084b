package checkout

import (
	"errors"

	"github.com/checkout-next/internal/http/response"
	"github.com/checkout-next/internal/logger"
	"github.com/checkout-next/internal/orders"

	"github.com/gin-gonic/gin"
)

// PlaceOrder 提交当前购物车下单。
// 只有远端确认成功才返回跳转地址；失败时购物车保持原样，接口可重试。
func (h *Handler) PlaceOrder(c *gin.Context) {
	store := h.resolveCart(c)
	items := store.Items()
	if len(items) == 0 {
		response.BadRequest(c, "cart is empty")
		return
	}

	confirmation, err := h.Orders.Place(c.Request.Context(), store.Key(), items)
	if err != nil {
		logger.Warnw("order_place_failed", "cart_key", store.Key(), "error", err)
		switch {
		case errors.Is(err, orders.ErrOrderRejected):
			response.ErrorWithData(c, response.CodeUpstreamFailed, "order rejected", gin.H{"retryable": true})
		case errors.Is(err, orders.ErrOrderRequestFailed):
			response.ErrorWithData(c, response.CodeUpstreamFailed, "order request failed", gin.H{"retryable": true})
		default:
			response.Error(c, response.CodeInternal, "order placement failed")
		}
		return
	}

	response.SuccessWithMsg(c, "order placed", gin.H{
		"order_id": confirmation.OrderID,
		"redirect": h.Config.Checkout.OrdersRedirectPath,
	})
}

// ListOrders 本地订单历史
func (h *Handler) ListOrders(c *gin.Context) {
	records, err := h.Orders.History()
	if err != nil {
		failInternal(c, "order_history_list_failed", "order history unavailable", err)
		return
	}
	response.Success(c, gin.H{"orders": records})
}
