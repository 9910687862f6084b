package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/checkout-next/internal/cart"
	"github.com/checkout-next/internal/logger"
	"github.com/checkout-next/internal/models"
	"github.com/checkout-next/internal/repository"

	"github.com/google/uuid"
)

var (
	// ErrOrderRequestFailed 下单请求未能送达远端（网络错误、超时、编码失败）
	ErrOrderRequestFailed = errors.New("order request failed")
	// ErrOrderRejected 远端收到请求但返回了非 2xx 状态
	ErrOrderRejected = errors.New("order rejected by remote")
)

const defaultTimeout = 10 * time.Second

// orderRequest 远端下单接口的请求体
type orderRequest struct {
	Cart orderRequestCart `json:"cart"`
}

type orderRequestCart struct {
	CartItems []cart.LineItem `json:"cartItems"`
}

// Confirmation 一次成功下单的确认内容
type Confirmation struct {
	OrderID string // 订单ID（远端返回，缺失时本地生成）
	Payload string // 远端响应原始 JSON
}

// Client 远端下单接口客户端
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	orderRepo  repository.OrderRepository
}

// NewClient 创建下单客户端。timeout 为零时使用默认超时。
func NewClient(baseURL string, timeout time.Duration, orderRepo repository.OrderRepository) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		timeout:    timeout,
		httpClient: http.DefaultClient,
		orderRepo:  orderRepo,
	}
}

// Place 提交购物车下单并把确认内容追加进本地订单历史。
// 远端失败时不写历史、不动购物车，调用方保持可重试。
func (c *Client) Place(ctx context.Context, cartKey string, items []cart.LineItem) (*Confirmation, error) {
	confirmation, err := c.submit(ctx, items)
	if err != nil {
		return nil, err
	}

	record := &models.Order{
		ID:          confirmation.OrderID,
		CartKey:     cartKey,
		PayloadJSON: confirmation.Payload,
		CreatedAt:   time.Now(),
	}
	if c.orderRepo != nil {
		if err := c.orderRepo.Create(record); err != nil {
			// 远端已确认，历史写入失败只记日志，不把下单判为失败
			logger.Errorw("order_history_append_failed", "order_id", confirmation.OrderID, "error", err)
		}
	}

	logger.Infow("order_placed", "order_id", confirmation.OrderID, "cart_key", cartKey, "item_kinds", len(items))
	return confirmation, nil
}

// History 按创建时间倒序返回本地订单历史
func (c *Client) History() ([]models.Order, error) {
	if c.orderRepo == nil {
		return nil, nil
	}
	return c.orderRepo.List()
}

func (c *Client) submit(ctx context.Context, items []cart.LineItem) (*Confirmation, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	payload := orderRequest{Cart: orderRequestCart{CartItems: items}}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request failed", ErrOrderRequestFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request failed", ErrOrderRequestFailed)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response failed", ErrOrderRequestFailed)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrOrderRejected, resp.StatusCode)
	}

	// 2xx 但确认内容不是 JSON 对象（例如代理返回的 HTML 错误页）
	// 同样算提交失败：不写历史、不返回跳转。
	var parsed map[string]interface{}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed confirmation body", ErrOrderRequestFailed)
	}

	return &Confirmation{
		OrderID: confirmationOrderID(parsed),
		Payload: string(respBody),
	}, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// confirmationOrderID 从已解析的确认对象取订单ID，兼容 id / orderId 两种字段名；
// 确认合法但缺少ID时本地生成 UUID，保证历史记录有主键。
func confirmationOrderID(parsed map[string]interface{}) string {
	for _, field := range []string{"id", "orderId"} {
		if value, ok := parsed[field].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return uuid.NewString()
}
