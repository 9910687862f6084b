package summary

import (
	"context"
	"errors"
	"strings"

	"github.com/checkout-next/internal/cart"
	"github.com/checkout-next/internal/catalog"
	"github.com/checkout-next/internal/constants"
	"github.com/checkout-next/internal/logger"
	"github.com/checkout-next/internal/models"
	"github.com/checkout-next/internal/pricing"

	"github.com/shopspring/decimal"
)

var (
	// ErrQuantityOutOfRange 编辑边界校验失败（数量必须在 [1, 1000) 区间）
	ErrQuantityOutOfRange = errors.New("quantity must be at least 1 and less than 1000")
	// ErrItemNotFound 操作指向的条目已不在购物车中
	ErrItemNotFound = errors.New("cart item not found")
	// ErrInvalidDeliveryOption 配送方式未通过目录校验
	ErrInvalidDeliveryOption = errors.New("invalid delivery option")
)

// View 一次完整渲染的输出：两个派生视图加页头，始终来自同一份购物车快照。
type View struct {
	OrderSummaryHTML   string         `json:"order_summary_html"`
	PaymentSummaryHTML string         `json:"payment_summary_html"`
	CheckoutHeaderHTML string         `json:"checkout_header_html"`
	Totals             TotalsView     `json:"totals"`
}

// TotalsView 合计的对外表示（金额为格式化字符串）
type TotalsView struct {
	ItemCount int    `json:"item_count"`
	Subtotal  string `json:"subtotal"`
	Shipping  string `json:"shipping"`
	BeforeTax string `json:"before_tax"`
	Tax       string `json:"tax"`
	Total     string `json:"total"`
}

type orderItemView struct {
	ProductID    string
	DeliveryDate string
	Name         string
	Image        string
	Price        string
	Quantity     int
	Editing      bool
	Options      []deliveryOptionView
}

type deliveryOptionView struct {
	ID        string
	ProductID string
	Date      string
	Price     string
	Checked   bool
}

// Presenter 从购物车和目录渲染订单摘要与支付摘要两个派生视图，
// 并承载条目数量编辑的界面状态机与边界校验。
type Presenter struct {
	products catalog.ProductCatalog
	delivery catalog.DeliveryCatalog
	dates    *catalog.DateCalculator
	pricing  *pricing.Aggregator
	taxRate  float64
	state    *editState
}

// NewPresenter 创建摘要渲染器
func NewPresenter(
	products catalog.ProductCatalog,
	delivery catalog.DeliveryCatalog,
	dates *catalog.DateCalculator,
	aggregator *pricing.Aggregator,
	taxRate float64,
) *Presenter {
	return &Presenter{
		products: products,
		delivery: delivery,
		dates:    dates,
		pricing:  aggregator,
		taxRate:  taxRate,
		state:    newEditState(),
	}
}

// Render 对当前购物车状态做一次完整渲染。两个视图在同一次调用中
// 从同一份条目副本推导，这是变更后视图一致性的来源。
func (p *Presenter) Render(store *cart.Store) (View, error) {
	items := store.Items()

	orderHTML, err := p.renderOrderSummary(store.Key(), items)
	if err != nil {
		return View{}, err
	}
	paymentHTML, totals, err := p.renderPaymentSummary(items)
	if err != nil {
		return View{}, err
	}
	// 页头计数取购物车原始数量。目录里找不到的条目会被计价跳过，
	// 但仍然在购物车里，页头要如实反映。
	headerHTML, err := p.renderCheckoutHeader(store.TotalQuantity())
	if err != nil {
		return View{}, err
	}

	return View{
		OrderSummaryHTML:   orderHTML,
		PaymentSummaryHTML: paymentHTML,
		CheckoutHeaderHTML: headerHTML,
		Totals:             totals,
	}, nil
}

// BeginEdit 将条目切换到编辑态（Viewing -> Editing）
func (p *Presenter) BeginEdit(store *cart.Store, productID string) error {
	if !containsProduct(store.Items(), productID) {
		return ErrItemNotFound
	}
	p.state.begin(store.Key(), productID)
	return nil
}

// SaveEdit 校验并提交数量编辑。校验失败时条目保持编辑态且购物车不变；
// 提交成功后条目回到查看态。
func (p *Presenter) SaveEdit(ctx context.Context, store *cart.Store, productID string, quantity int) error {
	if quantity < constants.MinLineItemQuantity || quantity > constants.MaxLineItemQuantity {
		return ErrQuantityOutOfRange
	}

	result, err := store.SetQuantity(ctx, productID, quantity)
	if err != nil {
		return err
	}
	if result == cart.NotFound {
		logger.Warnw("quantity_edit_stale_item", "cart_key", store.Key(), "product_id", productID)
		return ErrItemNotFound
	}

	p.state.finish(store.Key(), productID)
	return nil
}

// SelectDeliveryOption 配送方式选择是无状态交互：直接提交，无中间挂起状态。
func (p *Presenter) SelectDeliveryOption(ctx context.Context, store *cart.Store, productID, deliveryOptionID string) error {
	result, err := store.SetDeliveryOption(ctx, productID, deliveryOptionID)
	if err != nil {
		return err
	}
	switch result {
	case cart.NotFound:
		logger.Warnw("delivery_option_stale_item", "cart_key", store.Key(), "product_id", productID)
		return ErrItemNotFound
	case cart.InvalidOption:
		return ErrInvalidDeliveryOption
	}
	return nil
}

// IsEditing 判断条目当前是否处于编辑态
func (p *Presenter) IsEditing(store *cart.Store, productID string) bool {
	return p.state.isEditing(store.Key(), productID)
}

func (p *Presenter) renderOrderSummary(cartKey string, items []cart.LineItem) (string, error) {
	views := make([]orderItemView, 0, len(items))
	allOptions := p.delivery.ListDeliveryOptions()

	for _, item := range items {
		if item.ProductID == "" {
			logger.Warnw("order_summary_item_missing_id", "cart_key", cartKey)
			continue
		}
		product, ok := p.products.GetProduct(item.ProductID)
		if !ok {
			logger.Warnw("order_summary_product_missing", "cart_key", cartKey, "product_id", item.ProductID)
			continue
		}
		option, ok := p.delivery.GetDeliveryOption(item.DeliveryOptionID)
		if !ok {
			logger.Warnw("order_summary_delivery_option_missing",
				"cart_key", cartKey,
				"product_id", item.ProductID,
				"delivery_option_id", item.DeliveryOptionID,
			)
			continue
		}

		optionViews := make([]deliveryOptionView, 0, len(allOptions))
		for _, candidate := range allOptions {
			price := "FREE"
			if candidate.PriceCents > 0 {
				price = "$" + models.FormatCents(candidate.PriceCents)
			}
			optionViews = append(optionViews, deliveryOptionView{
				ID:        candidate.ID,
				ProductID: item.ProductID,
				Date:      p.dates.CalculateDeliveryDate(&candidate),
				Price:     price,
				Checked:   candidate.ID == item.DeliveryOptionID,
			})
		}

		views = append(views, orderItemView{
			ProductID:    item.ProductID,
			DeliveryDate: p.dates.CalculateDeliveryDate(option),
			Name:         product.Name,
			Image:        product.Image,
			Price:        models.FormatCents(product.PriceCents),
			Quantity:     item.Quantity,
			Editing:      p.state.isEditing(cartKey, item.ProductID),
			Options:      optionViews,
		})
	}

	var builder strings.Builder
	if err := orderSummaryTemplate.Execute(&builder, struct{ Items []orderItemView }{Items: views}); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func (p *Presenter) renderPaymentSummary(items []cart.LineItem) (string, TotalsView, error) {
	totals := p.pricing.Totals(items)
	view := TotalsView{
		ItemCount: totals.ItemCount,
		Subtotal:  models.FormatCents(totals.SubtotalCents),
		Shipping:  models.FormatCents(totals.ShippingCents),
		BeforeTax: models.FormatCents(totals.TotalBeforeTaxCents),
		Tax:       models.FormatCentsDecimal(totals.TaxCents),
		Total:     models.FormatCentsDecimal(totals.TotalCents),
	}

	taxPercent := decimal.NewFromFloat(p.taxRate).Mul(decimal.NewFromInt(100))
	var builder strings.Builder
	err := paymentSummaryTemplate.Execute(&builder, struct {
		ItemCount  int
		Subtotal   string
		Shipping   string
		BeforeTax  string
		Tax        string
		Total      string
		TaxPercent string
	}{
		ItemCount:  view.ItemCount,
		Subtotal:   view.Subtotal,
		Shipping:   view.Shipping,
		BeforeTax:  view.BeforeTax,
		Tax:        view.Tax,
		Total:      view.Total,
		TaxPercent: strings.TrimSuffix(strings.TrimRight(taxPercent.StringFixed(2), "0"), "."),
	})
	if err != nil {
		return "", TotalsView{}, err
	}
	return builder.String(), view, nil
}

func (p *Presenter) renderCheckoutHeader(itemCount int) (string, error) {
	var builder strings.Builder
	if err := checkoutHeaderTemplate.Execute(&builder, struct{ ItemCount int }{ItemCount: itemCount}); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func containsProduct(items []cart.LineItem, productID string) bool {
	return indexOfProduct(items, productID) >= 0
}

func indexOfProduct(items []cart.LineItem, productID string) int {
	for i, item := range items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
