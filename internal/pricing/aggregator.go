package pricing

import (
	"github.com/checkout-next/internal/cart"
	"github.com/checkout-next/internal/catalog"
	"github.com/checkout-next/internal/logger"

	"github.com/shopspring/decimal"
)

// Totals 派生的合计值对象。每次变更后重新计算，从不跨变更缓存。
// 税额与总额在格式化前保留完整小数。
type Totals struct {
	ItemCount           int
	SubtotalCents       int64
	ShippingCents       int64
	TotalBeforeTaxCents int64
	TaxCents            decimal.Decimal
	TotalCents          decimal.Decimal
}

// Aggregator 无状态合计计算器
type Aggregator struct {
	products catalog.ProductCatalog
	delivery catalog.DeliveryCatalog
	taxRate  decimal.Decimal
}

// NewAggregator 创建合计计算器。taxRate 是税前合计的比例（如 0.1）。
func NewAggregator(products catalog.ProductCatalog, delivery catalog.DeliveryCatalog, taxRate float64) *Aggregator {
	return &Aggregator{
		products: products,
		delivery: delivery,
		taxRate:  decimal.NewFromFloat(taxRate),
	}
}

// Totals 对条目做单次遍历：商品单价×数量累入小计，配送运费按条目（而非件数）累入运费。
// 商品或配送方式在目录中缺失的条目整条跳过并记录告警，不中断其余条目。
func (a *Aggregator) Totals(items []cart.LineItem) Totals {
	totals := Totals{}

	for _, item := range items {
		product, ok := a.products.GetProduct(item.ProductID)
		if !ok {
			logger.Warnw("pricing_product_missing", "product_id", item.ProductID)
			continue
		}
		option, ok := a.delivery.GetDeliveryOption(item.DeliveryOptionID)
		if !ok {
			logger.Warnw("pricing_delivery_option_missing",
				"product_id", item.ProductID,
				"delivery_option_id", item.DeliveryOptionID,
			)
			continue
		}

		totals.ItemCount += item.Quantity
		totals.SubtotalCents += product.PriceCents * int64(item.Quantity)
		totals.ShippingCents += option.PriceCents
	}

	totals.TotalBeforeTaxCents = totals.SubtotalCents + totals.ShippingCents
	totals.TaxCents = decimal.NewFromInt(totals.TotalBeforeTaxCents).Mul(a.taxRate)
	totals.TotalCents = decimal.NewFromInt(totals.TotalBeforeTaxCents).Add(totals.TaxCents)
	return totals
}
