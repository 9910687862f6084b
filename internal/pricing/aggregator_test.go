package pricing

import (
	"testing"

	"github.com/checkout-next/internal/cart"
	"github.com/checkout-next/internal/models"

	"github.com/shopspring/decimal"
)

type fakeProductCatalog struct {
	products map[string]models.Product
}

func (c *fakeProductCatalog) GetProduct(id string) (*models.Product, bool) {
	product, ok := c.products[id]
	if !ok {
		return nil, false
	}
	return &product, true
}

type fakeDeliveryCatalog struct {
	options map[string]models.DeliveryOption
}

func (c *fakeDeliveryCatalog) GetDeliveryOption(id string) (*models.DeliveryOption, bool) {
	option, ok := c.options[id]
	if !ok {
		return nil, false
	}
	return &option, true
}

func (c *fakeDeliveryCatalog) ValidDeliveryOption(id string) bool {
	_, ok := c.options[id]
	return ok
}

func (c *fakeDeliveryCatalog) ListDeliveryOptions() []models.DeliveryOption {
	options := make([]models.DeliveryOption, 0, len(c.options))
	for _, option := range c.options {
		options = append(options, option)
	}
	return options
}

func newTestAggregator() *Aggregator {
	products := &fakeProductCatalog{products: map[string]models.Product{
		"p1": {ID: "p1", Name: "Socks", PriceCents: 1000},
		"p2": {ID: "p2", Name: "Basketball", PriceCents: 2000},
	}}
	delivery := &fakeDeliveryCatalog{options: map[string]models.DeliveryOption{
		"free": {ID: "free", DeliveryDays: 7, PriceCents: 0},
		"paid": {ID: "paid", DeliveryDays: 1, PriceCents: 500},
	}}
	return NewAggregator(products, delivery, 0.1)
}

func TestTotalsKnownFixture(t *testing.T) {
	agg := newTestAggregator()

	totals := agg.Totals([]cart.LineItem{
		{ProductID: "p1", Quantity: 2, DeliveryOptionID: "free"},
		{ProductID: "p2", Quantity: 1, DeliveryOptionID: "paid"},
	})

	if totals.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", totals.ItemCount)
	}
	if totals.SubtotalCents != 4000 {
		t.Fatalf("expected subtotal 4000, got %d", totals.SubtotalCents)
	}
	if totals.ShippingCents != 500 {
		t.Fatalf("expected shipping 500, got %d", totals.ShippingCents)
	}
	if totals.TotalBeforeTaxCents != 4500 {
		t.Fatalf("expected before-tax 4500, got %d", totals.TotalBeforeTaxCents)
	}
	if !totals.TaxCents.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected tax 450, got %s", totals.TaxCents.String())
	}
	if !totals.TotalCents.Equal(decimal.NewFromInt(4950)) {
		t.Fatalf("expected total 4950, got %s", totals.TotalCents.String())
	}
	if models.FormatCentsDecimal(totals.TotalCents) != "49.50" {
		t.Fatalf("expected formatted total 49.50, got %s", models.FormatCentsDecimal(totals.TotalCents))
	}
}

func TestTotalsShippingCountedPerLineItemNotPerUnit(t *testing.T) {
	agg := newTestAggregator()

	totals := agg.Totals([]cart.LineItem{
		{ProductID: "p1", Quantity: 10, DeliveryOptionID: "paid"},
	})

	if totals.ShippingCents != 500 {
		t.Fatalf("expected shipping once per line item (500), got %d", totals.ShippingCents)
	}
}

func TestTotalsSkipsUnknownProduct(t *testing.T) {
	agg := newTestAggregator()

	totals := agg.Totals([]cart.LineItem{
		{ProductID: "ghost", Quantity: 4, DeliveryOptionID: "paid"},
		{ProductID: "p1", Quantity: 1, DeliveryOptionID: "free"},
	})

	if totals.ItemCount != 1 {
		t.Fatalf("expected skipped item to contribute nothing, item count %d", totals.ItemCount)
	}
	if totals.SubtotalCents != 1000 {
		t.Fatalf("expected subtotal 1000, got %d", totals.SubtotalCents)
	}
	if totals.ShippingCents != 0 {
		t.Fatalf("expected shipping 0, got %d", totals.ShippingCents)
	}
}

func TestTotalsSkipsUnknownDeliveryOption(t *testing.T) {
	agg := newTestAggregator()

	totals := agg.Totals([]cart.LineItem{
		{ProductID: "p1", Quantity: 2, DeliveryOptionID: "nonexistent"},
	})

	if totals.ItemCount != 0 || totals.SubtotalCents != 0 || totals.ShippingCents != 0 {
		t.Fatalf("expected whole line item skipped, got %+v", totals)
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	agg := newTestAggregator()

	totals := agg.Totals(nil)
	if totals.ItemCount != 0 || totals.TotalBeforeTaxCents != 0 {
		t.Fatalf("expected zero totals for empty cart, got %+v", totals)
	}
	if !totals.TaxCents.IsZero() || !totals.TotalCents.IsZero() {
		t.Fatalf("expected zero tax and total, got %s / %s", totals.TaxCents, totals.TotalCents)
	}
}
