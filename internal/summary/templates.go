package summary

import (
	"html/template"
)

// 两个派生视图都整体替换：模板渲染的是完整片段，不做任何节点级局部更新。

var orderSummaryTemplate = template.Must(template.New("order-summary").Parse(`{{range .Items}}<div class="cart-item-container js-cart-item-container-{{.ProductID}}{{if .Editing}} is-editing-quantity{{end}}">
  <div class="delivery-date">Delivery date: {{.DeliveryDate}}</div>
  <div class="cart-item-details-grid">
    <img class="product-image" src="{{.Image}}">
    <div class="cart-item-details">
      <div class="product-name">{{.Name}}</div>
      <div class="product-price">${{.Price}}</div>
      <div class="product-quantity">
        <span>Quantity: <span class="quantity-label">{{.Quantity}}</span></span>
        <span class="update-quantity-link link-primary js-update-link" data-product-id="{{.ProductID}}">Update</span>
        <input class="quantity-input js-quantity-input-{{.ProductID}}">
        <span class="save-quantity-link link-primary js-save-link" data-product-id="{{.ProductID}}">Save</span>
        <span class="delete-quantity-link link-primary js-delete-link" data-product-id="{{.ProductID}}">Delete</span>
      </div>
    </div>
    <div class="delivery-options">
      <div class="delivery-options-title">Choose a delivery option:</div>
      {{range .Options}}<div class="delivery-option js-delivery-option" data-product-id="{{.ProductID}}" data-delivery-option-id="{{.ID}}">
        <input type="radio"{{if .Checked}} checked{{end}} class="delivery-option-input" name="delivery-option-{{.ProductID}}">
        <div>
          <div class="delivery-option-date">{{.Date}}</div>
          <div class="delivery-option-price">{{.Price}} - Shipping</div>
        </div>
      </div>
      {{end}}
    </div>
  </div>
</div>
{{end}}`))

var paymentSummaryTemplate = template.Must(template.New("payment-summary").Parse(`<div class="payment-summary-title">Order Summary</div>
<div class="payment-summary-row">
  <div>Items ({{.ItemCount}}):</div>
  <div class="payment-summary-money">${{.Subtotal}}</div>
</div>
<div class="payment-summary-row">
  <div>Shipping &amp; handling:</div>
  <div class="payment-summary-money js-payment-summary-shipping">${{.Shipping}}</div>
</div>
<div class="payment-summary-row subtotal-row">
  <div>Total before tax:</div>
  <div class="payment-summary-money">${{.BeforeTax}}</div>
</div>
<div class="payment-summary-row">
  <div>Estimated tax ({{.TaxPercent}}%):</div>
  <div class="payment-summary-money">${{.Tax}}</div>
</div>
<div class="payment-summary-row total-row">
  <div>Order total:</div>
  <div class="payment-summary-money js-payment-summary-total">${{.Total}}</div>
</div>
<button class="place-order-button button-primary js-place-order">Place your order</button>
`))

var checkoutHeaderTemplate = template.Must(template.New("checkout-header").Parse(`<div class="checkout-header-middle-section">Checkout (<a class="return-to-home-link" href="index.html">{{.ItemCount}} items</a>)</div>
`))
