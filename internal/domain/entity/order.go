package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the server-authoritative state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// OrderItem is a single line of an order.
type OrderItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ShippingAddress is the address snapshot taken when the order was placed.
type ShippingAddress struct {
	RecipientName  string
	RecipientPhone string
	Province       string
	City           string
	District       string
	Detail         string
	PostalCode     string
}

// Logistics carries the shipment tracking record, if any.
type Logistics struct {
	Carrier        string
	TrackingNumber string
}

// Order is read-mostly; the front-end only requests payment or cancellation.
type Order struct {
	ID              int64
	Number          string
	SubscriptionID  *int64
	Status          OrderStatus
	Total           decimal.Decimal
	Currency        string
	Items           []OrderItem
	ShippingAddress ShippingAddress
	Logistics       *Logistics
	CreatedAt       time.Time
	PaidAt          *time.Time
	ShippedAt       *time.Time
	CompletedAt     *time.Time
}

// CanPay reports whether a payment request makes sense.
func (o *Order) CanPay() bool {
	return o.Status == OrderPending
}

// CanCancel reports whether a cancellation request makes sense.
func (o *Order) CanCancel() bool {
	return o.Status == OrderPending
}

// OrderPage is one page of the order history.
type OrderPage struct {
	Items    []Order
	Total    int
	Page     int
	PageSize int
}

// HasNext reports whether a further page exists.
func (p *OrderPage) HasNext() bool {
	return p.Page*p.PageSize < p.Total
}

// PaymentMethod names a payment provider the API supports.
type PaymentMethod string

const (
	PaymentAlipay PaymentMethod = "alipay"
	PaymentWechat PaymentMethod = "wechat"
)

// PaymentInstruction is what the API returns for a payment request:
// either a redirect URL or an auto-submitting HTML form.
type PaymentInstruction struct {
	PaymentID   int64
	RedirectURL string
	FormHTML    string
}
