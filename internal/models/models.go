package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPartial PaymentStatus = "Partial"
)

type PaymentMethod string

const (
	PaymentMethodPix      PaymentMethod = "Pix"
	PaymentMethodCash     PaymentMethod = "Cash"
	PaymentMethodDeferred PaymentMethod = "Deferred"
)

type OrderStatus string

const (
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusPending   OrderStatus = "Pending"
)

// PurchaseMode selects which catalog price a line item is charged at.
type PurchaseMode string

const (
	PurchaseModeUnit PurchaseMode = "UN"
	PurchaseModeBox  PurchaseMode = "CX"
)

// Menu option sets, in the order they are offered to the user.
var (
	PaymentStatuses = []PaymentStatus{PaymentStatusPaid, PaymentStatusPending, PaymentStatusPartial}
	PaymentMethods  = []PaymentMethod{PaymentMethodPix, PaymentMethodCash, PaymentMethodDeferred}
	OrderStatuses   = []OrderStatus{OrderStatusDelivered, OrderStatusPending}
	PurchaseModes   = []PurchaseMode{PurchaseModeUnit, PurchaseModeBox}
)

type Order struct {
	ID           int
	OrderDate    time.Time
	CustomerName string

	// TotalAmount is derived from the order's line items and is never
	// edited directly.
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal

	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	// PaymentDate is the timestamp of the most recent payment, nil before
	// any payment is registered.
	PaymentDate *time.Time
	// PaymentDueDate is set only while PaymentStatus is Pending or Partial
	// and never lies past OrderDate + 30 days.
	PaymentDueDate *time.Time

	Status OrderStatus
	// DeliveryAt is the scheduled delivery for a pending order, or the
	// completion timestamp once delivered.
	DeliveryAt *time.Time
}

// Clone returns a copy safe to mutate in a staged editing session. Pointer
// fields are only ever replaced, never written through, so a shallow copy
// is enough.
func (o *Order) Clone() *Order {
	c := *o
	return &c
}

// Outstanding is the unpaid remainder of the order.
func (o *Order) Outstanding() decimal.Decimal {
	return o.TotalAmount.Sub(o.PaidAmount)
}

type LineItem struct {
	ID      int
	OrderID int
	// ProductCode is the catalog reference the item was priced from. The
	// label is display-only and never used to look the product back up.
	ProductCode string
	Label       string
	Mode        PurchaseMode
	Quantity    int
	// Amount is quantity × unit or box price, frozen at entry/edit time.
	Amount decimal.Decimal
}

// ItemLabel renders the display label for a line, e.g. "Flour 5kg (CX)".
func ItemLabel(productName string, mode PurchaseMode) string {
	return productName + " (" + string(mode) + ")"
}

// Product is a read-only catalog entry.
type Product struct {
	Code      string
	Name      string
	UnitPrice decimal.Decimal
	BoxPrice  decimal.Decimal
	// BoxQty is how many units a box holds, shown in catalog listings.
	BoxQty int
}

// Price returns the catalog price for the given purchase mode.
func (p *Product) Price(mode PurchaseMode) decimal.Decimal {
	if mode == PurchaseModeBox {
		return p.BoxPrice
	}
	return p.UnitPrice
}
