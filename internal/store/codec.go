package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"order-ledger/internal/models"
)

const (
	DateLayout     = "02-01-2006"
	DateTimeLayout = "02-01-2006 15:04"

	// DeliveredMarker replaces the scheduled delivery timestamp in the
	// stored record once an order is delivered.
	DeliveredMarker = "DELIVERED"
)

const (
	FieldOrderID       = "Order ID"
	FieldOrderDate     = "Order Date"
	FieldCustomer      = "Customer"
	FieldTotal         = "Total"
	FieldPaid          = "Paid"
	FieldPaymentMethod = "Payment Method"
	FieldPaymentStatus = "Payment Status"
	FieldPaymentDate   = "Payment Date"
	FieldPaymentDue    = "Payment Due Date"
	FieldOrderStatus   = "Order Status"
	FieldDelivery      = "Delivery"

	FieldItemID      = "Item ID"
	FieldProductCode = "Product Code"
	FieldProduct     = "Product"
	FieldQuantity    = "Quantity"
	FieldAmount      = "Amount"

	FieldCode      = "Code"
	FieldName      = "Name"
	FieldUnitPrice = "Unit Price"
	FieldBoxPrice  = "Box Price"
	FieldBoxQty    = "Box Qty"
)

var (
	OrderFields = []string{
		FieldOrderID, FieldOrderDate, FieldCustomer, FieldTotal, FieldPaid,
		FieldPaymentMethod, FieldPaymentStatus, FieldPaymentDate,
		FieldPaymentDue, FieldOrderStatus, FieldDelivery,
	}
	ItemFields = []string{
		FieldItemID, FieldOrderID, FieldProductCode, FieldProduct,
		FieldQuantity, FieldAmount,
	}
	ProductFields = []string{
		FieldCode, FieldName, FieldUnitPrice, FieldBoxPrice, FieldBoxQty,
	}
)

func EncodeOrder(o *models.Order) Record {
	delivery := ""
	switch {
	case o.Status == models.OrderStatusDelivered:
		delivery = DeliveredMarker
	case o.DeliveryAt != nil:
		delivery = o.DeliveryAt.Format(DateTimeLayout)
	}
	return Record{
		FieldOrderID:       strconv.Itoa(o.ID),
		FieldOrderDate:     formatOptional(&o.OrderDate, DateTimeLayout),
		FieldCustomer:      o.CustomerName,
		FieldTotal:         o.TotalAmount.StringFixed(2),
		FieldPaid:          o.PaidAmount.StringFixed(2),
		FieldPaymentMethod: string(o.PaymentMethod),
		FieldPaymentStatus: string(o.PaymentStatus),
		FieldPaymentDate:   formatOptional(o.PaymentDate, DateTimeLayout),
		FieldPaymentDue:    formatOptional(o.PaymentDueDate, DateLayout),
		FieldOrderStatus:   string(o.Status),
		FieldDelivery:      delivery,
	}
}

func DecodeOrder(rec Record) (*models.Order, error) {
	id, err := strconv.Atoi(rec[FieldOrderID])
	if err != nil {
		return nil, fmt.Errorf("order record: bad id %q: %w", rec[FieldOrderID], err)
	}
	total, err := parseMoney(rec[FieldTotal])
	if err != nil {
		return nil, fmt.Errorf("order %d: bad total: %w", id, err)
	}
	paid, err := parseMoney(rec[FieldPaid])
	if err != nil {
		return nil, fmt.Errorf("order %d: bad paid amount: %w", id, err)
	}

	o := &models.Order{
		ID:            id,
		CustomerName:  rec[FieldCustomer],
		TotalAmount:   total,
		PaidAmount:    paid,
		PaymentMethod: models.PaymentMethod(rec[FieldPaymentMethod]),
		PaymentStatus: models.PaymentStatus(rec[FieldPaymentStatus]),
		Status:        models.OrderStatus(rec[FieldOrderStatus]),
	}
	if t, err := parseOptional(rec[FieldOrderDate], DateTimeLayout); err != nil {
		return nil, fmt.Errorf("order %d: bad order date: %w", id, err)
	} else if t != nil {
		o.OrderDate = *t
	}
	if t, err := parseOptional(rec[FieldPaymentDate], DateTimeLayout); err != nil {
		return nil, fmt.Errorf("order %d: bad payment date: %w", id, err)
	} else {
		o.PaymentDate = t
	}
	if t, err := parseOptional(rec[FieldPaymentDue], DateLayout); err != nil {
		return nil, fmt.Errorf("order %d: bad payment due date: %w", id, err)
	} else {
		o.PaymentDueDate = t
	}
	if v := rec[FieldDelivery]; v != "" && v != DeliveredMarker {
		t, err := parseOptional(v, DateTimeLayout)
		if err != nil {
			return nil, fmt.Errorf("order %d: bad delivery: %w", id, err)
		}
		o.DeliveryAt = t
	}
	return o, nil
}

func EncodeLineItem(it *models.LineItem) Record {
	return Record{
		FieldItemID:      strconv.Itoa(it.ID),
		FieldOrderID:     strconv.Itoa(it.OrderID),
		FieldProductCode: it.ProductCode,
		FieldProduct:     it.Label,
		FieldQuantity:    strconv.Itoa(it.Quantity),
		FieldAmount:      it.Amount.StringFixed(2),
	}
}

func DecodeLineItem(rec Record) (*models.LineItem, error) {
	id, err := strconv.Atoi(rec[FieldItemID])
	if err != nil {
		return nil, fmt.Errorf("item record: bad id %q: %w", rec[FieldItemID], err)
	}
	orderID, err := strconv.Atoi(rec[FieldOrderID])
	if err != nil {
		return nil, fmt.Errorf("item %d: bad order id: %w", id, err)
	}
	qty, err := strconv.Atoi(rec[FieldQuantity])
	if err != nil {
		return nil, fmt.Errorf("item %d: bad quantity: %w", id, err)
	}
	amount, err := parseMoney(rec[FieldAmount])
	if err != nil {
		return nil, fmt.Errorf("item %d: bad amount: %w", id, err)
	}
	return &models.LineItem{
		ID:          id,
		OrderID:     orderID,
		ProductCode: rec[FieldProductCode],
		Label:       rec[FieldProduct],
		Mode:        labelMode(rec[FieldProduct]),
		Quantity:    qty,
		Amount:      amount,
	}, nil
}

func DecodeProduct(rec Record) (*models.Product, error) {
	unit, err := parseMoney(rec[FieldUnitPrice])
	if err != nil {
		return nil, fmt.Errorf("product %s: bad unit price: %w", rec[FieldCode], err)
	}
	box, err := parseMoney(rec[FieldBoxPrice])
	if err != nil {
		return nil, fmt.Errorf("product %s: bad box price: %w", rec[FieldCode], err)
	}
	boxQty := 0
	if v := rec[FieldBoxQty]; v != "" {
		boxQty, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("product %s: bad box qty: %w", rec[FieldCode], err)
		}
	}
	return &models.Product{
		Code:      rec[FieldCode],
		Name:      rec[FieldName],
		UnitPrice: unit,
		BoxPrice:  box,
		BoxQty:    boxQty,
	}, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func formatOptional(t *time.Time, layout string) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

func parseOptional(s, layout string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// labelMode recovers the purchase mode from a stored label suffix. Purely
// cosmetic: pricing always goes through the stored product code.
func labelMode(label string) models.PurchaseMode {
	if len(label) >= 4 && label[len(label)-4:] == "(CX)" {
		return models.PurchaseModeBox
	}
	return models.PurchaseModeUnit
}
