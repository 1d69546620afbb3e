package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"order-ledger/internal/models"
	"order-ledger/internal/service"
	"order-ledger/internal/store"
)

// Menu is the top-level interactive loop.
type Menu struct {
	svc service.OrderService
	p   *StdinPrompter
	log *zap.Logger
}

func NewMenu(svc service.OrderService, p *StdinPrompter, log *zap.Logger) *Menu {
	return &Menu{svc: svc, p: p, log: log}
}

func (m *Menu) Run() error {
	for {
		choice, err := m.p.ChooseOne("Order Manager", []string{
			"New order",
			"View all orders",
			"Find order by ID",
			"Edit order",
			"Customer report",
			"Quit",
		})
		if errors.Is(err, service.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			m.createOrder()
		case 1:
			m.listOrders()
		case 2:
			m.findOrder()
		case 3:
			m.editOrder()
		case 4:
			m.customerReport()
		case 5:
			m.p.Printf("Bye!\n")
			return nil
		}
	}
}

func (m *Menu) createOrder() {
	o, err := m.svc.CreateOrder()
	switch {
	case errors.Is(err, service.ErrEmptyOrder):
		m.p.Printf("Order has no items, nothing was saved.\n")
	case errors.Is(err, service.ErrCancelled):
		m.p.Printf("Order creation cancelled, nothing was saved.\n")
	case err != nil:
		m.p.Printf("Could not create the order: %v\n", err)
		m.log.Error("create order failed", zap.Error(err))
	default:
		m.p.Printf("Order %d saved.\n", o.ID)
	}
}

func (m *Menu) editOrder() {
	id, err := m.p.AskInt("Order ID to edit", nil)
	if err != nil {
		return
	}
	o, err := m.svc.EditOrder(id)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		m.p.Printf("Order %d was not found.\n", id)
	case errors.Is(err, service.ErrCancelled):
		m.p.Printf("Edit discarded, order %d is unchanged.\n", id)
	case err != nil:
		m.p.Printf("Could not edit the order: %v\n", err)
		m.log.Error("edit order failed", zap.Int("order_id", id), zap.Error(err))
	default:
		m.p.Printf("Order %d saved.\n", o.ID)
	}
}

func (m *Menu) listOrders() {
	orders, err := m.svc.ListOrders()
	if err != nil {
		m.p.Printf("Could not load orders: %v\n", err)
		m.log.Error("list orders failed", zap.Error(err))
		return
	}
	if len(orders) == 0 {
		m.p.Printf("No orders yet.\n")
		return
	}

	w := tabwriter.NewWriter(m.p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDate\tCustomer\tTotal\tPaid\tPayment\tMethod\tDue\tStatus\tDelivery")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID,
			o.OrderDate.Format(store.DateTimeLayout),
			o.CustomerName,
			o.TotalAmount.StringFixed(2),
			o.PaidAmount.StringFixed(2),
			o.PaymentStatus,
			o.PaymentMethod,
			fmtDate(o.PaymentDueDate),
			o.Status,
			deliveryColumn(o),
		)
	}
	w.Flush()
}

func (m *Menu) findOrder() {
	id, err := m.p.AskInt("Order ID", nil)
	if err != nil {
		return
	}
	o, items, err := m.svc.GetOrder(id)
	if errors.Is(err, service.ErrOrderNotFound) {
		m.p.Printf("Order %d was not found.\n", id)
		return
	}
	if err != nil {
		m.p.Printf("Could not load the order: %v\n", err)
		m.log.Error("find order failed", zap.Int("order_id", id), zap.Error(err))
		return
	}

	m.p.Printf("\nOrder %d — %s\n", o.ID, o.CustomerName)
	m.p.Printf("Placed: %s\n", o.OrderDate.Format(store.DateTimeLayout))
	m.p.Printf("Payment: %s via %s", o.PaymentStatus, o.PaymentMethod)
	if o.PaymentDate != nil {
		m.p.Printf(", last payment %s", o.PaymentDate.Format(store.DateTimeLayout))
	}
	if o.PaymentDueDate != nil {
		m.p.Printf(", due %s", o.PaymentDueDate.Format(store.DateLayout))
	}
	m.p.Printf("\nStatus: %s | Delivery: %s\n", o.Status, deliveryColumn(o))
	m.p.Printf("\nItems:\n")
	for _, it := range items {
		m.p.Printf("  %s | qty %d | %s\n", it.Label, it.Quantity, it.Amount.StringFixed(2))
	}
	m.p.Printf("\nTotal:       %s\n", o.TotalAmount.StringFixed(2))
	m.p.Printf("Paid:        %s\n", o.PaidAmount.StringFixed(2))
	m.p.Printf("Outstanding: %s\n", o.Outstanding().StringFixed(2))
}

func (m *Menu) customerReport() {
	rows, err := m.svc.CustomerSummary()
	if err != nil {
		m.p.Printf("Could not build the report: %v\n", err)
		m.log.Error("customer report failed", zap.Error(err))
		return
	}
	if len(rows) == 0 {
		m.p.Printf("No orders yet.\n")
		return
	}

	w := tabwriter.NewWriter(m.p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Customer\tOrders\tTotal\tPaid\tOutstanding")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			r.Customer, r.Orders,
			r.Total.StringFixed(2), r.Paid.StringFixed(2), r.Outstanding.StringFixed(2))
	}
	w.Flush()
}

func deliveryColumn(o *models.Order) string {
	if o.Status == models.OrderStatusDelivered {
		return store.DeliveredMarker
	}
	return fmtDateTime(o.DeliveryAt)
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(store.DateLayout)
}

func fmtDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(store.DateTimeLayout)
}
