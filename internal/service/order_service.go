package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"go.uber.org/zap"

	"order-ledger/internal/catalog"
	"order-ledger/internal/models"
	"order-ledger/internal/repository"
	"order-ledger/internal/store"
)

type orderService struct {
	repo     *repository.Repository
	catalog  catalog.Provider
	prompter Prompter
	log      *zap.Logger
	now      func() time.Time
}

func NewOrderService(repo *repository.Repository, cat catalog.Provider, p Prompter, log *zap.Logger) OrderService {
	return &orderService{
		repo:     repo,
		catalog:  cat,
		prompter: p,
		log:      log,
		now:      time.Now,
	}
}

func (s *orderService) CreateOrder() (*models.Order, error) {
	if err := s.repo.Load(); err != nil {
		return nil, err
	}

	id := s.repo.Orders.NextID()
	now := s.now()

	customer, err := s.prompter.AskText("Customer name")
	if err != nil {
		return nil, err
	}

	var staged []models.LineItem
	if err := s.enterItems(id, &staged); err != nil {
		return nil, err
	}

	total := sumItems(staged)
	if len(staged) == 0 || total.Sign() == 0 {
		return nil, ErrEmptyOrder
	}
	s.prompter.Printf("\nOrder %d total: %s\n", id, total.StringFixed(2))

	method, err := s.choosePaymentMethod()
	if err != nil {
		return nil, err
	}
	payStatus, err := s.choosePaymentStatus()
	if err != nil {
		return nil, err
	}
	ordStatus, err := s.chooseOrderStatus()
	if err != nil {
		return nil, err
	}

	o := &models.Order{
		ID:            id,
		OrderDate:     now,
		CustomerName:  customer,
		TotalAmount:   total,
		PaymentMethod: method,
		PaymentStatus: payStatus,
		Status:        ordStatus,
	}

	if ordStatus == models.OrderStatusPending {
		at, err := s.prompter.AskDateTime("Delivery date and time", func(t time.Time) error {
			return ValidateDeliveryAt(t, s.now())
		})
		if err != nil {
			return nil, err
		}
		o.DeliveryAt = &at
	}

	switch payStatus {
	case models.PaymentStatusPaid:
		o.PaidAmount = total
		o.PaymentDate = &now
	case models.PaymentStatusPartial:
		if err := s.registerPayment(o); err != nil {
			return nil, err
		}
		if o.PaymentStatus == models.PaymentStatusPartial {
			if err := s.captureDueDate(o); err != nil {
				return nil, err
			}
		}
	case models.PaymentStatusPending:
		if err := s.captureDueDate(o); err != nil {
			return nil, err
		}
	}

	s.repo.Orders.Append(o)
	s.repo.Items.AppendAll(staged)
	if err := s.repo.Save(); err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.Int("order_id", o.ID),
		zap.String("customer", o.CustomerName),
		zap.String("total", o.TotalAmount.StringFixed(2)),
		zap.String("payment_status", string(o.PaymentStatus)))
	return o, nil
}

func (s *orderService) EditOrder(id int) (*models.Order, error) {
	if err := s.repo.Load(); err != nil {
		return nil, err
	}
	stored := s.repo.Orders.FindByID(id)
	if stored == nil {
		return nil, ErrOrderNotFound
	}

	// The whole session works on staged copies; the repository and the
	// files change only on the explicit save action below.
	o := stored.Clone()
	items := s.repo.Items.ByOrder(id)

	for {
		o.TotalAmount = sumItems(items)
		s.printSummary(o)

		choice, err := s.prompter.ChooseOne("Edit order", []string{
			"Edit items",
			"Payment",
			"Delivery and order status",
			"Save and finish",
			"Discard changes",
		})
		if err != nil {
			return nil, err
		}

		switch choice {
		case 0:
			if err := s.editItems(o, &items); err != nil {
				return nil, err
			}
		case 1:
			if err := s.editPayment(o); err != nil {
				return nil, err
			}
		case 2:
			if err := s.editDelivery(o); err != nil {
				return nil, err
			}
		case 3:
			if len(items) == 0 {
				s.prompter.Printf("An order needs at least one item; add one or discard the session.\n")
				continue
			}
			o.TotalAmount = sumItems(items)
			if err := s.reconcilePayment(o); err != nil {
				return nil, err
			}
			s.repo.Orders.Replace(o)
			s.repo.Items.ReplaceForOrder(id, items)
			if err := s.repo.Save(); err != nil {
				return nil, err
			}
			s.log.Info("order saved",
				zap.Int("order_id", o.ID),
				zap.String("total", o.TotalAmount.StringFixed(2)),
				zap.String("payment_status", string(o.PaymentStatus)))
			return o, nil
		case 4:
			s.log.Info("edit discarded", zap.Int("order_id", id))
			return nil, ErrCancelled
		}
	}
}

// reconcilePayment re-evaluates the payment status against the recomputed
// total at save time: promote to Paid when fully covered, demote a Paid
// order to Partial when item edits raised the total past the paid amount.
func (s *orderService) reconcilePayment(o *models.Order) error {
	switch {
	case IsPaid(o.TotalAmount, o.PaidAmount) && o.TotalAmount.Sign() > 0:
		o.PaymentStatus = models.PaymentStatusPaid
		o.PaymentDueDate = nil
	case o.PaymentStatus == models.PaymentStatusPaid:
		o.PaymentStatus = models.PaymentStatusPartial
		s.prompter.Printf("The total grew past the paid amount; the order is now partially paid.\n")
		return s.captureDueDate(o)
	}
	return nil
}

func (s *orderService) editPayment(o *models.Order) error {
	method, err := s.choosePaymentMethod()
	if err != nil {
		return err
	}
	o.PaymentMethod = method

	status, err := s.choosePaymentStatus()
	if err != nil {
		return err
	}

	switch status {
	case models.PaymentStatusPaid:
		now := s.now()
		o.PaidAmount = o.TotalAmount
		o.PaymentDate = &now
		o.PaymentDueDate = nil
		o.PaymentStatus = models.PaymentStatusPaid
	case models.PaymentStatusPartial:
		if err := s.registerPayment(o); err != nil {
			return err
		}
		if o.PaymentStatus == models.PaymentStatusPartial {
			if err := s.captureDueDate(o); err != nil {
				return err
			}
		}
	case models.PaymentStatusPending:
		o.PaidAmount = decimal.Zero
		o.PaymentDate = nil
		o.PaymentStatus = models.PaymentStatusPending
		if err := s.captureDueDate(o); err != nil {
			return err
		}
	}
	return nil
}

func (s *orderService) editDelivery(o *models.Order) error {
	idx, err := s.prompter.ChooseOne("Order status", optionStrings(models.OrderStatuses))
	if err != nil {
		return err
	}
	switch models.OrderStatuses[idx] {
	case models.OrderStatusDelivered:
		o.Status = models.OrderStatusDelivered
		if o.DeliveryAt == nil {
			now := s.now()
			o.DeliveryAt = &now
		}
		s.prompter.Printf("Order marked as delivered.\n")
	case models.OrderStatusPending:
		at, err := s.prompter.AskDateTime("Delivery date and time", func(t time.Time) error {
			return ValidateDeliveryAt(t, s.now())
		})
		if err != nil {
			return err
		}
		o.Status = models.OrderStatusPending
		o.DeliveryAt = &at
		s.prompter.Printf("Delivery scheduled.\n")
	}
	return nil
}

func (s *orderService) GetOrder(id int) (*models.Order, []models.LineItem, error) {
	if err := s.repo.Load(); err != nil {
		return nil, nil, err
	}
	o := s.repo.Orders.FindByID(id)
	if o == nil {
		return nil, nil, ErrOrderNotFound
	}
	items := s.repo.Items.ByOrder(id)
	view := o.Clone()
	view.TotalAmount = sumItems(items)
	return view, items, nil
}

func (s *orderService) ListOrders() ([]*models.Order, error) {
	if err := s.repo.Load(); err != nil {
		return nil, err
	}
	return s.repo.Orders.All(), nil
}

func (s *orderService) CustomerSummary() ([]CustomerTotals, error) {
	if err := s.repo.Load(); err != nil {
		return nil, err
	}
	byName := map[string]*CustomerTotals{}
	for _, o := range s.repo.Orders.All() {
		row := byName[o.CustomerName]
		if row == nil {
			row = &CustomerTotals{Customer: o.CustomerName, Total: decimal.Zero, Paid: decimal.Zero, Outstanding: decimal.Zero}
			byName[o.CustomerName] = row
		}
		row.Orders++
		row.Total = row.Total.Add(o.TotalAmount)
		row.Paid = row.Paid.Add(o.PaidAmount)
		row.Outstanding = row.Outstanding.Add(o.Outstanding())
	}

	rows := make([]CustomerTotals, 0, len(byName))
	for _, row := range byName {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Customer < rows[j].Customer })
	return rows, nil
}

func (s *orderService) printSummary(o *models.Order) {
	s.prompter.Printf("\nEditing order %d\n", o.ID)
	s.prompter.Printf("Customer: %s\n", o.CustomerName)
	s.prompter.Printf("Total: %s | Paid: %s\n", o.TotalAmount.StringFixed(2), o.PaidAmount.StringFixed(2))
	s.prompter.Printf("Payment: %s (%s)", o.PaymentStatus, o.PaymentMethod)
	if o.PaymentDueDate != nil {
		s.prompter.Printf(" | due %s", o.PaymentDueDate.Format(store.DateLayout))
	}
	s.prompter.Printf("\nOrder status: %s\n", o.Status)
}

func (s *orderService) choosePaymentMethod() (models.PaymentMethod, error) {
	idx, err := s.prompter.ChooseOne("Payment method", optionStrings(models.PaymentMethods))
	if err != nil {
		return "", err
	}
	return models.PaymentMethods[idx], nil
}

func (s *orderService) choosePaymentStatus() (models.PaymentStatus, error) {
	idx, err := s.prompter.ChooseOne("Payment status", optionStrings(models.PaymentStatuses))
	if err != nil {
		return "", err
	}
	return models.PaymentStatuses[idx], nil
}

func (s *orderService) chooseOrderStatus() (models.OrderStatus, error) {
	idx, err := s.prompter.ChooseOne("Order status", optionStrings(models.OrderStatuses))
	if err != nil {
		return "", err
	}
	return models.OrderStatuses[idx], nil
}

func optionStrings[T ~string](options []T) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = string(o)
	}
	return out
}
