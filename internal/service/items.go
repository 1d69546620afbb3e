package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"order-ledger/internal/models"
)

// enterItems runs the interactive item-entry session against the catalog,
// appending accepted entries to the staged slice. Nothing touches the
// repository here; the enclosing operation commits on save.
func (s *orderService) enterItems(orderID int, staged *[]models.LineItem) error {
	products, err := s.catalog.List()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		s.prompter.Printf("The product catalog is empty, no items can be added.\n")
		return nil
	}

	for {
		s.prompter.Printf("\nAvailable products:\n")
		for _, p := range products {
			s.prompter.Printf("  [%s] %s | UN: %s | CX (%d un): %s\n",
				p.Code, p.Name, p.UnitPrice.StringFixed(2), p.BoxQty, p.BoxPrice.StringFixed(2))
		}

		code, err := s.prompter.AskText("Product code (leave empty to finish)")
		if err != nil {
			return err
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			return nil
		}

		product, err := s.catalog.Get(code)
		if err != nil {
			return err
		}
		if product == nil {
			s.prompter.Printf("Unknown product code %q, try again.\n", code)
			continue
		}

		mode, qty, amount, err := s.askPricing(product)
		if err != nil {
			return err
		}

		*staged = append(*staged, models.LineItem{
			ID:          s.nextItemID(*staged),
			OrderID:     orderID,
			ProductCode: product.Code,
			Label:       models.ItemLabel(product.Name, mode),
			Mode:        mode,
			Quantity:    qty,
			Amount:      amount,
		})
		s.prompter.Printf("Added %s, line amount %s.\n", models.ItemLabel(product.Name, mode), amount.StringFixed(2))

		more, err := s.prompter.Confirm("Add another item?")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// editItems is the staged item-mutation menu: re-price, remove, add.
// The staged order's total is deliberately left stale until the enclosing
// save recomputes it.
func (s *orderService) editItems(o *models.Order, staged *[]models.LineItem) error {
	for {
		options := make([]string, 0, len(*staged)+2)
		for _, it := range *staged {
			options = append(options, fmt.Sprintf("%s | qty %d | %s", it.Label, it.Quantity, it.Amount.StringFixed(2)))
		}
		options = append(options, "Add new item", "Back")

		idx, err := s.prompter.ChooseOne(fmt.Sprintf("Items of order %d", o.ID), options)
		if err != nil {
			return err
		}
		switch {
		case idx == len(options)-1:
			return nil
		case idx == len(options)-2:
			if err := s.enterItems(o.ID, staged); err != nil {
				return err
			}
		default:
			if err := s.editItem(&(*staged)[idx], staged, idx); err != nil {
				return err
			}
		}
	}
}

func (s *orderService) editItem(it *models.LineItem, staged *[]models.LineItem, idx int) error {
	action, err := s.prompter.ChooseOne(fmt.Sprintf("Item %s", it.Label),
		[]string{"Change purchase mode and quantity", "Remove item", "Back"})
	if err != nil {
		return err
	}
	switch action {
	case 0:
		product, err := s.catalog.Get(it.ProductCode)
		if err != nil {
			return err
		}
		if product == nil {
			// The product left the catalog since this item was bought.
			s.prompter.Printf("Product %s is no longer in the catalog, the item cannot be re-priced.\n", it.ProductCode)
			return nil
		}
		mode, qty, amount, err := s.askPricing(product)
		if err != nil {
			return err
		}
		it.Mode = mode
		it.Quantity = qty
		it.Amount = amount
		it.Label = models.ItemLabel(product.Name, mode)
		s.prompter.Printf("Item updated, new line amount %s.\n", amount.StringFixed(2))
	case 1:
		removed := it.Label
		*staged = append((*staged)[:idx], (*staged)[idx+1:]...)
		s.prompter.Printf("Removed %s.\n", removed)
	}
	return nil
}

// askPricing captures purchase mode and quantity and prices the line from
// the catalog entry.
func (s *orderService) askPricing(product *models.Product) (models.PurchaseMode, int, decimal.Decimal, error) {
	idx, err := s.prompter.ChooseOne("Purchase mode", []string{"Unit (UN)", "Box (CX)"})
	if err != nil {
		return "", 0, decimal.Zero, err
	}
	mode := models.PurchaseModes[idx]

	qty, err := s.prompter.AskInt("Quantity", ValidateQuantity)
	if err != nil {
		return "", 0, decimal.Zero, err
	}

	amount := product.Price(mode).Mul(decimal.NewFromInt(int64(qty)))
	return mode, qty, amount, nil
}

// nextItemID allocates an id above both persisted and staged items so a
// session never reuses one.
func (s *orderService) nextItemID(staged []models.LineItem) int {
	next := s.repo.Items.NextID()
	for _, it := range staged {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	return next
}

func sumItems(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
