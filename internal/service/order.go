package service

import (
	"github.com/shopspring/decimal"

	"order-ledger/internal/models"
)

// CustomerTotals is one row of the per-customer report.
type CustomerTotals struct {
	Customer    string
	Orders      int
	Total       decimal.Decimal
	Paid        decimal.Decimal
	Outstanding decimal.Decimal
}

// OrderService is the order ledger: every operation loads the collections,
// stages its mutations in memory and persists only on its explicit save
// point. Interactive input flows through the injected Prompter.
type OrderService interface {
	// CreateOrder runs the full creation flow. Returns ErrEmptyOrder when
	// the item-entry session ends with no items; nothing is persisted then.
	CreateOrder() (*models.Order, error)
	// EditOrder runs the staged editing session for the order. Returns
	// ErrOrderNotFound for an unknown id and ErrCancelled when the user
	// discards the session.
	EditOrder(id int) (*models.Order, error)
	// GetOrder returns the order and its items, with the total recomputed
	// from the items.
	GetOrder(id int) (*models.Order, []models.LineItem, error)
	ListOrders() ([]*models.Order, error)
	// CustomerSummary aggregates orders per customer, sorted by name.
	CustomerSummary() ([]CustomerTotals, error)
}
