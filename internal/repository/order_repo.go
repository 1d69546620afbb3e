package repository

import (
	"fmt"

	"order-ledger/internal/models"
	"order-ledger/internal/store"
)

type OrderRepo struct {
	store store.RecordStore
	list  []*models.Order
}

func NewOrderRepo(rs store.RecordStore) *OrderRepo {
	return &OrderRepo{store: rs}
}

func (r *OrderRepo) Load() error {
	recs, err := r.store.LoadAll()
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	list := make([]*models.Order, 0, len(recs))
	for _, rec := range recs {
		o, err := store.DecodeOrder(rec)
		if err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		list = append(list, o)
	}
	r.list = list
	return nil
}

func (r *OrderRepo) Save() error {
	recs := make([]store.Record, 0, len(r.list))
	for _, o := range r.list {
		recs = append(recs, store.EncodeOrder(o))
	}
	if err := r.store.SaveAll(recs); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func (r *OrderRepo) All() []*models.Order {
	return r.list
}

// FindByID returns the stored order, or nil when absent.
func (r *OrderRepo) FindByID(id int) *models.Order {
	for _, o := range r.list {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// NextID is max existing id + 1, starting at 1.
func (r *OrderRepo) NextID() int {
	maxID := 0
	for _, o := range r.list {
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	return maxID + 1
}

func (r *OrderRepo) Append(o *models.Order) {
	r.list = append(r.list, o)
}

// Replace swaps the stored order with the same ID for o. Returns false
// when no such order exists.
func (r *OrderRepo) Replace(o *models.Order) bool {
	for i := range r.list {
		if r.list[i].ID == o.ID {
			r.list[i] = o
			return true
		}
	}
	return false
}
