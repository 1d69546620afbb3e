package repository

import (
	"fmt"

	"order-ledger/internal/models"
	"order-ledger/internal/store"
)

type ItemRepo struct {
	store store.RecordStore
	list  []models.LineItem
}

func NewItemRepo(rs store.RecordStore) *ItemRepo {
	return &ItemRepo{store: rs}
}

func (r *ItemRepo) Load() error {
	recs, err := r.store.LoadAll()
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	list := make([]models.LineItem, 0, len(recs))
	for _, rec := range recs {
		it, err := store.DecodeLineItem(rec)
		if err != nil {
			return fmt.Errorf("load items: %w", err)
		}
		list = append(list, *it)
	}
	r.list = list
	return nil
}

func (r *ItemRepo) Save() error {
	recs := make([]store.Record, 0, len(r.list))
	for i := range r.list {
		recs = append(recs, store.EncodeLineItem(&r.list[i]))
	}
	if err := r.store.SaveAll(recs); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}

func (r *ItemRepo) All() []models.LineItem {
	return r.list
}

// ByOrder returns copies of the order's items; callers stage their edits
// on the copies and commit through ReplaceForOrder.
func (r *ItemRepo) ByOrder(orderID int) []models.LineItem {
	var items []models.LineItem
	for _, it := range r.list {
		if it.OrderID == orderID {
			items = append(items, it)
		}
	}
	return items
}

// NextID is max existing id + 1, starting at 1.
func (r *ItemRepo) NextID() int {
	maxID := 0
	for _, it := range r.list {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	return maxID + 1
}

func (r *ItemRepo) AppendAll(items []models.LineItem) {
	r.list = append(r.list, items...)
}

// ReplaceForOrder swaps every item of the given order for the staged set,
// leaving other orders' items untouched.
func (r *ItemRepo) ReplaceForOrder(orderID int, items []models.LineItem) {
	kept := make([]models.LineItem, 0, len(r.list)+len(items))
	for _, it := range r.list {
		if it.OrderID != orderID {
			kept = append(kept, it)
		}
	}
	r.list = append(kept, items...)
}
