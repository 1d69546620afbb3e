// Package repository owns the order and line-item collections behind
// explicit load/save/find operations, so every mutation boundary is
// visible instead of hiding in shared slices.
package repository

import "order-ledger/internal/store"

type Repository struct {
	Orders *OrderRepo
	Items  *ItemRepo
}

func New(orders, items store.RecordStore) *Repository {
	return &Repository{
		Orders: NewOrderRepo(orders),
		Items:  NewItemRepo(items),
	}
}

// Load refreshes both collections from the backing store.
func (r *Repository) Load() error {
	if err := r.Orders.Load(); err != nil {
		return err
	}
	return r.Items.Load()
}

// Save rewrites both backing collections.
func (r *Repository) Save() error {
	if err := r.Orders.Save(); err != nil {
		return err
	}
	return r.Items.Save()
}
