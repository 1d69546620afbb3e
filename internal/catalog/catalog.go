// Package catalog looks up products and prices for the order ledger. The
// catalog is read-only here; maintaining it is someone else's job.
package catalog

import (
	"strings"

	"order-ledger/internal/models"
	"order-ledger/internal/store"
)

type Provider interface {
	List() ([]models.Product, error)
	// Get returns the product for the given code, or nil when the code is
	// not in the catalog. Codes match case-insensitively.
	Get(code string) (*models.Product, error)
}

type csvProvider struct {
	store store.RecordStore
}

func NewCSVProvider(rs store.RecordStore) Provider {
	return &csvProvider{store: rs}
}

func (p *csvProvider) List() ([]models.Product, error) {
	recs, err := p.store.LoadAll()
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(recs))
	for _, rec := range recs {
		prod, err := store.DecodeProduct(rec)
		if err != nil {
			return nil, err
		}
		products = append(products, *prod)
	}
	return products, nil
}

func (p *csvProvider) Get(code string) (*models.Product, error) {
	products, err := p.List()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if strings.EqualFold(products[i].Code, code) {
			return &products[i], nil
		}
	}
	return nil, nil
}
