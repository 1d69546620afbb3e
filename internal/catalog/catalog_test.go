package catalog

import (
	"path/filepath"
	"testing"

	"order-ledger/internal/store"
)

func seedCatalog(t *testing.T) Provider {
	t.Helper()
	rs := store.NewCSVStore(filepath.Join(t.TempDir(), "products.csv"), store.ProductFields)
	err := rs.SaveAll([]store.Record{
		{store.FieldCode: "P001", store.FieldName: "Flour 5kg", store.FieldUnitPrice: "10.00", store.FieldBoxPrice: "50.00", store.FieldBoxQty: "6"},
		{store.FieldCode: "P002", store.FieldName: "Sugar", store.FieldUnitPrice: "4.50", store.FieldBoxPrice: "40.00", store.FieldBoxQty: "10"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewCSVProvider(rs)
}

func TestList(t *testing.T) {
	cat := seedCatalog(t)
	products, err := cat.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products got %d", len(products))
	}
	if products[0].Code != "P001" || products[1].Name != "Sugar" {
		t.Fatalf("mismatch: %+v", products)
	}
}

func TestGet(t *testing.T) {
	cat := seedCatalog(t)

	p, err := cat.Get("p001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p == nil || p.Name != "Flour 5kg" {
		t.Fatalf("case-insensitive lookup failed: %+v", p)
	}

	absent, err := cat.Get("P999")
	if err != nil {
		t.Fatalf("Get absent: %v", err)
	}
	if absent != nil {
		t.Fatalf("expected nil for unknown code, got %+v", absent)
	}
}

func TestEmptyCatalog(t *testing.T) {
	rs := store.NewCSVStore(filepath.Join(t.TempDir(), "products.csv"), store.ProductFields)
	cat := NewCSVProvider(rs)
	products, err := cat.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty catalog, got %d", len(products))
	}
}
