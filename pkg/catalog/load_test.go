package catalog

import (
	"testing"
)

func TestLoadFile(t *testing.T) {
	cat, err := LoadFile("testdata/catalog.json")
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Expected 2 products, got %d", cat.Len())
	}

	product, ok := cat.Get("p0001")
	if !ok {
		t.Fatalf("Expected product p0001")
	}
	if product.Name != "Maroon Banarasi Silk Saree" || product.Price != 12999 {
		t.Errorf("Unexpected product data: %+v", product)
	}
	if !product.IsBestseller {
		t.Errorf("Expected bestseller flag")
	}

	if _, ok := cat.Get("missing"); ok {
		t.Errorf("Expected lookup miss for unknown id")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("testdata/nope.json"); err == nil {
		t.Errorf("Expected error for missing catalog file")
	}
}
