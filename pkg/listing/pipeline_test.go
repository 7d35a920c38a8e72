package listing

import (
	"reflect"
	"testing"

	"github.com/zariwear/zari-store/pkg/catalog"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{Id: "A", Name: "Maroon Banarasi Saree", Category: "sarees", Subcategory: "Banarasi", Fabric: "Silk", Occasion: "Wedding", Color: "Maroon", Price: 1000, Rating: 4.7, IsBestseller: true},
		{Id: "B", Name: "Gold Kanjivaram Saree", Category: "sarees", Subcategory: "Kanjivaram", Fabric: "Silk", Occasion: "Wedding", Color: "Gold", Price: 2000, Rating: 4.8},
		{Id: "C", Name: "Green Cotton Saree", Category: "sarees", Subcategory: "Printed Sarees", Fabric: "Cotton", Occasion: "Casual", Color: "Green", Price: 500, Rating: 4.0, IsNew: true},
		{Id: "D", Name: "Red Bridal Lehenga", Category: "lehengas", Subcategory: "Bridal Lehengas", Fabric: "Velvet", Occasion: "Wedding", Color: "Red", Sizes: []string{"S", "M"}, Price: 24999, Rating: 4.9, IsBestseller: true},
	}
}

func ids(products []catalog.Product) []string {
	result := make([]string, len(products))
	for i, p := range products {
		result[i] = p.Id
	}
	return result
}

func TestDeriveIsDeterministic(t *testing.T) {
	products := testProducts()
	sel := FilterSelection{Fabrics: []string{"Silk", "Cotton"}}

	first := Derive(products, "sarees", sel, PriceSort, 1, 24)
	second := Derive(products, "sarees", sel, PriceSort, 1, 24)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results for identical inputs")
	}
}

func TestNoopFilterReturnsScopedCatalog(t *testing.T) {
	products := testProducts()
	result := Derive(products, "sarees", FilterSelection{}, PopularSort, 1, 24)

	if result.TotalItems != 3 {
		t.Fatalf("Expected 3 sarees, got %d", result.TotalItems)
	}
	// bestseller partition first, catalog order within partitions
	expected := []string{"A", "B", "C"}
	if !reflect.DeepEqual(ids(result.Items), expected) {
		t.Errorf("Expected %v, got %v", expected, ids(result.Items))
	}
}

func TestPopularityPagination(t *testing.T) {
	products := testProducts()[:3]

	page1 := Derive(products, "sarees", FilterSelection{}, PopularSort, 1, 2)
	if page1.TotalPages != 2 {
		t.Fatalf("Expected 2 pages, got %d", page1.TotalPages)
	}
	if !reflect.DeepEqual(ids(page1.Items), []string{"A", "B"}) {
		t.Errorf("Expected page 1 [A B], got %v", ids(page1.Items))
	}

	page2 := Derive(products, "sarees", FilterSelection{}, PopularSort, 2, 2)
	if !reflect.DeepEqual(ids(page2.Items), []string{"C"}) {
		t.Errorf("Expected page 2 [C], got %v", ids(page2.Items))
	}
}

func TestPaginationIsExhaustive(t *testing.T) {
	products := testProducts()
	full := Derive(products, "", FilterSelection{}, RatingSort, 1, 100)

	collected := []string{}
	pageSize := 3
	first := Derive(products, "", FilterSelection{}, RatingSort, 1, pageSize)
	for page := 1; page <= first.TotalPages; page++ {
		result := Derive(products, "", FilterSelection{}, RatingSort, page, pageSize)
		collected = append(collected, ids(result.Items)...)
	}
	if !reflect.DeepEqual(collected, ids(full.Items)) {
		t.Errorf("Expected concatenated pages %v, got %v", ids(full.Items), collected)
	}
}

func TestOutOfRangePageYieldsEmpty(t *testing.T) {
	result := Derive(testProducts(), "", FilterSelection{}, PopularSort, 99, 24)
	if len(result.Items) != 0 {
		t.Errorf("Expected empty slice for out of range page, got %d items", len(result.Items))
	}
	if result.TotalItems != 4 {
		t.Errorf("Expected total items unaffected by page, got %d", result.TotalItems)
	}
}

func TestSortOrders(t *testing.T) {
	products := testProducts()

	asc := Derive(products, "", FilterSelection{}, PriceSort, 1, 24)
	if !reflect.DeepEqual(ids(asc.Items), []string{"C", "A", "B", "D"}) {
		t.Errorf("Expected price ascending [C A B D], got %v", ids(asc.Items))
	}

	desc := Derive(products, "", FilterSelection{}, PriceDescSort, 1, 24)
	if !reflect.DeepEqual(ids(desc.Items), []string{"D", "B", "A", "C"}) {
		t.Errorf("Expected price descending [D B A C], got %v", ids(desc.Items))
	}

	rating := Derive(products, "", FilterSelection{}, RatingSort, 1, 24)
	if !reflect.DeepEqual(ids(rating.Items), []string{"D", "B", "A", "C"}) {
		t.Errorf("Expected rating descending [D B A C], got %v", ids(rating.Items))
	}

	news := Derive(products, "", FilterSelection{}, NewsSort, 1, 24)
	if !reflect.DeepEqual(ids(news.Items), []string{"C", "A", "B", "D"}) {
		t.Errorf("Expected new-first partition [C A B D], got %v", ids(news.Items))
	}
}

func TestFacetFilters(t *testing.T) {
	products := testProducts()

	silk := Derive(products, "", FilterSelection{Fabrics: []string{"Silk"}}, PopularSort, 1, 24)
	if !reflect.DeepEqual(ids(silk.Items), []string{"A", "B"}) {
		t.Errorf("Expected silk products [A B], got %v", ids(silk.Items))
	}

	// AND across facets, OR within a facet
	combined := Derive(products, "", FilterSelection{
		Fabrics:   []string{"Silk", "Velvet"},
		Occasions: []string{"Wedding"},
	}, PopularSort, 1, 24)
	if !reflect.DeepEqual(ids(combined.Items), []string{"A", "D", "B"}) {
		t.Errorf("Expected [A D B], got %v", ids(combined.Items))
	}

	sized := Derive(products, "", FilterSelection{Sizes: []string{"M"}}, PopularSort, 1, 24)
	if !reflect.DeepEqual(ids(sized.Items), []string{"D"}) {
		t.Errorf("Expected size M matches [D], got %v", ids(sized.Items))
	}
}

func TestPriceRangeInclusive(t *testing.T) {
	products := testProducts()
	result := Derive(products, "", FilterSelection{Price: PriceRange{Min: 500, Max: 2000}}, PriceSort, 1, 24)
	if !reflect.DeepEqual(ids(result.Items), []string{"C", "A", "B"}) {
		t.Errorf("Expected inclusive bounds [C A B], got %v", ids(result.Items))
	}

	unbounded := Derive(products, "", FilterSelection{Price: PriceRange{Min: 0, Max: 0}}, PriceSort, 1, 24)
	if unbounded.TotalItems != 4 {
		t.Errorf("Expected zero range to be unrestricted, got %d items", unbounded.TotalItems)
	}
}

func TestDeriveDoesNotMutateCatalog(t *testing.T) {
	products := testProducts()
	before := ids(products)
	Derive(products, "", FilterSelection{}, PriceDescSort, 1, 24)
	if !reflect.DeepEqual(ids(products), before) {
		t.Errorf("Expected catalog order untouched, got %v", ids(products))
	}
}
