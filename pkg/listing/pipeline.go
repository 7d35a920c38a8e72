package listing

import (
	"cmp"
	"slices"

	"github.com/zariwear/zari-store/pkg/catalog"
)

const (
	PopularSort   = "popular"
	PriceSort     = "price"
	PriceDescSort = "price_desc"
	RatingSort    = "rating"
	NewsSort      = "news"
)

// PriceRange is an inclusive interval. Max <= 0 means no upper bound, so a
// zero value imposes no price restriction.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r PriceRange) Contains(price int) bool {
	if price < r.Min {
		return false
	}
	if r.Max > 0 && price > r.Max {
		return false
	}
	return true
}

// FilterSelection holds the chosen facet values. An empty set imposes no
// restriction on its facet; facets combine with AND, values within a facet
// with OR. Selections are replaced wholesale, never mutated.
type FilterSelection struct {
	Types     []string   `json:"types,omitempty"`
	Fabrics   []string   `json:"fabrics,omitempty"`
	Occasions []string   `json:"occasions,omitempty"`
	Colors    []string   `json:"colors,omitempty"`
	Sizes     []string   `json:"sizes,omitempty"`
	Price     PriceRange `json:"price"`
}

func matchesFacet(values []string, value string) bool {
	return len(values) == 0 || slices.Contains(values, value)
}

func matchesSizes(values []string, sizes []string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if slices.Contains(sizes, v) {
			return true
		}
	}
	return false
}

func (sel *FilterSelection) Matches(p *catalog.Product) bool {
	return matchesFacet(sel.Types, p.Subcategory) &&
		matchesFacet(sel.Fabrics, p.Fabric) &&
		matchesFacet(sel.Occasions, p.Occasion) &&
		matchesFacet(sel.Colors, p.Color) &&
		matchesSizes(sel.Sizes, p.Sizes) &&
		sel.Price.Contains(p.Price)
}

type Result struct {
	Items      []catalog.Product `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
	Sort       string            `json:"sort"`
}

func boolRank(v bool) int {
	if v {
		return 0
	}
	return 1
}

// sortProducts orders a fresh copy of the filtered list. The partition
// orderings (news, popular) are stable so catalog order survives within
// each partition.
func sortProducts(products []catalog.Product, sort string) []catalog.Product {
	sorted := slices.Clone(products)
	switch sort {
	case PriceSort:
		slices.SortStableFunc(sorted, func(a, b catalog.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case PriceDescSort:
		slices.SortStableFunc(sorted, func(a, b catalog.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case RatingSort:
		slices.SortStableFunc(sorted, func(a, b catalog.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case NewsSort:
		slices.SortStableFunc(sorted, func(a, b catalog.Product) int {
			return cmp.Compare(boolRank(a.IsNew), boolRank(b.IsNew))
		})
	default:
		slices.SortStableFunc(sorted, func(a, b catalog.Product) int {
			return cmp.Compare(boolRank(a.IsBestseller), boolRank(b.IsBestseller))
		})
	}
	return sorted
}

// Derive produces the visible page for a category scoped, filtered and
// sorted view of the catalog. It is a pure function of its inputs; an out
// of range page yields an empty item slice, never an error.
func Derive(products []catalog.Product, category string, sel FilterSelection, sort string, page, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	filtered := make([]catalog.Product, 0, len(products))
	for i := range products {
		if category != "" && products[i].Category != category {
			continue
		}
		if sel.Matches(&products[i]) {
			filtered = append(filtered, products[i])
		}
	}

	sorted := sortProducts(filtered, sort)

	total := len(sorted)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	items := []catalog.Product{}
	if start < total {
		items = sorted[start:end]
	}

	return Result{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		Sort:       sort,
	}
}
