// Package query composes filtering, sorting, and pagination over a catalog
// into the exact page of products a consumer renders.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront/catalog"
	"storefront/domain"
)

// DefaultPerPage is the page size used when Params.PerPage is unset.
const DefaultPerPage = 12

// Params is the filter/sort/pagination state for one query. Fields are
// independent and compose as a set intersection; zero values mean "all".
type Params struct {
	Section    string `json:"section,omitempty"`
	Search     string `json:"search,omitempty"`
	Category   string `json:"category,omitempty"`
	PriceRange string `json:"priceRange,omitempty"`
	SortBy     string `json:"sortBy,omitempty"`
	Page       int    `json:"page,omitempty"`
	PerPage    int    `json:"perPage,omitempty"`
}

// Result is the consumer contract: one page of products plus the counts a
// renderer needs for pagination controls.
type Result struct {
	Items       []domain.Product `json:"items"`
	TotalCount  int              `json:"totalCount"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// Run executes the query pipeline: section, search, category, price bucket,
// sort, paginate. Pure and deterministic for a given catalog and params.
// An empty page is a normal outcome, including pages past the end.
func Run(c *catalog.Catalog, p Params) Result {
	items := sectionSet(c, p.Section)

	if q := strings.TrimSpace(p.Search); q != "" {
		matched := make(map[string]bool)
		for _, m := range c.Search(q) {
			matched[m.ID] = true
		}
		items = keep(items, func(pr domain.Product) bool { return matched[pr.ID] })
	}

	if p.Category != "" && !strings.EqualFold(p.Category, "all") {
		items = keep(items, func(pr domain.Product) bool {
			return strings.EqualFold(pr.Category, p.Category)
		})
	}

	if pred, ok := bucketPredicate(p.PriceRange); ok {
		items = keep(items, pred)
	}

	applySort(items, p.SortBy)

	return paginate(items, p.Page, p.PerPage)
}

// keep filters into a fresh slice, leaving the input untouched.
func keep(items []domain.Product, pred func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func sectionSet(c *catalog.Catalog, section string) []domain.Product {
	if section == "" || strings.EqualFold(section, "all") {
		return c.All()
	}
	return c.Section(section)
}

// bucketPredicate maps a price-range key to its bucket. The 50-100 and
// 100-200 buckets are both closed intervals, so a price of exactly 100
// matches either; the published price filters quote these exact bounds,
// keep them in sync with the pricing notes in DESIGN.md.
// Unknown keys report false and the filter is skipped.
func bucketPredicate(key string) (func(domain.Product) bool, bool) {
	switch key {
	case "under-50":
		return func(p domain.Product) bool { return p.Price < 50 }, true
	case "50-100":
		return func(p domain.Product) bool { return p.Price >= 50 && p.Price <= 100 }, true
	case "100-200":
		return func(p domain.Product) bool { return p.Price >= 100 && p.Price <= 200 }, true
	case "over-200":
		return func(p domain.Product) bool { return p.Price > 200 }, true
	default:
		return nil, false
	}
}

// applySort sorts in place with a stable sort; ties keep their pre-sort
// order. "default" and "featured" preserve catalog order, as does any
// unknown key.
func applySort(items []domain.Product, sortBy string) {
	var less func(a, b domain.Product) bool
	switch sortBy {
	case "price-low":
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case "price-high":
		less = func(a, b domain.Product) bool { return a.Price > b.Price }
	case "rating":
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	case "name":
		col := collate.New(language.English)
		less = func(a, b domain.Product) bool { return col.CompareString(a.Name, b.Name) < 0 }
	case "newest":
		less = func(a, b domain.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	case "popular":
		less = func(a, b domain.Product) bool { return a.UnitsSold > b.UnitsSold }
	default:
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

func paginate(items []domain.Product, page, perPage int) Result {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page <= 0 {
		page = 1
	}
	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage
	pageItems := []domain.Product{}
	if start < total {
		if end > total {
			end = total
		}
		pageItems = items[start:end]
	}
	return Result{
		Items:       pageItems,
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}
