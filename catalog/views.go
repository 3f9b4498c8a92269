package catalog

import (
	"sort"

	"storefront/domain"
)

// Derived views are pure and recomputed on every call. The catalog is small
// and static, so no caching layer sits in front of them.

// BestSellers returns flagged products, ascending by sales rank.
// An absent rank is zero and therefore sorts first.
func (c *Catalog) BestSellers() []domain.Product {
	out := c.filter(func(p domain.Product) bool { return p.IsBestSeller })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SalesRank < out[j].SalesRank
	})
	return out
}

// NewArrivals returns flagged products, newest first.
func (c *Catalog) NewArrivals() []domain.Product {
	out := c.filter(func(p domain.Product) bool { return p.IsNew })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// OnSale returns discounted products, steepest discount first.
func (c *Catalog) OnSale() []domain.Product {
	out := c.filter(domain.Product.OnSale)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DiscountPercent() > out[j].DiscountPercent()
	})
	return out
}

// Featured returns highly rated products, capped at 8.
func (c *Catalog) Featured() []domain.Product {
	out := c.filter(func(p domain.Product) bool { return p.Rating >= 4.5 })
	if len(out) > 8 {
		out = out[:8]
	}
	return out
}

// TopRated returns up to limit products, descending by rating.
func (c *Catalog) TopRated(limit int) []domain.Product {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return truncate(out, limit)
}

// MostReviewed returns up to limit products, descending by review count.
func (c *Catalog) MostReviewed(limit int) []domain.Product {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReviewCount > out[j].ReviewCount
	})
	return truncate(out, limit)
}

// Collections lists the named pre-filtered views together with the filter
// refinements a consumer can apply on top of them.
func (c *Catalog) Collections() []domain.Collection {
	refinements := []domain.FilterOption{
		{ID: "category", Name: "Category", Options: c.Categories()},
		{ID: "price-range", Name: "Price", Options: []string{"under-50", "50-100", "100-200", "over-200"}},
	}
	return []domain.Collection{
		{ID: "best-sellers", Name: "Best Sellers", Description: "Our most popular products", Filters: refinements},
		{ID: "new-arrivals", Name: "New Arrivals", Description: "Fresh additions to the catalog", Filters: refinements},
		{ID: "on-sale", Name: "On Sale", Description: "Current markdowns", Filters: refinements},
		{ID: "featured", Name: "Featured", Description: "Staff picks rated 4.5 and up", Filters: refinements},
	}
}

// Section resolves a collection id to its derived product set. Unknown or
// "all" sections fall back to the full catalog.
func (c *Catalog) Section(id string) []domain.Product {
	switch id {
	case "best-sellers":
		return c.BestSellers()
	case "new-arrivals":
		return c.NewArrivals()
	case "on-sale":
		return c.OnSale()
	case "featured":
		return c.Featured()
	default:
		return c.All()
	}
}

func (c *Catalog) filter(keep func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func truncate(products []domain.Product, limit int) []domain.Product {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}
