// Package domain defines core business types for the storefront.
package domain

import "time"

// Product represents a sellable catalog item
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Image         string    `json:"image,omitempty"`
	Images        []string  `json:"images,omitempty"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Stock         int       `json:"stock"`
	Rating        float64   `json:"rating,omitempty"`
	ReviewCount   int       `json:"reviewCount,omitempty"`
	UnitsSold     int       `json:"unitsSold,omitempty"`
	SalesRank     int       `json:"salesRank,omitempty"`
	IsNew         bool      `json:"isNew,omitempty"`
	IsBestSeller  bool      `json:"isBestSeller,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// OnSale reports whether the product carries a meaningful discount.
// An original price at or below the current price counts as no discount.
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price
}

// DiscountPercent returns the discount as a fraction of the original price,
// e.g. 0.2 for 20% off. Zero when the product is not on sale.
func (p Product) DiscountPercent() float64 {
	if !p.OnSale() {
		return 0
	}
	return (p.OriginalPrice - p.Price) / p.OriginalPrice
}

// ValidateProduct checks field-level invariants on a product record
func ValidateProduct(p Product) error {
	if p.ID == "" {
		return NewInvalidProductError("id", "cannot be empty", p.ID)
	}
	if p.Name == "" {
		return NewInvalidProductError("name", "cannot be empty", p.Name)
	}
	if p.Price < 0 {
		return NewInvalidProductError("price", "must be non-negative", p.Price)
	}
	if p.OriginalPrice < 0 {
		return NewInvalidProductError("originalPrice", "must be non-negative", p.OriginalPrice)
	}
	if p.Stock < 0 {
		return NewInvalidProductError("stock", "must be non-negative", p.Stock)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return NewInvalidProductError("rating", "must be between 0 and 5", p.Rating)
	}
	if p.ReviewCount < 0 {
		return NewInvalidProductError("reviewCount", "must be non-negative", p.ReviewCount)
	}
	return nil
}

// FilterOption is an enumerated refinement offered by a collection
type FilterOption struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Collection is a named, pre-filtered view over the catalog
type Collection struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Filters     []FilterOption `json:"filters,omitempty"`
}
