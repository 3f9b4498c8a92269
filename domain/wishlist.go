package domain

import "time"

// WishlistItem is the read-side record for one saved product. The persisted
// form is a product-id to added-at map; full records are resolved against the
// catalog on read.
type WishlistItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
	Product   Product   `json:"product"`
}
