package store

import (
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/catalog"
	"storefront/domain"
)

// wishlistNamespace derives stable read-side entry ids from product ids.
var wishlistNamespace = uuid.MustParse("74f1c2e6-0d4b-4c2a-9f6e-3a8b1d5c7e90")

// WishlistStore holds the session's saved products as a product-id to
// added-at map. Same persistence contract as the cart: rehydrate on
// construction, write through on every mutation, degrade to memory-only.
type WishlistStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	kv      KV
	subs    []func()
}

// NewWishlistStore constructs a wishlist rehydrated from the KV snapshot.
// Missing or malformed snapshots yield an empty wishlist.
func NewWishlistStore(kv KV) *WishlistStore {
	s := &WishlistStore{entries: make(map[string]time.Time), kv: kv}
	b, ok, err := kv.Load(WishlistKey)
	if err != nil {
		slog.Warn("wishlist snapshot unreadable, starting empty", "error", err)
		return s
	}
	if !ok {
		return s
	}
	var entries map[string]time.Time
	if err := json.Unmarshal(b, &entries); err != nil {
		slog.Warn("wishlist snapshot corrupt, starting empty", "error", err)
		return s
	}
	if entries != nil {
		s.entries = entries
	}
	return s
}

// Subscribe registers fn to run after every effective mutation.
func (s *WishlistStore) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Toggle adds the product if absent, removes it if present, and returns the
// resulting membership. Toggling twice restores the original state.
func (s *WishlistStore) Toggle(productID string) bool {
	s.mu.Lock()
	next := s.cloneEntries()
	_, present := next[productID]
	if present {
		delete(next, productID)
	} else {
		next[productID] = time.Now().UTC()
	}
	s.publish(next)
	s.mu.Unlock()
	s.notify()
	return !present
}

// Remove deletes the product's entry; unknown ids are a no-op.
func (s *WishlistStore) Remove(productID string) {
	s.mu.Lock()
	_, present := s.entries[productID]
	if present {
		next := s.cloneEntries()
		delete(next, productID)
		s.publish(next)
	}
	s.mu.Unlock()
	if present {
		s.notify()
	}
}

// Contains reports membership for the product.
func (s *WishlistStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[productID]
	return ok
}

// Count returns the number of saved products, for badge display.
func (s *WishlistStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// ProductIDs returns the saved ids ordered by added-at, ties broken by id.
func (s *WishlistStore) ProductIDs() []string {
	s.mu.RLock()
	type entry struct {
		id string
		at time.Time
	}
	all := make([]entry, 0, len(s.entries))
	for id, at := range s.entries {
		all = append(all, entry{id, at})
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].at.Equal(all[j].at) {
			return all[i].at.Before(all[j].at)
		}
		return all[i].id < all[j].id
	})
	out := make([]string, len(all))
	for i, e := range all {
		out[i] = e.id
	}
	return out
}

// Items resolves the saved ids against the catalog into full records.
// Ids that no longer resolve are silently dropped. Entry ids are derived
// from the product id, so they are stable across reads.
func (s *WishlistStore) Items(c *catalog.Catalog) []domain.WishlistItem {
	ids := s.ProductIDs()

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.WishlistItem, 0, len(ids))
	for _, id := range ids {
		p, ok := c.ByID(id)
		if !ok {
			continue
		}
		out = append(out, domain.WishlistItem{
			ID:        uuid.NewSHA1(wishlistNamespace, []byte(id)).String(),
			ProductID: id,
			AddedAt:   s.entries[id],
			Product:   p,
		})
	}
	return out
}

// publish swaps in the new entry map and writes it through.
// Callers hold the write lock.
func (s *WishlistStore) publish(next map[string]time.Time) {
	s.entries = next
	b, err := json.Marshal(next)
	if err != nil {
		slog.Warn("wishlist snapshot marshal failed", "error", err)
		return
	}
	if err := s.kv.Save(WishlistKey, b); err != nil {
		slog.Warn("wishlist snapshot not persisted", "error", err)
	}
}

func (s *WishlistStore) cloneEntries() map[string]time.Time {
	next := make(map[string]time.Time, len(s.entries)+1)
	for id, at := range s.entries {
		next[id] = at
	}
	return next
}

func (s *WishlistStore) notify() {
	s.mu.RLock()
	subs := s.subs
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}
