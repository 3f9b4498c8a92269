package store

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"storefront/domain"
)

// CartStore holds the session's cart lines. Mutations replace the published
// slice wholesale (copy-on-write) and persist the full snapshot; persistence
// failures are logged and the store keeps serving from memory.
type CartStore struct {
	mu    sync.RWMutex
	items []domain.CartItem
	kv    KV
	subs  []func()
}

// NewCartStore constructs a cart rehydrated from the KV snapshot. A missing
// or malformed snapshot yields an empty cart, never an error.
func NewCartStore(kv KV) *CartStore {
	s := &CartStore{kv: kv}
	b, ok, err := kv.Load(CartKey)
	if err != nil {
		slog.Warn("cart snapshot unreadable, starting empty", "error", err)
		return s
	}
	if !ok {
		return s
	}
	var items []domain.CartItem
	if err := json.Unmarshal(b, &items); err != nil {
		slog.Warn("cart snapshot corrupt, starting empty", "error", err)
		return s
	}
	s.items = items
	return s
}

// Subscribe registers fn to run after every effective mutation.
func (s *CartStore) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Add puts one unit of the product in the cart: an existing line for the
// product gets its quantity incremented, otherwise a new line is created
// with a price snapshot taken now.
func (s *CartStore) Add(p domain.Product) {
	s.mu.Lock()
	next := make([]domain.CartItem, len(s.items))
	copy(next, s.items)

	found := false
	for i := range next {
		if next[i].ProductID == p.ID {
			next[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		next = append(next, domain.CartItem{
			ID:        uuid.NewString(),
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  1,
			Image:     p.Image,
		})
	}
	s.publish(next)
	s.mu.Unlock()
	s.notify()
}

// UpdateQuantity sets a line's quantity exactly. Quantities below 1 and
// unknown line ids are silent no-ops.
func (s *CartStore) UpdateQuantity(lineID string, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	changed := false
	next := make([]domain.CartItem, len(s.items))
	copy(next, s.items)
	for i := range next {
		if next[i].ID == lineID {
			changed = next[i].Quantity != quantity
			next[i].Quantity = quantity
			break
		}
	}
	if changed {
		s.publish(next)
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// Remove deletes a line unconditionally.
func (s *CartStore) Remove(lineID string) {
	s.mu.Lock()
	changed := false
	next := make([]domain.CartItem, 0, len(s.items))
	for _, it := range s.items {
		if it.ID == lineID {
			changed = true
			continue
		}
		next = append(next, it)
	}
	if changed {
		s.publish(next)
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	changed := len(s.items) > 0
	if changed {
		s.publish([]domain.CartItem{})
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// Items returns a copy of the current lines.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems returns the sum of all line quantities, for badge display.
func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Totals derives the money totals from the current lines.
func (s *CartStore) Totals() domain.CartTotals {
	return domain.TotalsFor(s.Items())
}

// publish swaps in the new snapshot and writes it through. The in-memory
// state is updated first; a failed write degrades to memory-only.
// Callers hold the write lock.
func (s *CartStore) publish(next []domain.CartItem) {
	s.items = next
	b, err := json.Marshal(next)
	if err != nil {
		slog.Warn("cart snapshot marshal failed", "error", err)
		return
	}
	if err := s.kv.Save(CartKey, b); err != nil {
		slog.Warn("cart snapshot not persisted", "error", err)
	}
}

func (s *CartStore) notify() {
	s.mu.RLock()
	subs := s.subs
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}
