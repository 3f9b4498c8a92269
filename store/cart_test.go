package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/domain"
)

// failKV accepts loads but refuses every save.
type failKV struct{}

func (failKV) Load(string) ([]byte, bool, error) { return nil, false, nil }
func (failKV) Save(string, []byte) error         { return errors.New("quota exceeded") }

func productA() domain.Product {
	return domain.Product{ID: "p-a", Name: "Oak Desk", Price: 249, Category: "Furniture", Image: "/a.jpg"}
}

func productB() domain.Product {
	return domain.Product{ID: "p-b", Name: "Linen Throw", Price: 44.99, Category: "Textiles"}
}

func TestAddDeduplicatesByProduct(t *testing.T) {
	s := NewCartStore(NewMemKV())

	s.Add(productA())
	s.Add(productA())

	items := s.Items()
	require.Len(t, items, 1, "same product twice is one line")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "p-a", items[0].ProductID)
	assert.NotEmpty(t, items[0].ID)
	assert.NotEqual(t, "p-a", items[0].ID, "line id is distinct from product id")

	s.Add(productB())
	assert.Len(t, s.Items(), 2)
	assert.Equal(t, 3, s.TotalItems())
}

func TestAddSnapshotsPrice(t *testing.T) {
	s := NewCartStore(NewMemKV())
	p := productA()
	s.Add(p)

	p.Price = 999 // later catalog price change must not touch the line
	assert.InDelta(t, 249, s.Items()[0].Price, 1e-9)
}

func TestUpdateQuantity(t *testing.T) {
	s := NewCartStore(NewMemKV())
	s.Add(productA())
	lineID := s.Items()[0].ID

	s.UpdateQuantity(lineID, 5)
	assert.Equal(t, 5, s.Items()[0].Quantity)

	t.Run("below one is a silent no-op", func(t *testing.T) {
		s.UpdateQuantity(lineID, 0)
		assert.Equal(t, 5, s.Items()[0].Quantity)
		s.UpdateQuantity(lineID, -2)
		assert.Equal(t, 5, s.Items()[0].Quantity)
	})

	t.Run("unknown line is a silent no-op", func(t *testing.T) {
		s.UpdateQuantity("no-such-line", 3)
		assert.Equal(t, 5, s.TotalItems())
	})
}

func TestRemoveAndClear(t *testing.T) {
	s := NewCartStore(NewMemKV())
	s.Add(productA())
	s.Add(productB())
	lineID := s.Items()[0].ID

	s.Remove(lineID)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "p-b", s.Items()[0].ProductID)

	s.Remove("no-such-line") // no-op
	assert.Len(t, s.Items(), 1)

	s.Clear()
	assert.Empty(t, s.Items())
	assert.Zero(t, s.TotalItems())
}

func TestTotalsReadAfterWrite(t *testing.T) {
	s := NewCartStore(NewMemKV())
	s.Add(productA())

	totals := s.Totals()
	assert.InDelta(t, 249, totals.Subtotal, 1e-9)
	assert.Zero(t, totals.Shipping)

	s.Clear()
	assert.Zero(t, s.Totals().Subtotal)
}

func TestCartPersistenceRoundTrip(t *testing.T) {
	kv := NewFileKV(t.TempDir())

	first := NewCartStore(kv)
	first.Add(productA())
	first.Add(productA())
	first.Add(productB())

	second := NewCartStore(kv)
	require.Len(t, second.Items(), 2)
	assert.Equal(t, 3, second.TotalItems())
	assert.Equal(t, first.Items(), second.Items())
}

func TestCartRehydrationDefendsAgainstBadSnapshots(t *testing.T) {
	t.Run("corrupt json starts empty", func(t *testing.T) {
		kv := NewMemKV()
		require.NoError(t, kv.Save(CartKey, []byte("{not json")))
		s := NewCartStore(kv)
		assert.Empty(t, s.Items())
	})

	t.Run("missing snapshot starts empty", func(t *testing.T) {
		s := NewCartStore(NewMemKV())
		assert.Empty(t, s.Items())
	})
}

func TestCartKeepsServingWhenPersistenceFails(t *testing.T) {
	s := NewCartStore(failKV{})

	s.Add(productA())
	s.Add(productA())

	// in-memory state is updated optimistically despite failed writes
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 2, s.Items()[0].Quantity)
}

func TestCartSubscribers(t *testing.T) {
	s := NewCartStore(NewMemKV())
	calls := 0
	s.Subscribe(func() { calls++ })

	s.Add(productA())
	assert.Equal(t, 1, calls)

	lineID := s.Items()[0].ID
	s.UpdateQuantity(lineID, 4)
	assert.Equal(t, 2, calls)

	t.Run("no-ops do not notify", func(t *testing.T) {
		s.UpdateQuantity(lineID, 0)
		s.Remove("no-such-line")
		assert.Equal(t, 2, calls)
	})

	s.Clear()
	assert.Equal(t, 3, calls)
}
