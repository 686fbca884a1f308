package cart

import (
	"sync"

	"github.com/google/uuid"

	"foodhub/internal/domain"
)

// IDFunc produces line ids. Injectable so tests control id assignment.
type IDFunc func() string

// Store is the single source of truth for the active, unplaced cart.
// Mutations are guarded by a mutex and immediately observable to readers.
type Store struct {
	mu    sync.Mutex
	lines []domain.CartLine
	newID IDFunc
}

// NewStore builds an empty cart. A nil newID falls back to random UUIDs.
func NewStore(newID IDFunc) *Store {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Store{newID: newID}
}

// AddItem appends line to the cart, merging with an existing line for the
// same (productId, storeId) pair by incrementing its quantity. The
// incoming line's id is ignored; new lines get a freshly generated one.
// Returns the stored line after the merge.
func (s *Store) AddItem(line domain.CartLine) domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == line.ProductID && s.lines[i].StoreID == line.StoreID {
			s.lines[i].Quantity += line.Quantity
			return s.lines[i]
		}
	}

	line.ID = s.newID()
	s.lines = append(s.lines, line)
	return line
}

// UpdateQuantity sets the quantity of the line with the given id. A
// quantity of zero or less removes the line instead. Unknown ids are
// silently ignored.
func (s *Store) UpdateQuantity(lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(lineID)
		return
	}
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem removes the line with the given id; no-op if absent.
func (s *Store) RemoveItem(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(lineID)
}

func (s *Store) remove(lineID string) {
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a snapshot copy of the cart in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPriceCents is the sum of line totals across all lines.
func (s *Store) TotalPriceCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, line := range s.lines {
		total += line.TotalCents()
	}
	return total
}

// GroupByStore partitions the cart by store in first-seen-store order.
func (s *Store) GroupByStore() []domain.StoreGroup {
	return domain.GroupByStore(s.Lines())
}
