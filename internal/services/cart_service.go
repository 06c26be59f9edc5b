package services

import (
	"sync"

	"paradise/internal/models"
)

// sessionCart holds one session's cart lines in insertion order plus the
// presentation open/closed flag. Totals are never stored here.
type sessionCart struct {
	lines  []models.CartLine
	isOpen bool
}

// CartService owns the carts of all active sessions. Each session gets an
// independent cart created lazily on first use.
type CartService struct {
	carts map[string]*sessionCart
	mu    sync.Mutex
}

// NewCartService creates a new CartService.
func NewCartService() *CartService {
	return &CartService{
		carts: make(map[string]*sessionCart),
	}
}

func (s *CartService) cart(sessionID string) *sessionCart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &sessionCart{}
		s.carts[sessionID] = c
	}
	return c
}

// AddItem adds one unit of a menu item to the session's cart. If a line for
// the item already exists its quantity is incremented; otherwise a new line
// with quantity 1 is appended. Quantities are unbounded and there is no
// stock check.
func (s *CartService) AddItem(sessionID string, item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
}

// RemoveItem deletes the line for itemID. Removing an absent item is a no-op.
func (s *CartService) RemoveItem(sessionID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of the line for itemID. A quantity of
// zero or below removes the line. No upper bound is enforced.
func (s *CartService) UpdateQuantity(sessionID, itemID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(sessionID, itemID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the session's cart. The open/closed flag is untouched.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(sessionID).lines = nil
}

// SetOpen toggles the cart's presentation visibility flag. The flag is
// orthogonal to the line data.
func (s *CartService) SetOpen(sessionID string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(sessionID).isOpen = open
}

// Lines returns a copy of the session's cart lines in insertion order.
func (s *CartService) Lines(sessionID string) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// TotalItems returns the sum of line quantities, recomputed on every call.
func (s *CartService) TotalItems(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.cart(sessionID).lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity over all lines,
// recomputed on every call so it can never drift from the line data.
func (s *CartService) TotalPrice(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.cart(sessionID).lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Snapshot returns the session's cart with its derived totals computed at
// call time.
func (s *CartService) Snapshot(sessionID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	snapshot := models.Cart{
		Lines:  make([]models.CartLine, len(c.lines)),
		IsOpen: c.isOpen,
	}
	copy(snapshot.Lines, c.lines)
	for _, line := range c.lines {
		snapshot.TotalItems += line.Quantity
		snapshot.TotalPrice += line.Price * float64(line.Quantity)
	}
	return snapshot
}
