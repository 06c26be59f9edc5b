package repositories

import (
	"fmt"
	"sync"

	"paradise/internal/models"
)

// InMemoryOrderRepository keeps placed orders in memory, newest first.
type InMemoryOrderRepository struct {
	orders []models.Order
	byID   map[string]int
	mu     sync.RWMutex
}

// NewInMemoryOrderRepository creates a new instance of InMemoryOrderRepository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		byID: make(map[string]int),
	}
}

// Create prepends a new order to the history.
func (r *InMemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[order.ID]; ok {
		return fmt.Errorf("order with ID %s already exists", order.ID)
	}
	r.orders = append([]models.Order{*order}, r.orders...)
	for id := range r.byID {
		r.byID[id]++
	}
	r.byID[order.ID] = 0
	return nil
}

// GetAll returns all orders, newest first.
func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// GetByID returns an order by its ID.
func (r *InMemoryOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s not found", id)
	}
	order := r.orders[idx]
	return &order, nil
}
