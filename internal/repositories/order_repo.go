package repositories

import (
	"paradise/internal/models"
)

// OrderRepository defines the interface for order storage. Orders live only
// for the lifetime of the process; the history is written on every placed
// order and exposed read-only.
type OrderRepository interface {
	Create(order *models.Order) error
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
}
