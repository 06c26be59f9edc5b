package repositories

import (
	"paradise/internal/models"
)

// MenuRepository defines read access to the menu catalog. The catalog is
// static after seeding, so there is no update or delete surface.
type MenuRepository interface {
	GetCategories() ([]models.Category, error)
	GetAll() ([]models.MenuItem, error)
	GetByID(id string) (*models.MenuItem, error)
	GetByCategory(categoryID string) ([]models.MenuItem, error)
}
