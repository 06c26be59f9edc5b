package services

import (
	"fmt"

	"paradise/internal/models"
	"paradise/internal/repositories"
)

// MenuService handles read access to the menu catalog.
type MenuService struct {
	repo repositories.MenuRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(repo repositories.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// GetCategories retrieves all menu categories.
func (s *MenuService) GetCategories() ([]models.Category, error) {
	return s.repo.GetCategories()
}

// GetAllItems retrieves every menu item.
func (s *MenuService) GetAllItems() ([]models.MenuItem, error) {
	return s.repo.GetAll()
}

// GetItemByID retrieves a single menu item by its ID.
func (s *MenuService) GetItemByID(id string) (*models.MenuItem, error) {
	return s.repo.GetByID(id)
}

// GetItemsByCategory retrieves the items of one category. Unknown category
// ids yield an error rather than an empty menu.
func (s *MenuService) GetItemsByCategory(categoryID string) ([]models.MenuItem, error) {
	categories, err := s.repo.GetCategories()
	if err != nil {
		return nil, err
	}
	known := false
	for _, c := range categories {
		if c.ID == categoryID {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("category with ID %s not found", categoryID)
	}
	return s.repo.GetByCategory(categoryID)
}
