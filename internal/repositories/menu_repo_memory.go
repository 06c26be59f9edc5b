package repositories

import (
	"fmt"
	"sync"

	"paradise/internal/models"
)

// InMemoryMenuRepository is an in-memory implementation of MenuRepository.
// Items keep their insertion order so the menu renders the way the catalog
// lists it.
type InMemoryMenuRepository struct {
	categories []models.Category
	items      []models.MenuItem
	byID       map[string]int
	mu         sync.RWMutex
}

// NewInMemoryMenuRepository creates an empty repository. Use AddCategory
// and AddItem to seed it.
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		byID: make(map[string]int),
	}
}

// AddCategory registers a category.
func (r *InMemoryMenuRepository) AddCategory(category models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.ID == category.ID {
			return fmt.Errorf("category with ID %s already exists", category.ID)
		}
	}
	r.categories = append(r.categories, category)
	return nil
}

// AddItem registers a menu item.
func (r *InMemoryMenuRepository) AddItem(item models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[item.ID]; ok {
		return fmt.Errorf("menu item with ID %s already exists", item.ID)
	}
	r.byID[item.ID] = len(r.items)
	r.items = append(r.items, item)
	return nil
}

// GetCategories returns all categories in catalog order.
func (r *InMemoryMenuRepository) GetCategories() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]models.Category, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}

// GetAll returns every menu item in catalog order.
func (r *InMemoryMenuRepository) GetAll() ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MenuItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

// GetByID returns a menu item by its ID.
func (r *InMemoryMenuRepository) GetByID(id string) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("menu item with ID %s not found", id)
	}
	item := r.items[idx]
	return &item, nil
}

// GetByCategory returns the items whose category matches categoryID.
func (r *InMemoryMenuRepository) GetByCategory(categoryID string) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []models.MenuItem
	for _, item := range r.items {
		if item.Category == categoryID {
			items = append(items, item)
		}
	}
	return items, nil
}
