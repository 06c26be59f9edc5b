package models

// Category partitions the menu. The catalog is static, so categories are
// seeded once at startup and never mutated.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MenuItem represents a single dish on the menu.
type MenuItem struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image" validate:"omitempty,url"`
}
