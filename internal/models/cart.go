package models

// CartLine is one entry in a cart. Price is copied from the menu item when
// the line is created, so later catalog changes cannot reprice a cart.
type CartLine struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart is a read-side snapshot of a session's cart. TotalItems and
// TotalPrice are computed from Lines at snapshot time, never stored.
type Cart struct {
	Lines      []CartLine `json:"lines"`
	IsOpen     bool       `json:"is_open"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}
