package models

type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Quantity int     `json:"quantity"`
}

// Cart is a visitor's line items plus derived totals. Total and ItemCount are
// recomputed from Items after every mutation, never set independently.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}
