package models

// Product mirrors the upstream catalog API's product shape.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	IsActive    bool    `json:"isActive"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// ProductPage is the upstream paginated envelope for products.
type ProductPage struct {
	Content          []Product `json:"content"`
	TotalElements    int       `json:"totalElements"`
	TotalPages       int       `json:"totalPages"`
	Size             int       `json:"size"`
	Number           int       `json:"number"`
	First            bool      `json:"first"`
	Last             bool      `json:"last"`
	NumberOfElements int       `json:"numberOfElements"`
}
