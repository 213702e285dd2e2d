package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ID       int     `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Category string  `json:"category"`
	ImageURL string  `json:"imageUrl"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock" binding:"gte=0"`
	IsActive    bool    `json:"isActive"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
}
