package models

type Order struct {
	ID            int     `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	OrderDate     string  `json:"orderDate"`
}

// OrderPage is the upstream paginated envelope for orders.
type OrderPage struct {
	Content          []Order `json:"content"`
	TotalElements    int     `json:"totalElements"`
	TotalPages       int     `json:"totalPages"`
	Size             int     `json:"size"`
	Number           int     `json:"number"`
	First            bool    `json:"first"`
	Last             bool    `json:"last"`
	NumberOfElements int     `json:"numberOfElements"`
}

type DashboardStats struct {
	TotalOrders  int            `json:"total_orders"`
	TotalRevenue float64        `json:"total_revenue"`
	StatusCounts map[string]int `json:"status_counts"`
}
