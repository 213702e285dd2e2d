package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"store-admin/libs"
	"store-admin/models"
)

// OrderService proxies the upstream order API and derives dashboard stats
// from the most recent orders page.
type OrderService struct {
	upstreamClient
}

func NewOrderService(baseURL string, log *libs.Logger) *OrderService {
	return &OrderService{upstreamClient: newUpstreamClient(baseURL, log)}
}

func (s *OrderService) List(ctx context.Context, page, size int, sortBy, sortDir string) (*models.OrderPage, error) {
	target := fmt.Sprintf("%s/orders?page=%d&size=%d&sortBy=%s&sortDir=%s",
		s.baseURL, page, size, url.QueryEscape(sortBy), url.QueryEscape(sortDir))

	var result models.OrderPage
	if err := s.getJSON(ctx, target, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	body := map[string]string{"status": status}

	var result models.Order
	if err := s.doJSON(ctx, http.MethodPatch, fmt.Sprintf("%s/orders/%d/status", s.baseURL, id), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *OrderService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	page, err := s.List(ctx, 0, 50, "orderDate", "desc")
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalOrders:  page.TotalElements,
		StatusCounts: map[string]int{},
	}
	for _, order := range page.Content {
		stats.TotalRevenue += order.TotalAmount
		stats.StatusCounts[strings.ToLower(order.Status)]++
	}
	return stats, nil
}
