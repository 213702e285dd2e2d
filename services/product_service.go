package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"store-admin/libs"
	"store-admin/models"
)

// ProductService proxies the upstream product catalog. All pricing and
// inventory logic lives upstream; this layer only relays.
type ProductService struct {
	upstreamClient
}

func NewProductService(baseURL string, log *libs.Logger) *ProductService {
	return &ProductService{upstreamClient: newUpstreamClient(baseURL, log)}
}

func (s *ProductService) List(ctx context.Context, page, size int, sortBy, sortDir string) (*models.ProductPage, error) {
	target := fmt.Sprintf("%s/products?page=%d&size=%d&sortBy=%s&sortDir=%s",
		s.baseURL, page, size, url.QueryEscape(sortBy), url.QueryEscape(sortDir))

	var result models.ProductPage
	if err := s.getJSON(ctx, target, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ProductService) Get(ctx context.Context, id int) (*models.Product, error) {
	var result models.Product
	if err := s.getJSON(ctx, fmt.Sprintf("%s/products/%d", s.baseURL, id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ProductService) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	var result models.Product
	if err := s.doJSON(ctx, http.MethodPost, s.baseURL+"/products", product, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ProductService) Update(ctx context.Context, id int, product models.Product) (*models.Product, error) {
	product.ID = id

	var result models.Product
	if err := s.doJSON(ctx, http.MethodPut, fmt.Sprintf("%s/products/%d", s.baseURL, id), product, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/products/%d", s.baseURL, id), nil, nil)
}
