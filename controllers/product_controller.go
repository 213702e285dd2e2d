package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"store-admin/models"
	"store-admin/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// upstreamStatus maps an upstream failure to the status we answer with. A
// missing resource is relayed, anything else is a bad gateway.
func upstreamStatus(err error) int {
	var uErr *services.UpstreamError
	if errors.As(err, &uErr) && uErr.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func (ctrl *ProductController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	sortBy := c.DefaultQuery("sortBy", "id")
	sortDir := c.DefaultQuery("sortDir", "asc")

	result, err := ctrl.products.List(c.Request.Context(), page, size, sortBy, sortDir)
	if err != nil {
		c.JSON(upstreamStatus(err), models.ErrorResponse{Success: false, Message: "Failed to fetch products", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Products retrieved", Data: result})
}

func (ctrl *ProductController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	product, err := ctrl.products.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(upstreamStatus(err), models.ErrorResponse{Success: false, Message: "Failed to fetch product", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

func (ctrl *ProductController) Create(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	product, err := ctrl.products.Create(c.Request.Context(), models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.JSON(upstreamStatus(err), models.ErrorResponse{Success: false, Message: "Failed to create product", Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Product created", Data: product})
}

func (ctrl *ProductController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	product, err := ctrl.products.Update(c.Request.Context(), id, models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		c.JSON(upstreamStatus(err), models.ErrorResponse{Success: false, Message: "Failed to update product", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product updated", Data: product})
}

func (ctrl *ProductController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	if err := ctrl.products.Delete(c.Request.Context(), id); err != nil {
		c.JSON(upstreamStatus(err), models.ErrorResponse{Success: false, Message: "Failed to delete product", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product deleted"})
}
