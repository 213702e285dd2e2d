package controllers

import (
	"net/http"
	"strconv"

	"store-admin/models"
	"store-admin/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.cart.Get(c.GetString("session_id"))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart retrieved", Data: cart})
}

func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	cart := ctrl.cart.AddItem(c.GetString("session_id"), models.Product{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item added", Data: cart})
}

func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	cart := ctrl.cart.UpdateQuantity(c.GetString("session_id"), productID, req.Quantity)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Quantity updated", Data: cart})
}

func (ctrl *CartController) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	cart := ctrl.cart.RemoveItem(c.GetString("session_id"), productID)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Item removed", Data: cart})
}

func (ctrl *CartController) Clear(c *gin.Context) {
	cart := ctrl.cart.Clear(c.GetString("session_id"))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared", Data: cart})
}

// Checkout snapshots the cart, empties it and returns the snapshot as the
// order summary.
func (ctrl *CartController) Checkout(c *gin.Context) {
	snapshot := ctrl.cart.Checkout(c.GetString("session_id"))
	if snapshot.ItemCount == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Cart is empty"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Checkout complete", Data: snapshot})
}
