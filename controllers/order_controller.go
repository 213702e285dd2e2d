package controllers

import (
	"net/http"
	"strconv"

	"store-admin/libs"
	"store-admin/models"
	"store-admin/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
	mailer *services.EmailService
	log    *libs.Logger
}

func NewOrderController(orders *services.OrderService, mailer *services.EmailService, log *libs.Logger) *OrderController {
	return &OrderController{orders: orders, mailer: mailer, log: log}
}

func (ctrl *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	sortBy := c.DefaultQuery("sortBy", "orderDate")
	sortDir := c.DefaultQuery("sortDir", "desc")

	result, err := ctrl.orders.List(c.Request.Context(), page, size, sortBy, sortDir)
	if err != nil {
		c.JSON(upstreamStatus(err), models.ErrorResponse{Success: false, Message: "Failed to fetch orders", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Orders retrieved", Data: result})
}

func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid order id"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	order, err := ctrl.orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.JSON(upstreamStatus(err), models.ErrorResponse{Success: false, Message: "Failed to update order status", Error: err.Error()})
		return
	}

	if ctrl.mailer != nil && order.CustomerEmail != "" {
		if err := ctrl.mailer.SendOrderStatusEmail(order.CustomerEmail, order.ID, order.Status); err != nil {
			ctrl.log.Warn("order status email failed", "order_id", order.ID, "error", err)
		}
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order status updated", Data: order})
}

func (ctrl *OrderController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.orders.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(upstreamStatus(err), models.ErrorResponse{Success: false, Message: "Failed to fetch dashboard", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Dashboard retrieved", Data: stats})
}
