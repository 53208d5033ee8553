package controllers

import (
	"biscenic-store/middleware"
	"biscenic-store/models"
	"biscenic-store/services"
	"biscenic-store/utils"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// orderItemView renders one order line. A nil product means it was deleted
// after the order was placed; the line renders as unavailable instead of
// failing the whole order view.
func orderItemView(item models.OrderItem) gin.H {
	if item.Product == nil {
		return gin.H{
			"product_name":  "Product Not Found",
			"product_image": utils.PlaceholderImage,
			"category":      "Unknown Category",
			"quantity":      item.Quantity,
			"price":         item.Price,
			"unavailable":   true,
		}
	}

	categoryName := item.Product.Category.Name
	if categoryName == "" {
		categoryName = "Unknown Category"
	}

	return gin.H{
		"product_id":    item.Product.ID,
		"product_name":  item.Product.Name,
		"product_image": utils.MainImage(item.Product.Images),
		"category":      categoryName,
		"quantity":      item.Quantity,
		"price":         item.Price,
		"unavailable":   false,
	}
}

func orderView(order models.Order) gin.H {
	items := []gin.H{}
	for _, item := range order.OrderItems {
		items = append(items, orderItemView(item))
	}

	return gin.H{
		"_id":            order.ID,
		"user":           order.User,
		"total_amount":   order.TotalAmount,
		"status":         order.Status,
		"payment_method": order.PaymentMethod,
		"order_items":    items,
		"created_at":     order.CreatedAt,
		"updated_at":     order.UpdatedAt,
	}
}

// @Summary Get all orders
// @Description Get all orders (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.orders.GetAllOrders(c.Request.Context(), middleware.AdminToken(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}

	views := []gin.H{}
	for _, order := range orders {
		views = append(views, orderView(order))
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved successfully", "data": views})
}

// @Summary Get a user's orders
// @Description Get one customer's order history (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Router /admin/users/{id}/orders [get]
func (ctrl *OrderController) GetUserOrders(c *gin.Context) {
	orders, err := ctrl.orders.GetUserOrders(c.Request.Context(), middleware.AdminToken(c), c.Param("id"))
	if err != nil {
		respondBackendError(c, err)
		return
	}

	views := []gin.H{}
	for _, order := range orders {
		views = append(views, orderView(order))
	}

	c.JSON(200, gin.H{"success": true, "message": "User orders retrieved successfully", "data": views})
}

// @Summary Get order by ID
// @Description Get order details (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	order, err := ctrl.orders.GetOrderByID(c.Request.Context(), middleware.AdminToken(c), c.Param("id"))
	if err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved successfully", "data": orderView(*order)})
}

// @Summary Update order status
// @Description Request an order status transition (Admin). Same-status updates are skipped without a backend call
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param status body models.UpdateOrderStatusRequest true "Order ID and new status"
// @Success 200 {object} models.Response
// @Router /admin/orders/status [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "order_id and status are required"})
		return
	}

	if !models.ValidOrderStatus(req.Status) {
		c.JSON(400, gin.H{"success": false, "message": fmt.Sprintf("Invalid status %q", req.Status)})
		return
	}

	order, err := ctrl.orders.UpdateStatus(c.Request.Context(), middleware.AdminToken(c), req)
	if errors.Is(err, services.ErrStatusUnchanged) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Order status unchanged",
			"data":    gin.H{"order_id": req.OrderID, "status": req.Status},
		})
		return
	}
	if err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated successfully", "data": orderView(*order)})
}

// @Summary Delete order
// @Description Delete order (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.orders.DeleteOrder(c.Request.Context(), middleware.AdminToken(c), id); err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order deleted successfully", "data": gin.H{"id": id}})
}

// @Summary Get order statistics
// @Description Get the admin dashboard order aggregates (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *OrderController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.orders.GetStats(c.Request.Context(), middleware.AdminToken(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order statistics retrieved", "data": stats})
}
