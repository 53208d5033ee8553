package controllers

import (
	"biscenic-store/middleware"
	"biscenic-store/models"
	"biscenic-store/repositories"
	"biscenic-store/utils"
	"fmt"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	products *repositories.ProductRepository
}

func NewCartController(products *repositories.ProductRepository) *CartController {
	return &CartController{products: products}
}

// @Summary Get cart
// @Description Get the current session's cart contents
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := middleware.GetSession(c).Cart
	items := cart.Items()

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data":    gin.H{"items": items, "count": len(items)},
	})
}

// @Summary Add product to cart
// @Description Add a product to the cart, or bump its quantity by one
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "product_id is required"})
		return
	}

	product, err := ctrl.products.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	cart := middleware.GetSession(c).Cart
	added := cart.Add(utils.ToCartItem(product))

	message := fmt.Sprintf("%s has been added to your cart", added.Name)
	if added.Quantity > 1 {
		message = fmt.Sprintf("%s quantity increased to %d", added.Name, added.Quantity)
	}

	c.JSON(200, gin.H{"success": true, "message": message, "data": added})
}

// @Summary Update cart item quantity
// @Description Set a cart item's quantity; values below 1 are clamped to 1
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param quantity body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cart := middleware.GetSession(c).Cart
	cart.SetQuantity(c.Param("id"), req.Quantity)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product quantity updated",
		"data":    gin.H{"items": cart.Items()},
	})
}

// @Summary Remove cart item
// @Description Remove a product from the cart; removing an absent product is a no-op
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart := middleware.GetSession(c).Cart
	cart.Remove(c.Param("id"))

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product removed from cart",
		"data":    gin.H{"items": cart.Items()},
	})
}

// @Summary Clear cart
// @Description Remove all items from the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	middleware.GetSession(c).Cart.Clear()

	c.JSON(200, gin.H{"success": true, "message": "All items removed from your cart"})
}
