package controllers

import (
	"biscenic-store/middleware"
	"biscenic-store/models"
	"biscenic-store/repositories"
	"biscenic-store/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	payments *repositories.PaymentRepository
}

func NewCheckoutController(payments *repositories.PaymentRepository) *CheckoutController {
	return &CheckoutController{payments: payments}
}

// @Summary Get checkout summary
// @Description Compute subtotal, tax, shipping, and total for the current cart
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/summary [get]
func (ctrl *CheckoutController) GetSummary(c *gin.Context) {
	cart := middleware.GetSession(c).Cart

	summary, err := services.BuildCheckoutSummary(cart.Items())
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Your cart is empty. Add items before checkout"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Checkout summary", "data": summary})
}

// @Summary Initialize payment
// @Description Start a gateway payment for the current cart and return the authorization URL
// @Tags Checkout
// @Accept json
// @Produce json
// @Param shipping body models.CheckoutRequest true "Shipping information"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/pay [post]
func (ctrl *CheckoutController) Pay(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Please fill in all required fields"})
		return
	}

	cart := middleware.GetSession(c).Cart

	// The empty-cart guard runs before any gateway call: a zero-amount
	// payment must never be initialized.
	summary, err := services.BuildCheckoutSummary(cart.Items())
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Your cart is empty. Add items before checkout"})
		return
	}

	auth, err := ctrl.payments.InitializePayment(c.Request.Context(), req.Email, summary.AmountKobo)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Payment initialization successful",
		"data": gin.H{
			"authorization_url": auth.AuthorizationURL,
			"summary":           summary,
		},
	})
}

// @Summary Verify payment
// @Description Verify a gateway payment after the customer returns from the gateway
// @Tags Checkout
// @Produce json
// @Param reference query string true "Gateway transaction reference"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/verify [get]
func (ctrl *CheckoutController) VerifyPayment(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(400, gin.H{"success": false, "message": "Payment reference is required"})
		return
	}

	payment, err := ctrl.payments.VerifyPayment(c.Request.Context(), reference)
	if err != nil {
		// Verification failed outright; keep the cart so the customer
		// can retry.
		respondBackendError(c, err)
		return
	}

	cart := middleware.GetSession(c).Cart

	if payment.Status != models.PaymentStatusSuccess {
		c.JSON(402, gin.H{
			"success": false,
			"message": "Your payment was not successful. Please try again",
			"data":    gin.H{"status": payment.Status, "reference": payment.Reference},
		})
		return
	}

	cart.Clear()

	c.JSON(200, gin.H{
		"success": true,
		"message": "Payment successful! Your order has been confirmed",
		"data":    payment,
	})
}
