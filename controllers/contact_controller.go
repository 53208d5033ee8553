package controllers

import (
	"biscenic-store/config"
	"biscenic-store/models"
	"log"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	email *models.EmailService
	inbox string
}

func NewContactController(email *models.EmailService, cfg *config.Config) *ContactController {
	return &ContactController{email: email, inbox: cfg.ContactInbox}
}

// @Summary Send contact message
// @Description Deliver a storefront contact form message to the store inbox
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body models.ContactRequest true "Contact message"
// @Success 200 {object} models.Response
// @Failure 503 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) SendMessage(c *gin.Context) {
	if ctrl.email == nil {
		c.JSON(503, gin.H{"success": false, "message": "Contact form is temporarily unavailable"})
		return
	}

	var req models.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "All contact fields are required"})
		return
	}

	if err := ctrl.email.SendContactEmail(ctrl.inbox, req); err != nil {
		log.Printf("Failed to send contact email: %v", err)
		c.JSON(502, gin.H{"success": false, "message": "Failed to send your message, please try again later"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Your message has been sent"})
}
