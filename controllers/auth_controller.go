package controllers

import (
	"biscenic-store/middleware"
	"biscenic-store/models"
	"biscenic-store/repositories"
	"errors"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users *repositories.UserRepository
}

func NewAuthController(users *repositories.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// @Summary Admin login
// @Description Authenticate against the store backend and bind the token to the session
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	login, err := ctrl.users.Login(c.Request.Context(), req)
	if err != nil {
		var apiErr *repositories.APIError
		if errors.Is(err, repositories.ErrUnauthorized) || (errors.As(err, &apiErr) && apiErr.StatusCode < 500) {
			c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		respondBackendError(c, err)
		return
	}

	if session := middleware.GetSession(c); session != nil {
		session.SetToken(login.Token)
	}

	c.JSON(200, gin.H{"success": true, "message": "Login successful", "data": gin.H{"user": login.User}})
}

// @Summary Logout
// @Description Drop the admin token from the session
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if session := middleware.GetSession(c); session != nil {
		session.ClearToken()
	}
	c.JSON(200, gin.H{"success": true, "message": "Logged out successfully"})
}

// @Summary Check admin access
// @Description Ask the backend whether the session token grants admin access
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/check [get]
func (ctrl *AuthController) CheckAdmin(c *gin.Context) {
	check, err := ctrl.users.CheckAdmin(c.Request.Context(), middleware.AdminToken(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}

	if !check.IsAdmin {
		c.JSON(403, gin.H{"success": false, "message": "Admin access required"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Admin access confirmed", "data": check})
}
