package controllers

import (
	"biscenic-store/middleware"
	"biscenic-store/models"
	"biscenic-store/repositories"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// @Summary Get all users
// @Description List all registered users (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.users.GetAllUsers(c.Request.Context(), middleware.AdminToken(c))
	if err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Users retrieved successfully", "data": users})
}

// @Summary Update user roles
// @Description Replace a user's role set (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param roles body models.UpdateUserRoleRequest true "New roles"
// @Success 200 {object} models.Response
// @Router /admin/users/{id}/role [put]
func (ctrl *UserController) UpdateUserRole(c *gin.Context) {
	var req models.UpdateUserRoleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "roles is required"})
		return
	}

	user, err := ctrl.users.UpdateUserRole(c.Request.Context(), middleware.AdminToken(c), c.Param("id"), req)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "User role updated successfully", "data": user})
}

// @Summary Delete user
// @Description Delete a user account (Admin)
// @Tags Admin - Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Response
// @Router /admin/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.users.DeleteUser(c.Request.Context(), middleware.AdminToken(c), id); err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "User deleted successfully", "data": gin.H{"id": id}})
}
