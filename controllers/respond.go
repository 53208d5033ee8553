package controllers

import (
	"biscenic-store/middleware"
	"biscenic-store/repositories"
	"errors"

	"github.com/gin-gonic/gin"
)

// respondBackendError maps a repository error onto the caller's response.
// A 401 ends the admin session: the stored token is purged and the caller
// must log in again. Backend-reported errors keep their status and message;
// transport failures become a 502.
func respondBackendError(c *gin.Context, err error) {
	if errors.Is(err, repositories.ErrUnauthorized) {
		if session := middleware.GetSession(c); session != nil {
			session.ClearToken()
		}
		c.JSON(401, gin.H{"success": false, "message": "Session expired, please log in again"})
		return
	}

	var apiErr *repositories.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"success": false, "message": apiErr.Message})
		return
	}

	c.JSON(502, gin.H{"success": false, "message": "Store backend is unreachable", "error": err.Error()})
}
