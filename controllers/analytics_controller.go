package controllers

import (
	"biscenic-store/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct{}

func NewAnalyticsController() *AnalyticsController {
	return &AnalyticsController{}
}

// @Summary Get analytics report
// @Description Get the admin analytics dashboard dataset (Admin)
// @Tags Admin - Analytics
// @Security BearerAuth
// @Produce json
// @Param time_range query string false "Time range: 7d, 30d or all" default(30d)
// @Param category query string false "Filter popular products by category"
// @Success 200 {object} models.Response
// @Router /admin/analytics [get]
func (ctrl *AnalyticsController) GetReport(c *gin.Context) {
	timeRange := c.DefaultQuery("time_range", "30d")
	category := c.Query("category")

	report := services.BuildAnalyticsReport(timeRange, category)

	c.JSON(200, gin.H{"success": true, "message": "Analytics report retrieved", "data": report})
}
