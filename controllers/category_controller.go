package controllers

import (
	"biscenic-store/middleware"
	"biscenic-store/models"
	"biscenic-store/repositories"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const categoryCacheKey = "categories_list"

type CategoryController struct {
	categories *repositories.CategoryRepository
}

func invalidateCategoryCache() {
	if models.RedisClient == nil {
		return
	}
	models.RedisClient.Del(context.Background(), categoryCacheKey)
}

func NewCategoryController(categories *repositories.CategoryRepository) *CategoryController {
	return &CategoryController{categories: categories}
}

// @Summary Get all categories
// @Description Get list of all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, categoryCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	categories, err := ctrl.categories.GetAllCategories(ctx)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	response := gin.H{"success": true, "message": "Categories retrieved", "data": categories}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, categoryCacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get category by ID
// @Description Get a single category by ID
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [get]
func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	category, err := ctrl.categories.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category retrieved", "data": category})
}

// @Summary Create new category
// @Description Create a new category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category"
// @Success 201 {object} models.Response
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name is required"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 3 {
		c.JSON(400, gin.H{"success": false, "message": "Category name must be at least 3 characters"})
		return
	}

	category, err := ctrl.categories.CreateCategory(c.Request.Context(), middleware.AdminToken(c), req)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	invalidateCategoryCache()

	c.JSON(201, gin.H{"success": true, "message": "Category created successfully", "data": category})
}

// @Summary Update category
// @Description Update a category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.CategoryRequest true "Category"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name is required"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 3 {
		c.JSON(400, gin.H{"success": false, "message": "Category name must be at least 3 characters"})
		return
	}

	category, err := ctrl.categories.UpdateCategory(c.Request.Context(), middleware.AdminToken(c), c.Param("id"), req)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	invalidateCategoryCache()

	c.JSON(200, gin.H{"success": true, "message": "Category updated successfully", "data": category})
}

// @Summary Delete category
// @Description Delete a category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Response
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.categories.DeleteCategory(c.Request.Context(), middleware.AdminToken(c), id); err != nil {
		respondBackendError(c, err)
		return
	}

	invalidateCategoryCache()

	c.JSON(200, gin.H{"success": true, "message": "Category deleted successfully", "data": gin.H{"id": id}})
}
