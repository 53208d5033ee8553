package controllers

import (
	"biscenic-store/config"
	"biscenic-store/middleware"
	"biscenic-store/models"
	"biscenic-store/repositories"
	"biscenic-store/utils"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const productCacheKey = "products_list"

type ProductController struct {
	products *repositories.ProductRepository
}

func NewProductController(products *repositories.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, productCacheKey+"*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get all products
// @Description Get the product catalog with display helpers resolved
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, productCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.products.GetAllProducts(ctx)
	if err != nil {
		respondBackendError(c, err)
		return
	}

	items := []gin.H{}
	for i := range products {
		items = append(items, productView(&products[i]))
	}

	response := gin.H{"success": true, "message": "Products retrieved", "data": items}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, productCacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.products.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBackendError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": productView(product)})
}

func productView(p *models.Product) gin.H {
	return gin.H{
		"_id":           p.ID,
		"name":          p.Name,
		"description":   p.Description,
		"price":         p.Price,
		"display_price": utils.FormatPrice(p.Price),
		"stock":         p.Stock,
		"out_of_stock":  utils.IsOutOfStock(p),
		"category":      p.Category,
		"images":        p.Images,
		"main_image":    utils.MainImage(p.Images),
		"created_at":    p.CreatedAt,
		"updated_at":    p.UpdatedAt,
	}
}

var allowedImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

func validateImageUploads(c *gin.Context, required bool) bool {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid multipart form"})
		return false
	}

	files := form.File["images"]
	if required && len(files) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "At least one image is required"})
		return false
	}

	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			c.JSON(400, gin.H{"success": false, "message": "Invalid file type. Only jpg, jpeg, png, gif, webp allowed"})
			return false
		}
		if file.Size > config.AppConfig.MaxUploadSize {
			c.JSON(400, gin.H{"success": false, "message": fmt.Sprintf("File size too large. Maximum %dMB", config.AppConfig.MaxUploadSize/(1024*1024))})
			return false
		}
	}

	return true
}

func productFormFields(c *gin.Context, keys ...string) url.Values {
	fields := url.Values{}
	for _, key := range keys {
		if value := strings.TrimSpace(c.PostForm(key)); value != "" {
			fields.Set(key, value)
		}
	}
	return fields
}

// @Summary Create product
// @Description Create new product with images (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string true "Product description"
// @Param price formData number true "Product price"
// @Param stock formData int true "Product stock"
// @Param category formData string true "Category ID"
// @Param images formData file true "Product images"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	price := strings.TrimSpace(c.PostForm("price"))
	category := strings.TrimSpace(c.PostForm("category"))

	if name == "" || price == "" || category == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name, price, and category are required"})
		return
	}

	if !validateImageUploads(c, true) {
		return
	}

	form, _ := c.MultipartForm()
	fields := productFormFields(c, "name", "description", "price", "stock", "category")

	product, err := ctrl.products.CreateProduct(c.Request.Context(), middleware.AdminToken(c), fields, form.File["images"])
	if err != nil {
		respondBackendError(c, err)
		return
	}

	invalidateProductCache()

	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": productView(product)})
}

// @Summary Update product
// @Description Update product fields and optionally replace images (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param name formData string false "Product name"
// @Param description formData string false "Product description"
// @Param price formData number false "Product price"
// @Param stock formData int false "Product stock"
// @Param category formData string false "Category ID"
// @Param existingImageIds formData string false "Comma-separated image IDs to keep"
// @Param images formData file false "New product images"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	if !validateImageUploads(c, false) {
		return
	}

	form, _ := c.MultipartForm()
	fields := productFormFields(c, "name", "description", "price", "stock", "category", "existingImageIds")

	product, err := ctrl.products.UpdateProduct(c.Request.Context(), middleware.AdminToken(c), c.Param("id"), fields, form.File["images"])
	if err != nil {
		respondBackendError(c, err)
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully", "data": productView(product)})
}

// @Summary Update product images
// @Description Replace the product's image set (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param existingImageIds formData string true "Comma-separated image IDs to keep"
// @Param images formData file true "New product images"
// @Success 200 {object} models.Response
// @Router /admin/products/{id}/images [patch]
func (ctrl *ProductController) UpdateProductImages(c *gin.Context) {
	if !validateImageUploads(c, false) {
		return
	}

	form, _ := c.MultipartForm()
	existingImageIDs := strings.TrimSpace(c.PostForm("existingImageIds"))

	product, err := ctrl.products.UpdateProductImages(c.Request.Context(), middleware.AdminToken(c), c.Param("id"), existingImageIDs, form.File["images"])
	if err != nil {
		respondBackendError(c, err)
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product images updated successfully", "data": productView(product)})
}

// @Summary Delete product
// @Description Delete product permanently (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.products.DeleteProduct(c.Request.Context(), middleware.AdminToken(c), id); err != nil {
		respondBackendError(c, err)
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product deleted permanently", "data": gin.H{"id": id}})
}
