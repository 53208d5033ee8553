package controllers

import (
	"biscenic-store/models"
	"biscenic-store/utils"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemViewDeletedProduct(t *testing.T) {
	view := orderItemView(models.OrderItem{Product: nil, Quantity: 2, Price: 45})

	assert.Equal(t, "Product Not Found", view["product_name"])
	assert.Equal(t, utils.PlaceholderImage, view["product_image"])
	assert.Equal(t, "Unknown Category", view["category"])
	assert.Equal(t, true, view["unavailable"])
	assert.Equal(t, 2, view["quantity"])
	assert.Equal(t, 45.0, view["price"])
}

func TestOrderItemViewLiveProduct(t *testing.T) {
	item := models.OrderItem{
		Product: &models.Product{
			ID:       "p1",
			Name:     "Velvet Lounge Chair",
			Category: models.Category{Name: "Living Room"},
			Images:   []models.ProductImage{{URL: "chair.jpg", IsMain: true}},
		},
		Quantity: 1,
		Price:    1600,
	}

	view := orderItemView(item)

	assert.Equal(t, "Velvet Lounge Chair", view["product_name"])
	assert.Equal(t, "chair.jpg", view["product_image"])
	assert.Equal(t, "Living Room", view["category"])
	assert.Equal(t, false, view["unavailable"])
}

func TestOrderViewMixedItems(t *testing.T) {
	order := models.Order{
		ID:          "ord-1",
		Status:      models.OrderStatusPending,
		TotalAmount: 1645,
		OrderItems: []models.OrderItem{
			{Product: &models.Product{Name: "Velvet Lounge Chair"}, Quantity: 1, Price: 1600},
			{Product: nil, Quantity: 1, Price: 45},
		},
	}

	view := orderView(order)

	items, ok := view["order_items"].([]gin.H)
	require.True(t, ok)
	require.Len(t, items, 2)

	assert.Equal(t, false, items[0]["unavailable"])
	assert.Equal(t, true, items[1]["unavailable"])
	assert.Equal(t, "Product Not Found", items[1]["product_name"])
}
