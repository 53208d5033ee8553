package utils

import (
	"biscenic-store/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{1600, "$1,600"},
		{5.5, "$5.50"},
		{0, "$0"},
		{1234567.89, "$1,234,567.89"},
		{999, "$999"},
		{-40, "-$40"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.price))
		})
	}
}

func TestMainImage(t *testing.T) {
	tests := []struct {
		name   string
		images []models.ProductImage
		want   string
	}{
		{
			name: "marked main wins",
			images: []models.ProductImage{
				{URL: "first.jpg"},
				{URL: "main.jpg", IsMain: true},
			},
			want: "main.jpg",
		},
		{
			name: "no main falls back to first",
			images: []models.ProductImage{
				{URL: "first.jpg"},
				{URL: "second.jpg"},
			},
			want: "first.jpg",
		},
		{
			name: "no images falls back to placeholder",
			want: PlaceholderImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MainImage(tt.images))
		})
	}
}

func TestNormalizeCategoryName(t *testing.T) {
	assert.Equal(t, "living-room", NormalizeCategoryName("Living Room"))
	assert.Equal(t, "lighting", NormalizeCategoryName("  Lighting "))
	assert.Equal(t, "home-office-desks", NormalizeCategoryName("Home  Office Desks"))
}

func TestIsOutOfStock(t *testing.T) {
	assert.True(t, IsOutOfStock(&models.Product{Stock: 0}))
	assert.True(t, IsOutOfStock(&models.Product{Stock: -1}))
	assert.False(t, IsOutOfStock(&models.Product{Stock: 1}))
}

func TestToCartItem(t *testing.T) {
	product := &models.Product{
		ID:    "665f1c2ab8d04a3d9c1e2f01",
		Name:  "Velvet Lounge Chair",
		Price: 1600,
		Category: models.Category{
			Name: "Living Room",
		},
		Images: []models.ProductImage{
			{URL: "chair.jpg", IsMain: true},
		},
	}

	item := ToCartItem(product)

	assert.Equal(t, "665f1c2ab8d04a3d9c1e2f01", item.ProductID)
	assert.Equal(t, "$1,600", item.Price)
	assert.Equal(t, "chair.jpg", item.Image)
	assert.Equal(t, "living-room", item.Category)
	assert.Equal(t, 1, item.Quantity)
}
