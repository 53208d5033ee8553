package utils

import (
	"biscenic-store/models"
	"strconv"
	"strings"
)

// PlaceholderImage is substituted whenever a product has no usable image.
const PlaceholderImage = "/placeholder.svg?height=400&width=300&query=shop product fallback"

// FormatPrice renders a numeric price as the storefront display string,
// e.g. 1600 -> "$1,600" and 5.5 -> "$5.50".
func FormatPrice(price float64) string {
	negative := price < 0
	if negative {
		price = -price
	}

	s := strconv.FormatFloat(price, 'f', -1, 64)
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
		if len(fracPart) == 1 {
			fracPart += "0"
		}
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := "$" + b.String()
	if fracPart != "" {
		out += "." + fracPart
	}
	if negative {
		out = "-" + out
	}
	return out
}

// MainImage resolves a product's display image: the image marked as main,
// else the first image, else the placeholder.
func MainImage(images []models.ProductImage) string {
	for _, image := range images {
		if image.IsMain {
			return image.URL
		}
	}
	if len(images) > 0 {
		return images[0].URL
	}
	return PlaceholderImage
}

// NormalizeCategoryName turns a category name into its filter slug,
// e.g. "Living Room" -> "living-room".
func NormalizeCategoryName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func IsOutOfStock(product *models.Product) bool {
	return product.Stock <= 0
}

// ToCartItem converts an API product into its cart line. The backend's
// opaque string id is used directly as the cart key.
func ToCartItem(product *models.Product) models.CartItem {
	return models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     FormatPrice(product.Price),
		Image:     MainImage(product.Images),
		Category:  NormalizeCategoryName(product.Category.Name),
		Quantity:  1,
	}
}
