package services

import (
	"biscenic-store/models"
	"errors"
	"math"
	"strconv"
	"strings"
)

// VAT applied on the cart subtotal. Shipping is always free.
const (
	TaxRate     = 0.075
	ShippingFee = 0.0
)

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutSummary struct {
	Items      []models.CartItem `json:"items"`
	Subtotal   float64           `json:"subtotal"`
	Shipping   float64           `json:"shipping"`
	Tax        float64           `json:"tax"`
	Total      float64           `json:"total"`
	AmountKobo int64             `json:"amount_kobo"`
}

// ParseDisplayPrice converts a display price like "$1,600.50" back to its
// numeric value by stripping everything except digits, '.' and '-'.
func ParseDisplayPrice(display string) float64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}

// BuildCheckoutSummary is a pure function of the cart snapshot: the same
// items always produce the same summary. AmountKobo is the total in the
// gateway's minor currency unit, standard rounding. An empty cart is
// refused so a zero-amount payment is never initialized.
func BuildCheckoutSummary(items []models.CartItem) (*CheckoutSummary, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += ParseDisplayPrice(item.Price) * float64(item.Quantity)
	}

	tax := subtotal * TaxRate
	total := subtotal + ShippingFee + tax

	return &CheckoutSummary{
		Items:      items,
		Subtotal:   subtotal,
		Shipping:   ShippingFee,
		Tax:        tax,
		Total:      total,
		AmountKobo: int64(math.Round(total * 100)),
	}, nil
}
