package models

// CartItem is a session-scoped cart line. ProductID is the backend's
// opaque product identifier and is the cart key: at most one entry per id.
// Price keeps the display string shown in the storefront; the checkout
// calculator parses it back to a number.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
}
