package services

import (
	"biscenic-store/models"
	"sync"
)

// Cart holds one session's selected items in insertion order, keyed by the
// backend's opaque product id. At most one entry per product; quantity
// never drops below 1 while the entry exists.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func NewCart() *Cart {
	return &Cart{items: []models.CartItem{}}
}

// Add inserts item with quantity 1, or bumps the existing entry's quantity
// by exactly 1 when the product is already in the cart. Stock is not
// checked here: the cart accepts any quantity and the backend rejects
// orders it cannot fill.
func (c *Cart) Add(item models.CartItem) models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity++
			return c.items[i]
		}
	}

	item.Quantity = 1
	c.items = append(c.items, item)
	return item
}

// Remove deletes the entry for productID. Removing an absent id is a no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered
}

// SetQuantity sets the entry's quantity, clamped to a minimum of 1. There
// is no upper clamp against product stock.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []models.CartItem{}
}

// Items returns a snapshot copy of the cart contents.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make([]models.CartItem, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
