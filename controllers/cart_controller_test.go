package controllers

import (
	"biscenic-store/middleware"
	"biscenic-store/repositories"
	"biscenic-store/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartHarness(t *testing.T) *checkoutHarness {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/products/") {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "Not found", "error": true})
			return
		}

		id := strings.TrimPrefix(r.URL.Path, "/products/")
		if id != "p1" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "Product not found", "error": true})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Product fetched",
			"data": map[string]interface{}{
				"_id":      "p1",
				"name":     "Velvet Lounge Chair",
				"price":    1600,
				"stock":    4,
				"category": map[string]string{"_id": "c1", "name": "Living Room"},
				"images":   []map[string]interface{}{{"url": "chair.jpg", "isMain": true}},
			},
		})
	}))
	t.Cleanup(server.Close)

	products := repositories.NewProductRepository(repositories.NewClientWithBase(server.URL, nil))
	ctrl := NewCartController(products)

	store := services.NewSessionStore(time.Hour)
	session := store.Create()

	engine := gin.New()
	engine.Use(middleware.SessionMiddleware(store))
	engine.GET("/cart", ctrl.GetCart)
	engine.POST("/cart/items", ctrl.AddItem)
	engine.PATCH("/cart/items/:id", ctrl.UpdateQuantity)
	engine.DELETE("/cart/items/:id", ctrl.RemoveItem)
	engine.DELETE("/cart", ctrl.ClearCart)

	return &checkoutHarness{engine: engine, session: session}
}

func TestAddItemToCart(t *testing.T) {
	h := newCartHarness(t)

	w := h.do(http.MethodPost, "/cart/items", `{"product_id":"p1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Velvet Lounge Chair has been added to your cart")

	items := h.session.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "$1,600", items[0].Price)
	assert.Equal(t, "living-room", items[0].Category)
}

func TestAddSameItemTwiceBumpsQuantity(t *testing.T) {
	h := newCartHarness(t)

	h.do(http.MethodPost, "/cart/items", `{"product_id":"p1"}`)
	w := h.do(http.MethodPost, "/cart/items", `{"product_id":"p1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "quantity increased to 2")
	require.Len(t, h.session.Cart.Items(), 1)
}

func TestAddUnknownProduct(t *testing.T) {
	h := newCartHarness(t)

	w := h.do(http.MethodPost, "/cart/items", `{"product_id":"missing"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, h.session.Cart.Len())
}

func TestUpdateQuantityClampsBelowOne(t *testing.T) {
	h := newCartHarness(t)
	h.do(http.MethodPost, "/cart/items", `{"product_id":"p1"}`)

	w := h.do(http.MethodPatch, "/cart/items/p1", `{"quantity":0}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, h.session.Cart.Items()[0].Quantity)
}

func TestRemoveAndClear(t *testing.T) {
	h := newCartHarness(t)
	h.do(http.MethodPost, "/cart/items", `{"product_id":"p1"}`)

	w := h.do(http.MethodDelete, "/cart/items/p1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, h.session.Cart.Len())

	h.do(http.MethodPost, "/cart/items", `{"product_id":"p1"}`)
	w = h.do(http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, h.session.Cart.Len())
}
