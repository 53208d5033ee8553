package repositories

import (
	"biscenic-store/models"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDecodesEnvelopedData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Products fetched",
			"data": []map[string]interface{}{
				{"_id": "p1", "name": "Velvet Lounge Chair", "price": 1600},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL, nil)

	products := []models.Product{}
	err := client.getJSON(context.Background(), "/products", "", &products)
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, 1600.0, products[0].Price)
}

func TestClientDecodesBareResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "jwt-token",
			"user":  map[string]interface{}{"_id": "u1", "email": "admin@biscenic.com"},
		})
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL, nil)

	var login models.LoginResponse
	err := client.doJSON(context.Background(), http.MethodPost, "/users/login", "", nil, &login, false)
	require.NoError(t, err)

	assert.Equal(t, "jwt-token", login.Token)
	assert.Equal(t, "u1", login.User.ID)
}

func TestClientUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL, nil)

	err := client.getJSON(context.Background(), "/orders", "stale-token", &[]models.Order{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClientAPIErrorCarriesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Product not found",
			"error":   true,
		})
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL, nil)

	err := client.getJSON(context.Background(), "/products/missing", "", &models.Product{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Product not found", apiErr.Message)
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "ok", "data": []models.Order{}})
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL, nil)

	err := client.getJSON(context.Background(), "/orders", "admin-token", &[]models.Order{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer admin-token", gotAuth)
}

func TestClientNullDataLeavesOutUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "deleted", "data": nil})
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL, nil)

	err := client.doJSON(context.Background(), http.MethodDelete, "/products/p1", "tok", nil, nil, true)
	assert.NoError(t, err)
}
