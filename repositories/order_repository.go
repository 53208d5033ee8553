package repositories

import (
	"biscenic-store/models"
	"context"
	"net/http"
	"net/url"
)

type OrderRepository struct {
	client *Client
}

func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client: client}
}

func (r *OrderRepository) GetAllOrders(ctx context.Context, token string) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.client.doJSON(ctx, http.MethodGet, "/orders", token, nil, &orders, true); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, token, id string) (*models.Order, error) {
	var order models.Order
	if err := r.client.doJSON(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), token, nil, &order, true); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetUserOrders(ctx context.Context, token, userID string) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.client.doJSON(ctx, http.MethodGet, "/orders/user/"+url.PathEscape(userID), token, nil, &orders, true); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus issues PUT /orders/status. The call carries no
// idempotency key, so it is never retried here: a duplicate after a timeout
// could double-apply if the backend does not deduplicate.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, token string, req models.UpdateOrderStatusRequest) (*models.Order, error) {
	body := map[string]string{
		"orderId": req.OrderID,
		"status":  req.Status,
	}

	var order models.Order
	if err := r.client.doJSON(ctx, http.MethodPut, "/orders/status", token, body, &order, true); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, token, id string) error {
	return r.client.doJSON(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), token, nil, nil, true)
}
