package services

import (
	"biscenic-store/models"
	"biscenic-store/repositories"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"
)

const orderStatsCacheKey = "orders_stats"

// ErrStatusUnchanged signals that the requested status equals the current
// one; no backend call was issued.
var ErrStatusUnchanged = errors.New("order status unchanged")

// OrderService owns the admin order lifecycle. It remembers the last
// status it saw for each order so a same-status update can be skipped
// without a round trip, and it keeps the aggregate stats cache coherent
// with mutations.
type OrderService struct {
	orders *repositories.OrderRepository

	mu       sync.Mutex
	statuses map[string]string
}

func NewOrderService(orders *repositories.OrderRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		statuses: make(map[string]string),
	}
}

func (s *OrderService) GetAllOrders(ctx context.Context, token string) ([]models.Order, error) {
	orders, err := s.orders.GetAllOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for _, order := range orders {
		s.statuses[order.ID] = order.Status
	}
	s.mu.Unlock()

	return orders, nil
}

// GetUserOrders lists one customer's order history.
func (s *OrderService) GetUserOrders(ctx context.Context, token, userID string) ([]models.Order, error) {
	orders, err := s.orders.GetUserOrders(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for _, order := range orders {
		s.statuses[order.ID] = order.Status
	}
	s.mu.Unlock()

	return orders, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, token, id string) (*models.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, token, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.statuses[order.ID] = order.Status
	s.mu.Unlock()

	return order, nil
}

// UpdateStatus requests the transition from the backend, which is the
// authority on legality. When the new status matches the last one seen the
// call is skipped entirely (ErrStatusUnchanged). On success the stats
// cache is invalidated so the next read re-fetches.
func (s *OrderService) UpdateStatus(ctx context.Context, token string, req models.UpdateOrderStatusRequest) (*models.Order, error) {
	s.mu.Lock()
	current, known := s.statuses[req.OrderID]
	s.mu.Unlock()

	if known && current == req.Status {
		return nil, ErrStatusUnchanged
	}

	order, err := s.orders.UpdateOrderStatus(ctx, token, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.statuses[order.ID] = order.Status
	s.mu.Unlock()

	s.invalidateStats(ctx)
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, token, id string) error {
	if err := s.orders.DeleteOrder(ctx, token, id); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.statuses, id)
	s.mu.Unlock()

	s.invalidateStats(ctx)
	return nil
}

// GetStats computes the admin dashboard aggregates from the full order
// list, cached in Redis for a few minutes since every mutation invalidates
// the key anyway.
func (s *OrderService) GetStats(ctx context.Context, token string) (*models.OrderStats, error) {
	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, orderStatsCacheKey).Result()
		if err == nil {
			var stats models.OrderStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	orders, err := s.GetAllOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	stats := computeOrderStats(orders)

	if models.RedisClient != nil {
		payload, _ := json.Marshal(stats)
		models.RedisClient.Set(ctx, orderStatsCacheKey, string(payload), 5*time.Minute)
	}

	return stats, nil
}

func (s *OrderService) invalidateStats(ctx context.Context) {
	if models.RedisClient != nil {
		models.RedisClient.Del(ctx, orderStatsCacheKey)
	}
}

func computeOrderStats(orders []models.Order) *models.OrderStats {
	stats := &models.OrderStats{TotalOrders: len(orders)}

	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPending:
			stats.PendingOrders++
		case models.OrderStatusCompleted:
			stats.CompletedOrders++
		case models.OrderStatusCancelled:
			stats.CancelledOrders++
		}
		stats.TotalRevenue += order.TotalAmount
	}

	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	return stats
}
