package store

import (
	"context"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order(nil), s.orders...)
}

func (s *Store) OrdersForUser(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// PlaceOrder 把服务字段快照进订单；直接购买为 Pending，支付成功直接 Active
func (s *Store) PlaceOrder(ctx context.Context, svc domain.Service, status string) (domain.Order, error) {
	if status == "" {
		status = domain.OrderPending
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.Order{}, ErrNotAuthenticated
	}
	o := domain.Order{
		ID:           s.newID(),
		ServiceID:    svc.ID,
		ServiceTitle: svc.Title,
		Price:        svc.Price,
		Date:         s.localDate(),
		Status:       status,
		UserID:       s.session.ID,
	}
	s.orders = append(s.orders, o)
	s.persist(ctx, KeyOrders, s.orders)
	return o, nil
}
