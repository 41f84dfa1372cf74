package store

import (
	"context"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

func (s *Store) Services() []domain.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Service(nil), s.services...)
}

func (s *Store) ServiceByID(id string) (domain.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return domain.Service{}, false
}

func (s *Store) AddService(ctx context.Context, data domain.Service) domain.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	data.ID = s.newID()
	s.services = append(s.services, data)
	s.persist(ctx, KeyServices, s.services)
	return data
}

// ServicePatch 浅合并：nil 字段不动
type ServicePatch struct {
	Title       *string `json:"title"`
	Price       *string `json:"price"`
	Icon        *string `json:"icon"`
	Tag         *string `json:"tag"`
	Description *string `json:"description"`
}

func (s *Store) UpdateService(ctx context.Context, id string, p ServicePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID != id {
			continue
		}
		svc := &s.services[i]
		applyString(&svc.Title, p.Title)
		applyString(&svc.Price, p.Price)
		applyString(&svc.Icon, p.Icon)
		applyString(&svc.Tag, p.Tag)
		applyString(&svc.Description, p.Description)
		s.persist(ctx, KeyServices, s.services)
		return
	}
	// 未命中静默无操作
}

func (s *Store) DeleteService(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			s.persist(ctx, KeyServices, s.services)
			return
		}
	}
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func applyBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
