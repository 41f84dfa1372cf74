package store

import (
	"context"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

func (s *Store) Testimonials() []domain.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Testimonial(nil), s.testimonials...)
}

func (s *Store) AddTestimonial(ctx context.Context, data domain.Testimonial) domain.Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()
	data.ID = s.newID()
	s.testimonials = append(s.testimonials, data)
	s.persist(ctx, KeyTestimonials, s.testimonials)
	return data
}

type TestimonialPatch struct {
	Quote   *string          `json:"quote"`
	Name    *string          `json:"name"`
	Role    *string          `json:"role"`
	Company *string          `json:"company"`
	Tag     *string          `json:"tag"`
	Avatar  *domain.ImageRef `json:"avatar"`
}

func (s *Store) UpdateTestimonial(ctx context.Context, id string, p TestimonialPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.testimonials {
		if s.testimonials[i].ID != id {
			continue
		}
		t := &s.testimonials[i]
		applyString(&t.Quote, p.Quote)
		applyString(&t.Name, p.Name)
		applyString(&t.Role, p.Role)
		applyString(&t.Company, p.Company)
		applyString(&t.Tag, p.Tag)
		if p.Avatar != nil {
			t.Avatar = p.Avatar
		}
		s.persist(ctx, KeyTestimonials, s.testimonials)
		return
	}
}

func (s *Store) DeleteTestimonial(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.testimonials {
		if s.testimonials[i].ID == id {
			s.testimonials = append(s.testimonials[:i], s.testimonials[i+1:]...)
			s.persist(ctx, KeyTestimonials, s.testimonials)
			return
		}
	}
}
