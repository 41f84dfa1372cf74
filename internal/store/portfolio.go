package store

import (
	"context"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

func (s *Store) PortfolioItems() []domain.PortfolioItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PortfolioItem(nil), s.portfolio...)
}

func (s *Store) AddPortfolioItem(ctx context.Context, data domain.PortfolioItem) domain.PortfolioItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	data.ID = s.newID()
	s.portfolio = append(s.portfolio, data)
	s.persist(ctx, KeyPortfolio, s.portfolio)
	return data
}

type PortfolioPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	ImageURL    *string   `json:"imageUrl"`
}

func (s *Store) UpdatePortfolioItem(ctx context.Context, id string, p PortfolioPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolio {
		if s.portfolio[i].ID != id {
			continue
		}
		item := &s.portfolio[i]
		applyString(&item.Title, p.Title)
		applyString(&item.Description, p.Description)
		applyString(&item.Category, p.Category)
		if p.Tags != nil {
			item.Tags = append([]string(nil), (*p.Tags)...)
		}
		applyString(&item.ImageURL, p.ImageURL)
		s.persist(ctx, KeyPortfolio, s.portfolio)
		return
	}
}

func (s *Store) DeletePortfolioItem(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolio {
		if s.portfolio[i].ID == id {
			s.portfolio = append(s.portfolio[:i], s.portfolio[i+1:]...)
			s.persist(ctx, KeyPortfolio, s.portfolio)
			return
		}
	}
}
