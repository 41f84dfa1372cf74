package store

import (
	"context"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
)

func (s *Store) Settings() domain.SystemSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) UpdateSettings(ctx context.Context, v domain.SystemSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = v
	s.persist(ctx, KeySettings, s.settings)
}

func (s *Store) HomepageContent() domain.HomepageContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.homepage
}

func (s *Store) UpdateHomepageContent(ctx context.Context, v domain.HomepageContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.homepage = v
	s.persist(ctx, KeyHomepageContent, s.homepage)
}

func (s *Store) ServicesContent() domain.ServicesContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.servicesContent
}

func (s *Store) UpdateServicesContent(ctx context.Context, v domain.ServicesContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.servicesContent = v
	s.persist(ctx, KeyServicesContent, s.servicesContent)
}

func (s *Store) ClientsContent() domain.ClientsContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientsContent
}

func (s *Store) UpdateClientsContent(ctx context.Context, v domain.ClientsContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientsContent = v
	s.persist(ctx, KeyClientsContent, s.clientsContent)
}

func (s *Store) AboutContent() domain.AboutContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aboutContent
}

func (s *Store) UpdateAboutContent(ctx context.Context, v domain.AboutContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aboutContent = v
	s.persist(ctx, KeyAboutContent, s.aboutContent)
}
