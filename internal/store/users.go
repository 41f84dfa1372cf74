package store

import (
	"context"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
	"github.com/terrabrand/agency-website-with-cms-vps/pkg/utils"
)

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.users...)
}

func (s *Store) UserByID(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) AddUser(ctx context.Context, data domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	data.ID = s.newID()
	if s.hashPasswords && data.Password != "" {
		data.Password = utils.HashPassword(data.Password)
	}
	s.users = append(s.users, data)
	s.persist(ctx, KeyUsers, s.users)
	return data
}

type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

func (s *Store) UpdateUser(ctx context.Context, id string, p UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		u := &s.users[i]
		applyString(&u.Name, p.Name)
		applyString(&u.Email, p.Email)
		applyString(&u.Role, p.Role)
		if p.Password != nil {
			pw := *p.Password
			if s.hashPasswords && pw != "" {
				pw = utils.HashPassword(pw)
			}
			u.Password = pw
		}
		s.persist(ctx, KeyUsers, s.users)
		return
	}
}

// DeleteUser 种子管理员受保护：系统必须始终保有可用的 admin 登录
func (s *Store) DeleteUser(ctx context.Context, id string) {
	if id == domain.SeedAdminID {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.persist(ctx, KeyUsers, s.users)
			return
		}
	}
}
