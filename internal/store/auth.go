package store

import (
	"context"
	"time"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
	"github.com/terrabrand/agency-website-with-cms-vps/pkg/utils"
)

// Login 邮箱 + 密码严格等值（hashPasswords 开启时走 bcrypt 比较）。
// 账号不存在与密码错误对调用方不可区分，一律 false。
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.simulateLatency(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email != email || !s.credentialOK(password, u.Password) {
			continue
		}
		sess := u.Session()
		s.session = &sess
		s.persist(ctx, KeySession, sess)
		return true
	}
	return false
}

// Register 不查重复邮箱（沿用原行为，见 DESIGN.md），创建 client 并自动登录
func (s *Store) Register(ctx context.Context, name, email, password string) bool {
	s.simulateLatency(ctx)

	stored := password
	if s.hashPasswords {
		stored = utils.HashPassword(password)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := domain.User{
		ID:       s.newID(),
		Name:     name,
		Email:    email,
		Role:     domain.RoleClient,
		Password: stored,
	}
	s.users = append(s.users, u)
	s.persist(ctx, KeyUsers, s.users)

	sess := u.Session()
	s.session = &sess
	s.persist(ctx, KeySession, sess)
	return true
}

// Logout 只清会话，不动其它集合
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	if err := s.mir.Delete(ctx, KeySession); err != nil {
		s.log.Warn("store: clear session failed")
	}
}

// Session 当前登录身份；false 表示未登录
func (s *Store) Session() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

func (s *Store) credentialOK(given, stored string) bool {
	if s.hashPasswords {
		return utils.CheckPassword(given, stored)
	}
	return given == stored
}

func (s *Store) simulateLatency(ctx context.Context) {
	if s.loginDelay <= 0 {
		return
	}
	t := time.NewTimer(s.loginDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
