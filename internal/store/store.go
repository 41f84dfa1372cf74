// Package store 是身份与全部领域数据的唯一事实源。
// 所有变更在内存完成后立刻把受影响的集合整体序列化到 mirror 对应的 key。
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/mirror"
	"github.com/terrabrand/agency-website-with-cms-vps/pkg/utils"
)

// 持久化 key：一个集合/单例一个 key，逻辑名即兼容契约
const (
	KeySession         = "ric_user"
	KeySettings        = "ric_settings"
	KeyHomepageContent = "ric_homepage_content"
	KeyServicesContent = "ric_services_content"
	KeyClientsContent  = "ric_clients_content"
	KeyAboutContent    = "ric_about_content"
	KeyServices        = "ric_services"
	KeyOrders          = "ric_orders"
	KeyUsers           = "ric_users_db"
	KeyInvoices        = "ric_invoices"
	KeyTickets         = "ric_tickets"
	KeyTestimonials    = "ric_testimonials"
	KeyPortfolio       = "ric_portfolio"
)

type Options struct {
	Mirror mirror.Mirror
	Logger *zap.Logger

	// LoginDelay 模拟网络延迟（原系统固定 800ms），测试置 0
	LoginDelay time.Duration
	// HashPasswords 开启后凭据走 bcrypt；默认关闭以保持持久化数据兼容
	HashPasswords bool

	Now   func() time.Time
	NewID func() string
}

type Store struct {
	mu  sync.RWMutex
	mir mirror.Mirror
	log *zap.Logger

	loginDelay    time.Duration
	hashPasswords bool
	now           func() time.Time
	newID         func() string

	ready bool

	session         *domain.Session
	settings        domain.SystemSettings
	homepage        domain.HomepageContent
	servicesContent domain.ServicesContent
	clientsContent  domain.ClientsContent
	aboutContent    domain.AboutContent

	services     []domain.Service
	orders       []domain.Order
	users        []domain.User
	invoices     []domain.Invoice
	tickets      []domain.Ticket
	testimonials []domain.Testimonial
	portfolio    []domain.PortfolioItem
}

func New(opts Options) *Store {
	if opts.Mirror == nil {
		opts.Mirror = mirror.NewMemory()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = utils.NewID
	}
	return &Store{
		mir:           opts.Mirror,
		log:           opts.Logger,
		loginDelay:    opts.LoginDelay,
		hashPasswords: opts.HashPasswords,
		now:           opts.Now,
		newID:         opts.NewID,
	}
}

// Init 必须在任何读写之前调用一次：内置默认值 → 持久化覆盖 → 管理员种子。
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = defaultSettings()
	s.homepage = defaultHomepageContent()
	s.servicesContent = defaultServicesContent()
	s.clientsContent = defaultClientsContent()
	s.aboutContent = defaultAboutContent()
	s.services = defaultServices()
	s.testimonials = defaultTestimonials()
	s.portfolio = defaultPortfolio()
	s.orders = nil
	s.invoices = nil
	s.tickets = nil

	var sess domain.Session
	if ok, err := s.hydrate(ctx, KeySession, &sess); err != nil {
		return err
	} else if ok {
		s.session = &sess
	}
	for _, h := range []struct {
		key string
		dst any
	}{
		{KeySettings, &s.settings},
		{KeyHomepageContent, &s.homepage},
		{KeyServicesContent, &s.servicesContent},
		{KeyClientsContent, &s.clientsContent},
		{KeyAboutContent, &s.aboutContent},
		{KeyServices, &s.services},
		{KeyOrders, &s.orders},
		{KeyInvoices, &s.invoices},
		{KeyTickets, &s.tickets},
		{KeyTestimonials, &s.testimonials},
		{KeyPortfolio, &s.portfolio},
	} {
		if _, err := s.hydrate(ctx, h.key, h.dst); err != nil {
			return err
		}
	}

	// 用户表特殊处理：没有持久化数据时立刻写入种子管理员，保证全新环境可登录
	loaded, err := s.hydrate(ctx, KeyUsers, &s.users)
	if err != nil {
		return err
	}
	if !loaded {
		admin := seedAdmin()
		if s.hashPasswords {
			admin.Password = utils.HashPassword(admin.Password)
		}
		s.users = []domain.User{admin}
		if b, err := json.Marshal(s.users); err == nil {
			if err := s.mir.Save(ctx, KeyUsers, b); err != nil {
				return err
			}
		}
	}

	s.ready = true
	return nil
}

// Ready 初始化完成标志，认证相关界面需等待
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *Store) hydrate(ctx context.Context, key string, dst any) (bool, error) {
	b, ok, err := s.mir.Load(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		// 坏数据保留内置默认值，不让启动失败
		s.log.Warn("store: corrupt persisted value, keeping defaults",
			zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// persist 写穿失败只记日志：镜像是尽力而为的旁路，不反向影响内存状态
func (s *Store) persist(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error("store: marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.mir.Save(ctx, key, b); err != nil {
		s.log.Warn("store: mirror save failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Store) localDate() string { return formatLocaleDate(s.now()) }
func (s *Store) localStamp() string { return formatLocaleStamp(s.now()) }

// 与原系统 toLocaleDateString / toLocaleString 持久化格式对齐
func formatLocaleDate(t time.Time) string  { return t.Format("1/2/2006") }
func formatLocaleStamp(t time.Time) string { return t.Format("1/2/2006, 3:04:05 PM") }
