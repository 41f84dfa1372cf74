package router

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/auth"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/cache"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/store"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/transport/http/ez"
	mdw "github.com/terrabrand/agency-website-with-cms-vps/internal/transport/http/middleware"
	resp "github.com/terrabrand/agency-website-with-cms-vps/internal/transport/http/response"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/ws"
)

// NewAdminEngine 管理端：CMS 内容、目录、用户、账单、工单
func NewAdminEngine(l *zap.Logger, st *store.Store, jwter *auth.JWTer, ca *cache.Cache, hub *ws.Hub) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(l, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(l, true))
	r.Use(mdw.RequestID(), cors.Default())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1, "ready": st.Ready()}) })

	// 登录限速收紧
	login := r.Group("/admin/v1")
	login.Use(mdw.RateLimitPerIP(1, 5))
	mountAdminLogin(login, st, jwter)

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, domain.RoleAdmin))
	mountAdminActions(admin, l, st, ca, hub)

	// 管理端工单实时流
	r.GET("/admin/v1/ws", func(c *gin.Context) {
		tok := c.Query("token")
		if tok == "" {
			tok = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		claims, err := jwter.Parse(tok)
		if err != nil || claims.Role != domain.RoleAdmin {
			c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		if err := hub.Serve(c.Writer, c.Request); err != nil {
			l.Warn("ws upgrade failed", zap.Error(err))
		}
	})

	return r
}

func mountAdminLogin(g *gin.RouterGroup, st *store.Store, jwter *auth.JWTer) {
	ezPublic := ez.New(g)

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token string         `json:"token"`
		User  domain.Session `json:"user"`
	}
	ez.RegisterAction(ezPublic, st, ez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *loginIn) (loginOut, error) {
			if !st.Login(c, strings.TrimSpace(in.Email), in.Password) {
				return loginOut{}, ez.Unauthorized("invalid credentials")
			}
			sess, _ := st.Session()
			if !sess.IsAdmin() {
				st.Logout(c)
				return loginOut{}, ez.Forbidden("admin only")
			}
			tok, err := jwter.Issue(sess.ID, sess.Name, sess.Role)
			if err != nil || tok == "" {
				return loginOut{}, ez.Internal("issue token failed", err)
			}
			return loginOut{Token: tok, User: sess}, nil
		},
	})
}

// 管理端接口集中在这里注册
func mountAdminActions(admin *gin.RouterGroup, l *zap.Logger, st *store.Store, ca *cache.Cache, hub *ws.Hub) {
	ezA := ez.New(admin)

	// CMS 写操作后清对应公共缓存
	inval := func(c *gin.Context, keys ...string) { ca.Invalidate(c, keys...) }

	/* ----- 服务目录 ----- */

	ezA.GET("/services", func(c *gin.Context) (any, error) { return st.Services(), nil })

	ez.RegisterAction(ezA, st, ez.Action[domain.Service, domain.Service]{
		Method: http.MethodPost,
		Path:   "/services",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *domain.Service) (domain.Service, error) {
			if in.Title == "" {
				return domain.Service{}, ez.BadRequest("title is required")
			}
			svc := st.AddService(c, *in)
			inval(c, "cache:services")
			return svc, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[store.ServicePatch, gin.H]{
		Method: http.MethodPut,
		Path:   "/services/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *store.ServicePatch) (gin.H, error) {
			id := c.Param("id")
			if _, ok := st.ServiceByID(id); !ok {
				return nil, ez.NotFound("service not found")
			}
			st.UpdateService(c, id, *in)
			inval(c, "cache:services")
			return gin.H{"id": id}, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/services/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			st.DeleteService(c, id)
			inval(c, "cache:services")
			return gin.H{"id": id}, nil
		},
	})

	/* ----- 用户 ----- */

	type userRow struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	type userListQ struct {
		Q string `form:"q"` // 按 email/name 模糊搜
	}
	ez.RegisterAction(ezA, st, ez.Action[userListQ, []userRow]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, st *store.Store, in *userListQ) ([]userRow, error) {
			q := strings.ToLower(strings.TrimSpace(in.Q))
			out := make([]userRow, 0)
			for _, u := range st.Users() {
				if q != "" && !strings.Contains(strings.ToLower(u.Email), q) && !strings.Contains(strings.ToLower(u.Name), q) {
					continue
				}
				out = append(out, userRow{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
			}
			return out, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[domain.User, userRow]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *domain.User) (userRow, error) {
			if in.Email == "" || in.Password == "" {
				return userRow{}, ez.BadRequest("email and password are required")
			}
			u := st.AddUser(c, *in)
			return userRow{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[store.UserPatch, gin.H]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *store.UserPatch) (gin.H, error) {
			id := c.Param("id")
			if _, ok := st.UserByID(id); !ok {
				return nil, ez.NotFound("user not found")
			}
			st.UpdateUser(c, id, *in)
			return gin.H{"id": id}, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if id == domain.SeedAdminID {
				return nil, ez.Forbidden("seed admin cannot be deleted")
			}
			st.DeleteUser(c, id)
			return gin.H{"id": id}, nil
		},
	})

	/* ----- 账单 ----- */

	ezA.GET("/invoices", func(c *gin.Context) (any, error) { return st.Invoices(), nil })

	ez.RegisterAction(ezA, st, ez.Action[store.InvoiceInput, domain.Invoice]{
		Method: http.MethodPost,
		Path:   "/invoices",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *store.InvoiceInput) (domain.Invoice, error) {
			if in.UserID == "" || in.Title == "" {
				return domain.Invoice{}, ez.BadRequest("userId and title are required")
			}
			inv := st.CreateInvoice(c, *in)
			l.Info("invoice created", zap.String("invoiceId", inv.ID), zap.String("userId", inv.UserID))
			return inv, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[struct{}, domain.Invoice]{
		Method: http.MethodPost,
		Path:   "/invoices/:id/pay",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) (domain.Invoice, error) {
			id := c.Param("id")
			if _, ok := st.InvoiceByID(id); !ok {
				return domain.Invoice{}, ez.NotFound("invoice not found")
			}
			st.PayInvoice(c, id)
			out, _ := st.InvoiceByID(id)
			return out, nil
		},
	})

	/* ----- 工单 ----- */

	ezA.GET("/tickets", func(c *gin.Context) (any, error) { return st.Tickets(), nil })

	type replyIn struct {
		Message string `json:"message" binding:"required"`
	}
	ez.RegisterAction(ezA, st, ez.Action[replyIn, *domain.Ticket]{
		Method: http.MethodPost,
		Path:   "/tickets/:id/reply",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *replyIn) (*domain.Ticket, error) {
			out, err := st.ReplyToTicket(c, c.Param("id"), in.Message, nil)
			if err != nil {
				if errors.Is(err, store.ErrTicketClosed) {
					return nil, ez.BadRequest("ticket is closed")
				}
				return nil, ez.Internal("reply failed", err)
			}
			if out == nil {
				return nil, ez.NotFound("ticket not found")
			}
			hub.Publish(ws.TicketEvent{Type: ws.EventTicketReplied, TicketID: out.ID, Status: out.Status, Subject: out.Subject})
			return out, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/tickets/:id/close",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			t, ok := st.TicketByID(id)
			if !ok {
				return nil, ez.NotFound("ticket not found")
			}
			st.CloseTicket(c, id)
			hub.Publish(ws.TicketEvent{Type: ws.EventTicketClosed, TicketID: id, Status: domain.TicketClosed, Subject: t.Subject})
			return gin.H{"id": id, "status": domain.TicketClosed}, nil
		},
	})

	/* ----- 口碑与案例 ----- */

	ezA.GET("/testimonials", func(c *gin.Context) (any, error) { return st.Testimonials(), nil })

	ez.RegisterAction(ezA, st, ez.Action[domain.Testimonial, domain.Testimonial]{
		Method: http.MethodPost,
		Path:   "/testimonials",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *domain.Testimonial) (domain.Testimonial, error) {
			if in.Quote == "" || in.Name == "" {
				return domain.Testimonial{}, ez.BadRequest("quote and name are required")
			}
			t := st.AddTestimonial(c, *in)
			inval(c, "cache:testimonials")
			return t, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[store.TestimonialPatch, gin.H]{
		Method: http.MethodPut,
		Path:   "/testimonials/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *store.TestimonialPatch) (gin.H, error) {
			id := c.Param("id")
			st.UpdateTestimonial(c, id, *in)
			inval(c, "cache:testimonials")
			return gin.H{"id": id}, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/testimonials/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			st.DeleteTestimonial(c, id)
			inval(c, "cache:testimonials")
			return gin.H{"id": id}, nil
		},
	})

	ezA.GET("/portfolio", func(c *gin.Context) (any, error) { return st.PortfolioItems(), nil })

	ez.RegisterAction(ezA, st, ez.Action[domain.PortfolioItem, domain.PortfolioItem]{
		Method: http.MethodPost,
		Path:   "/portfolio",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *domain.PortfolioItem) (domain.PortfolioItem, error) {
			if in.Title == "" {
				return domain.PortfolioItem{}, ez.BadRequest("title is required")
			}
			p := st.AddPortfolioItem(c, *in)
			inval(c, "cache:portfolio")
			return p, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[store.PortfolioPatch, gin.H]{
		Method: http.MethodPut,
		Path:   "/portfolio/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *store.PortfolioPatch) (gin.H, error) {
			id := c.Param("id")
			st.UpdatePortfolioItem(c, id, *in)
			inval(c, "cache:portfolio")
			return gin.H{"id": id}, nil
		},
	})
	ez.RegisterAction(ezA, st, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/portfolio/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			st.DeletePortfolioItem(c, id)
			inval(c, "cache:portfolio")
			return gin.H{"id": id}, nil
		},
	})

	/* ----- 系统设置与 CMS 内容 ----- */

	ezA.GET("/settings", func(c *gin.Context) (any, error) { return st.Settings(), nil })

	ez.RegisterAction(ezA, st, ez.Action[domain.SystemSettings, domain.SystemSettings]{
		Method: http.MethodPut,
		Path:   "/settings",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *domain.SystemSettings) (domain.SystemSettings, error) {
			st.UpdateSettings(c, *in)
			inval(c, "cache:settings")
			return st.Settings(), nil
		},
	})

	ezA.GET("/content/homepage", func(c *gin.Context) (any, error) { return st.HomepageContent(), nil })
	ez.RegisterAction(ezA, st, ez.Action[domain.HomepageContent, domain.HomepageContent]{
		Method: http.MethodPut,
		Path:   "/content/homepage",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *domain.HomepageContent) (domain.HomepageContent, error) {
			st.UpdateHomepageContent(c, *in)
			inval(c, "cache:content:homepage")
			return st.HomepageContent(), nil
		},
	})

	ezA.GET("/content/services", func(c *gin.Context) (any, error) { return st.ServicesContent(), nil })
	ez.RegisterAction(ezA, st, ez.Action[domain.ServicesContent, domain.ServicesContent]{
		Method: http.MethodPut,
		Path:   "/content/services",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *domain.ServicesContent) (domain.ServicesContent, error) {
			st.UpdateServicesContent(c, *in)
			inval(c, "cache:content:services")
			return st.ServicesContent(), nil
		},
	})

	ezA.GET("/content/clients", func(c *gin.Context) (any, error) { return st.ClientsContent(), nil })
	ez.RegisterAction(ezA, st, ez.Action[domain.ClientsContent, domain.ClientsContent]{
		Method: http.MethodPut,
		Path:   "/content/clients",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *domain.ClientsContent) (domain.ClientsContent, error) {
			st.UpdateClientsContent(c, *in)
			inval(c, "cache:content:clients")
			return st.ClientsContent(), nil
		},
	})

	ezA.GET("/content/about", func(c *gin.Context) (any, error) { return st.AboutContent(), nil })
	ez.RegisterAction(ezA, st, ez.Action[domain.AboutContent, domain.AboutContent]{
		Method: http.MethodPut,
		Path:   "/content/about",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *domain.AboutContent) (domain.AboutContent, error) {
			st.UpdateAboutContent(c, *in)
			inval(c, "cache:content:about")
			return st.AboutContent(), nil
		},
	})
}
