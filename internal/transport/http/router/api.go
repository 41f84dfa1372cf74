package router

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/auth"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/cache"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/domain"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/invoicepdf"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/payment"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/store"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/transport/http/ez"
	mdw "github.com/terrabrand/agency-website-with-cms-vps/internal/transport/http/middleware"
	resp "github.com/terrabrand/agency-website-with-cms-vps/internal/transport/http/response"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/ws"
)

// 公共站点只暴露非敏感设置（支付密钥不出门）
type publicSettings struct {
	CompanyName      string `json:"companyName"`
	CompanyEmail     string `json:"companyEmail"`
	CompanyPhone     string `json:"companyPhone"`
	CompanyAddress   string `json:"companyAddress"`
	CompanyLogoURL   string `json:"companyLogoUrl"`
	Theme            string `json:"theme"`
	DarkMode         bool   `json:"darkMode"`
	CompanyFacebook  string `json:"companyFacebook"`
	CompanyInstagram string `json:"companyInstagram"`
	CompanyLinkedin  string `json:"companyLinkedin"`
}

func toPublicSettings(s domain.SystemSettings) publicSettings {
	return publicSettings{
		CompanyName:      s.CompanyName,
		CompanyEmail:     s.CompanyEmail,
		CompanyPhone:     s.CompanyPhone,
		CompanyAddress:   s.CompanyAddress,
		CompanyLogoURL:   s.CompanyLogoURL,
		Theme:            s.Theme,
		DarkMode:         s.EffectiveDarkMode(),
		CompanyFacebook:  s.CompanyFacebook,
		CompanyInstagram: s.CompanyInstagram,
		CompanyLinkedin:  s.CompanyLinkedin,
	}
}

func NewAPIEngine(l *zap.Logger, st *store.Store, jwter *auth.JWTer, ca *cache.Cache, hub *ws.Hub, cacheTTL time.Duration) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1, "ready": st.Ready()}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 前缀
	api := r.Group("/api/v1")

	mountPublic(api, l, st, ca, cacheTTL)
	mountAuthActions(api, st, jwter)

	// 门户分组（JWT，且必须匹配当前活跃会话）
	portal := api.Group("/portal")
	portal.Use(mdw.AuthJWT(jwter, ""))
	mountPortal(portal, l, st, hub)

	// 工单推送：token 走 query（浏览器 WebSocket 设不了 Authorization 头）
	r.GET("/api/v1/portal/ws", func(c *gin.Context) {
		tok := c.Query("token")
		if tok == "" {
			tok = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if _, err := jwter.Parse(tok); err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		if err := hub.Serve(c.Writer, c.Request); err != nil {
			l.Warn("ws upgrade failed", zap.Error(err))
		}
	})

	return r
}

/* ---------- 公共站点 ---------- */

func mountPublic(api *gin.RouterGroup, l *zap.Logger, st *store.Store, ca *cache.Cache, ttl time.Duration) {
	pub := ez.New(api)

	pub.GET("/settings", func(c *gin.Context) (any, error) {
		return cache.GetOrLoadJSON(ca, c, "cache:settings", ttl,
			func(context.Context) (publicSettings, error) { return toPublicSettings(st.Settings()), nil })
	})
	pub.GET("/content/homepage", func(c *gin.Context) (any, error) {
		return cache.GetOrLoadJSON(ca, c, "cache:content:homepage", ttl,
			func(context.Context) (domain.HomepageContent, error) { return st.HomepageContent(), nil })
	})
	pub.GET("/content/services", func(c *gin.Context) (any, error) {
		return cache.GetOrLoadJSON(ca, c, "cache:content:services", ttl,
			func(context.Context) (domain.ServicesContent, error) { return st.ServicesContent(), nil })
	})
	// heroTags/project2Bullets 以分隔串持久化，这里额外给出拆好的列表
	type clientsContentOut struct {
		domain.ClientsContent
		HeroTagsList        []string `json:"heroTagsList"`
		Project2BulletsList []string `json:"project2BulletsList"`
	}
	pub.GET("/content/clients", func(c *gin.Context) (any, error) {
		return cache.GetOrLoadJSON(ca, c, "cache:content:clients", ttl,
			func(context.Context) (clientsContentOut, error) {
				cc := st.ClientsContent()
				return clientsContentOut{
					ClientsContent:      cc,
					HeroTagsList:        domain.SplitTags(cc.HeroTags),
					Project2BulletsList: domain.SplitLines(cc.Project2Bullets),
				}, nil
			})
	})
	pub.GET("/content/about", func(c *gin.Context) (any, error) {
		return cache.GetOrLoadJSON(ca, c, "cache:content:about", ttl,
			func(context.Context) (domain.AboutContent, error) { return st.AboutContent(), nil })
	})

	pub.GET("/services", func(c *gin.Context) (any, error) {
		return cache.GetOrLoadJSON(ca, c, "cache:services", ttl,
			func(context.Context) ([]domain.Service, error) { return st.Services(), nil })
	})
	api.GET("/services/:id", func(c *gin.Context) {
		svc, ok := st.ServiceByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, "service not found"))
			return
		}
		c.JSON(http.StatusOK, resp.OK(svc))
	})

	pub.GET("/testimonials", func(c *gin.Context) (any, error) {
		return cache.GetOrLoadJSON(ca, c, "cache:testimonials", ttl,
			func(context.Context) ([]domain.Testimonial, error) { return st.Testimonials(), nil })
	})
	pub.GET("/portfolio", func(c *gin.Context) (any, error) {
		return cache.GetOrLoadJSON(ca, c, "cache:portfolio", ttl,
			func(context.Context) ([]domain.PortfolioItem, error) { return st.PortfolioItems(), nil })
	})

	// 联系表单：只记日志，不落库
	type contactIn struct {
		Name    string `json:"name"    binding:"required,max=128"`
		Email   string `json:"email"   binding:"required,email"`
		Message string `json:"message" binding:"required,max=4000"`
	}
	ez.POST(pub, "/contact", func(c *gin.Context, in contactIn) (any, error) {
		l.Info("contact message",
			zap.String("rid", c.GetString("rid")),
			zap.String("name", in.Name),
			zap.String("email", in.Email),
			zap.Int("len", len(in.Message)),
		)
		return gin.H{"received": true}, nil
	})
}

/* ---------- 认证动作 ---------- */

func mountAuthActions(api *gin.RouterGroup, st *store.Store, jwter *auth.JWTer) {
	ezPublic := ez.New(api)

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type authOut struct {
		Token string         `json:"token"`
		User  domain.Session `json:"user"`
	}

	issue := func(sess domain.Session) (authOut, error) {
		tok, err := jwter.Issue(sess.ID, sess.Name, sess.Role)
		if err != nil || tok == "" {
			return authOut{}, ez.Internal("issue token failed", err)
		}
		return authOut{Token: tok, User: sess}, nil
	}

	ez.RegisterAction(ezPublic, st, ez.Action[loginIn, authOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *loginIn) (authOut, error) {
			if !st.Login(c, strings.TrimSpace(in.Email), in.Password) {
				return authOut{}, ez.Unauthorized("invalid credentials")
			}
			sess, _ := st.Session()
			return issue(sess)
		},
	})

	type registerIn struct {
		Name     string `json:"name"     binding:"required,max=64"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=1"`
	}
	ez.RegisterAction(ezPublic, st, ez.Action[registerIn, authOut]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, st *store.Store, in *registerIn) (authOut, error) {
			if !st.Register(c, strings.TrimSpace(in.Name), strings.TrimSpace(in.Email), in.Password) {
				return authOut{}, ez.BadRequest("registration failed")
			}
			sess, _ := st.Session()
			return issue(sess)
		},
	})

	ez.RegisterAction(ezPublic, st, ez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) (gin.H, error) {
			st.Logout(c)
			return gin.H{"ok": 1}, nil
		},
	})
}

/* ---------- 客户门户 ---------- */

// 门户请求必须既带合法 JWT，又命中当前活跃会话
func activeSession(c *gin.Context, st *store.Store) (domain.Session, error) {
	sess, ok := st.Session()
	if !ok || sess.ID != c.GetString(mdw.KeyUserID) {
		return domain.Session{}, ez.Unauthorized("session expired")
	}
	return sess, nil
}

func mountPortal(g *gin.RouterGroup, l *zap.Logger, st *store.Store, hub *ws.Hub) {
	ezAuth := ez.New(g)

	ez.RegisterAction(ezAuth, st, ez.Action[struct{}, domain.Session]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) (domain.Session, error) {
			return activeSession(c, st)
		},
	})

	/* ----- 订单 ----- */

	ez.RegisterAction(ezAuth, st, ez.Action[struct{}, []domain.Order]{
		Method: http.MethodGet,
		Path:   "/orders",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) ([]domain.Order, error) {
			sess, err := activeSession(c, st)
			if err != nil {
				return nil, err
			}
			return st.OrdersForUser(sess.ID), nil
		},
	})

	type orderIn struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	ez.RegisterAction(ezAuth, st, ez.Action[orderIn, domain.Order]{
		Method: http.MethodPost,
		Path:   "/orders",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, st *store.Store, in *orderIn) (domain.Order, error) {
			if _, err := activeSession(c, st); err != nil {
				return domain.Order{}, err
			}
			svc, ok := st.ServiceByID(in.ServiceID)
			if !ok {
				return domain.Order{}, ez.NotFound("service not found")
			}
			ord, err := st.PlaceOrder(c, svc, domain.OrderPending)
			if err != nil {
				return domain.Order{}, ez.Unauthorized(err.Error())
			}
			return ord, nil
		},
	})

	/* ----- 服务结账 ----- */

	type checkoutIn struct {
		ServiceID string `json:"serviceId" binding:"required"`
		Gateway   string `json:"gateway"   binding:"required"`
	}
	ez.RegisterAction(ezAuth, st, ez.Action[checkoutIn, payment.Request]{
		Method: http.MethodPost,
		Path:   "/checkout",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, st *store.Store, in *checkoutIn) (payment.Request, error) {
			sess, err := activeSession(c, st)
			if err != nil {
				return payment.Request{}, err
			}
			svc, ok := st.ServiceByID(in.ServiceID)
			if !ok {
				return payment.Request{}, ez.NotFound("service not found")
			}
			req, err := payment.BuildRequest(in.Gateway, payment.ParseAmount(svc.Price),
				sess.Email, sess.Name, svc.Title, "Payment for "+svc.Title, st.Settings())
			if err != nil {
				return payment.Request{}, ez.BadRequest(err.Error())
			}
			return req, nil
		},
	})

	type confirmIn struct {
		ServiceID     string `json:"serviceId"     binding:"required"`
		Gateway       string `json:"gateway"       binding:"required"`
		TransactionID string `json:"transactionId" binding:"required"`
	}
	ez.RegisterAction(ezAuth, st, ez.Action[confirmIn, domain.Order]{
		Method: http.MethodPost,
		Path:   "/checkout/confirm",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, st *store.Store, in *confirmIn) (domain.Order, error) {
			if _, err := activeSession(c, st); err != nil {
				return domain.Order{}, err
			}
			svc, ok := st.ServiceByID(in.ServiceID)
			if !ok {
				return domain.Order{}, ez.NotFound("service not found")
			}
			ord, err := st.PlaceOrder(c, svc, domain.OrderActive)
			if err != nil {
				return domain.Order{}, ez.Unauthorized(err.Error())
			}
			l.Info("service payment confirmed",
				zap.String("orderId", ord.ID),
				zap.String("gateway", in.Gateway),
				zap.String("txId", in.TransactionID),
			)
			return ord, nil
		},
	})

	/* ----- 账单 ----- */

	ez.RegisterAction(ezAuth, st, ez.Action[struct{}, []domain.Invoice]{
		Method: http.MethodGet,
		Path:   "/invoices",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) ([]domain.Invoice, error) {
			sess, err := activeSession(c, st)
			if err != nil {
				return nil, err
			}
			return st.InvoicesForUser(sess.ID), nil
		},
	})

	// 账单归属校验，admin 可越权
	ownInvoice := func(c *gin.Context, st *store.Store) (domain.Invoice, error) {
		sess, err := activeSession(c, st)
		if err != nil {
			return domain.Invoice{}, err
		}
		inv, ok := st.InvoiceByID(c.Param("id"))
		if !ok {
			return domain.Invoice{}, ez.NotFound("invoice not found")
		}
		if inv.UserID != sess.ID && !sess.IsAdmin() {
			return domain.Invoice{}, ez.Forbidden("forbidden")
		}
		return inv, nil
	}

	type invoicePayIn struct {
		Gateway string `json:"gateway" binding:"required"`
	}
	ez.RegisterAction(ezAuth, st, ez.Action[invoicePayIn, payment.Request]{
		Method: http.MethodPost,
		Path:   "/invoices/:id/checkout",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, st *store.Store, in *invoicePayIn) (payment.Request, error) {
			inv, err := ownInvoice(c, st)
			if err != nil {
				return payment.Request{}, err
			}
			if inv.Status == domain.InvoicePaid {
				return payment.Request{}, ez.BadRequest("invoice already paid")
			}
			sess, _ := st.Session()
			req, err := payment.BuildRequest(in.Gateway, payment.ParseAmount(inv.Amount),
				sess.Email, sess.Name, inv.Title, "Invoice "+inv.ID, st.Settings())
			if err != nil {
				return payment.Request{}, ez.BadRequest(err.Error())
			}
			return req, nil
		},
	})

	type invoiceConfirmIn struct {
		Gateway       string `json:"gateway"       binding:"required"`
		TransactionID string `json:"transactionId" binding:"required"`
	}
	ez.RegisterAction(ezAuth, st, ez.Action[invoiceConfirmIn, domain.Invoice]{
		Method: http.MethodPost,
		Path:   "/invoices/:id/confirm",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, st *store.Store, in *invoiceConfirmIn) (domain.Invoice, error) {
			inv, err := ownInvoice(c, st)
			if err != nil {
				return domain.Invoice{}, err
			}
			st.PayInvoice(c, inv.ID)
			l.Info("invoice payment confirmed",
				zap.String("invoiceId", inv.ID),
				zap.String("gateway", in.Gateway),
				zap.String("txId", in.TransactionID),
			)
			out, _ := st.InvoiceByID(inv.ID)
			return out, nil
		},
	})

	// PDF 导出走原生 handler（二进制响应不走统一信封）
	g.GET("/invoices/:id/pdf", func(c *gin.Context) {
		inv, err := ownInvoice(c, st)
		if err != nil {
			var ae *ez.AErr
			if errors.As(err, &ae) {
				c.JSON(http.StatusOK, resp.Error(ae.Code, ae.Error()))
				return
			}
			c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, err.Error()))
			return
		}
		pdf, err := invoicepdf.Render(inv, st.Settings())
		if err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "render pdf failed"))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+invoicepdf.Filename(inv)+`"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	})

	/* ----- 工单 ----- */

	ez.RegisterAction(ezAuth, st, ez.Action[struct{}, []domain.Ticket]{
		Method: http.MethodGet,
		Path:   "/tickets",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) ([]domain.Ticket, error) {
			sess, err := activeSession(c, st)
			if err != nil {
				return nil, err
			}
			return st.TicketsForUser(sess.ID), nil
		},
	})

	// 附件是可选的 multipart，绑定手写
	g.POST("/tickets", func(c *gin.Context) {
		if _, err := activeSession(c, st); err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "session expired"))
			return
		}
		in := store.TicketInput{
			ServiceID:  c.PostForm("serviceId"),
			Subject:    c.PostForm("subject"),
			Message:    c.PostForm("message"),
			Attachment: attachmentFromForm(c, l),
		}
		if in.Subject == "" || in.Message == "" {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "subject and message are required"))
			return
		}
		if in.ServiceID == "" {
			in.ServiceID = domain.ServiceIDOther
		}
		t, err := st.CreateTicket(c, in)
		if err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, err.Error()))
			return
		}
		hub.Publish(ws.TicketEvent{Type: ws.EventTicketCreated, TicketID: t.ID, Status: t.Status, Subject: t.Subject})
		c.JSON(http.StatusOK, resp.OK(t))
	})

	g.POST("/tickets/:id/reply", func(c *gin.Context) {
		sess, err := activeSession(c, st)
		if err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "session expired"))
			return
		}
		t, ok := st.TicketByID(c.Param("id"))
		if !ok || (t.UserID != sess.ID && !sess.IsAdmin()) {
			c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, "ticket not found"))
			return
		}
		msg := c.PostForm("message")
		if msg == "" {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "message is required"))
			return
		}
		out, err := st.ReplyToTicket(c, t.ID, msg, attachmentFromForm(c, l))
		if err != nil {
			if errors.Is(err, store.ErrTicketClosed) {
				c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "ticket is closed"))
				return
			}
			c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, err.Error()))
			return
		}
		if out == nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, "ticket not found"))
			return
		}
		hub.Publish(ws.TicketEvent{Type: ws.EventTicketReplied, TicketID: out.ID, Status: out.Status, Subject: out.Subject})
		c.JSON(http.StatusOK, resp.OK(out))
	})

	ez.RegisterAction(ezAuth, st, ez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/tickets/:id/close",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, st *store.Store, _ *struct{}) (gin.H, error) {
			sess, err := activeSession(c, st)
			if err != nil {
				return nil, err
			}
			t, ok := st.TicketByID(c.Param("id"))
			if !ok || (t.UserID != sess.ID && !sess.IsAdmin()) {
				return nil, ez.NotFound("ticket not found")
			}
			st.CloseTicket(c, t.ID)
			hub.Publish(ws.TicketEvent{Type: ws.EventTicketClosed, TicketID: t.ID, Status: domain.TicketClosed, Subject: t.Subject})
			return gin.H{"id": t.ID, "status": domain.TicketClosed}, nil
		},
	})
}

// 附件读取失败只记日志，工单照常提交
func attachmentFromForm(c *gin.Context, l *zap.Logger) *domain.ImageRef {
	fh, err := c.FormFile("attachment")
	if err != nil {
		return nil
	}
	f, err := fh.Open()
	if err != nil {
		l.Warn("open attachment failed", zap.String("file", fh.Filename), zap.Error(err))
		return nil
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		l.Warn("read attachment failed", zap.String("file", fh.Filename), zap.Error(err))
		return nil
	}
	return domain.InlineImage(fh.Header.Get("Content-Type"), raw)
}
