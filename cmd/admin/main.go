package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/auth"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/cache"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/config"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/database"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/logger"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/core/server"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/mirror"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/store"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/transport/http/router"
	"github.com/terrabrand/agency-website-with-cms-vps/internal/ws"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 持久化镜像（失败直接 Fatal）
	mir := mustMirror(cfg, log)
	defer mir.Close()
	log.Info("mirror ready", zap.String("backend", cfg.Store.Backend))

	st := store.New(store.Options{
		Mirror:        mir,
		Logger:        log,
		LoginDelay:    cfg.Store.LoginDelay(),
		HashPasswords: cfg.Store.HashPasswords,
	})
	if err := st.Init(context.Background()); err != nil {
		log.Fatal("store init failed", zap.Error(err))
	}

	// 依赖
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}
	var ca *cache.Cache
	if cfg.Redis.Addr != "" {
		ca = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}
	hub := ws.NewHub(log)
	go hub.Run()

	// 路由（后台端）
	r := router.NewAdminEngine(log, st, jwter, ca, hub)

	// HTTP Server
	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second)

	// 启动前打印可点击地址
	host4human := cfg.App.Admin.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.Admin.Port)
	log.Info("admin api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)

	// 异步启动；失败立即退出
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("admin api start FAILED", zap.Error(err))
		}
	}()
	log.Info("admin api started SUCCESS")

	// 关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("admin api stopped gracefully")
}

func mustMirror(cfg *config.Config, l *zap.Logger) mirror.Mirror {
	switch cfg.Store.Backend {
	case "memory":
		return mirror.NewMemory()
	case "redis":
		return mirror.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	case "gorm":
		db, err := database.NewGorm(database.Opts{
			Driver:             cfg.DB.Driver,
			DSN:                cfg.DB.DSN,
			MaxOpenConns:       cfg.DB.MaxOpenConns,
			MaxIdleConns:       cfg.DB.MaxIdleConns,
			ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
			LogLevel:           cfg.DB.LogLevel,
		})
		if err != nil {
			l.Fatal("db open", zap.Error(err))
		}
		m, err := mirror.NewGorm(db)
		if err != nil {
			l.Fatal("mirror migrate", zap.Error(err))
		}
		return m
	default: // sqlite
		m, err := mirror.NewSQLite(cfg.Store.SQLitePath)
		if err != nil {
			l.Fatal("sqlite open", zap.Error(err))
		}
		return m
	}
}
