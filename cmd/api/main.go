package main

import (
	"context"
	"errors"
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

	// 持久化镜像（失败会直接 Fatal）
	mir := mustMirror(cfg, log)
	defer mir.Close()
	log.Info("mirror ready", zap.String("backend", cfg.Store.Backend))

	// 数据层：默认值 → 镜像覆盖 → 管理员种子
	st := store.New(store.Options{
		Mirror:        mir,
		Logger:        log,
		LoginDelay:    cfg.Store.LoginDelay(),
		HashPasswords: cfg.Store.HashPasswords,
	})
	if err := st.Init(context.Background()); err != nil {
		log.Fatal("store init failed", zap.Error(err))
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 公共页面读缓存（未配 redis 则直接回源）
	var ca *cache.Cache
	if cfg.Redis.Addr != "" {
		ca = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}
	ttl := time.Duration(cfg.Store.CacheTTLSec) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	// 工单事件推送
	hub := ws.NewHub(log)
	go hub.Run()

	// 路由（用户端）
	r := router.NewAPIEngine(log, st, jwter, ca, hub, ttl)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("portal api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("portal api start FAILED", zap.Error(err))
		}
	}()
	log.Info("portal api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("portal api stopped gracefully")
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
