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
	"go.uber.org/zap/zapcore"

	"autoshop/internal/app"
	"autoshop/internal/core/auth"
	"autoshop/internal/core/config"
	"autoshop/internal/core/database"
	"autoshop/internal/core/logger"
	"autoshop/internal/core/server"
	"autoshop/internal/repo"
	"autoshop/internal/service"
	"autoshop/internal/transport/http/handler"
	"autoshop/internal/transport/http/router"
	"autoshop/internal/transport/http/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := app.NewLogger(cfg.Log)
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	// 数据库（失败会直接 Fatal）
	db, err := app.OpenDB(cfg.DB, log)
	if err != nil {
		log.Fatal("db open", zap.Error(err), zap.String("dsn", database.MaskDSN(cfg.DB.DSN)))
	}
	log.Info("database connected", zap.String("driver", cfg.DB.Driver), zap.String("dsn", database.MaskDSN(cfg.DB.DSN)))

	// 建表 + 种子数据
	if cfg.DB.AutoMigrate {
		if err := app.MigrateAndSeed(context.Background(), db, cfg.Seed, log); err != nil {
			log.Fatal("migrate/seed failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// 会话
	secret := cfg.Session.Secret
	if secret == "" {
		if cfg.App.Env == "prod" {
			log.Fatal("session.secret is required in prod")
		}
		secret = "dev-only-insecure-secret"
		log.Warn("session.secret not set, using an insecure development secret")
	}
	jwter := &auth.JWTer{
		Secret: []byte(secret),
		Issuer: cfg.Session.Issuer,
		TTL:    time.Duration(cfg.Session.TTLMin) * time.Minute,
	}
	var revoker auth.Revoker = auth.NopRevoker{}
	if cfg.Redis.Addr != "" {
		rr := auth.NewRedisRevoker(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer rr.Close()
		revoker = rr
		log.Info("session revocation via redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 依赖
	userRepo := repo.NewUserRepo(db)
	workTypeRepo := repo.NewWorkTypeRepo(db)
	accounts := service.NewAccountService(userRepo, log)
	deps := handler.Deps{
		Accounts: accounts,
		Catalog:  service.NewCatalogService(workTypeRepo, repo.NewMechanicRepo(db), log),
		Orders:   service.NewOrderService(repo.NewOrderRepo(db), workTypeRepo, log),
		Users:    service.NewUserAdminService(userRepo, log),
		Sessions: &session.Manager{
			JWT:        jwter,
			Revoker:    revoker,
			Users:      accounts,
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.Secure,
			Log:        log,
		},
		Log: log,
	}

	r, err := router.NewEngine(log, cfg.App.HTTP, server.GinMode(cfg.App.Env), deps)
	if err != nil {
		log.Fatal("build router", zap.Error(err))
	}

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
	log.Info("autoshop starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("metrics", baseURL+"/metrics"),
	)

	// 异步启动
	go func() {
		if err := server.StartHTTP(srv, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("autoshop start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("autoshop stopped gracefully")
}
