package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"noticeflow/auth"
	"noticeflow/config"
	"noticeflow/db"
	"noticeflow/handler"
	"noticeflow/logger"
	"noticeflow/middleware"
	"noticeflow/notice"
	"noticeflow/record"
)

func main() {
	cfgPath := "config.yaml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	authSvc := auth.NewService(
		auth.NewRepository(pool),
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenExpireHours)*time.Hour,
	)
	noticeSvc := notice.NewService(
		record.NewPGStore(pool),
		notice.NewAllocator(cfg.Ident.Prefix),
	)

	authHandler := handler.NewAuthHandler(authSvc)
	processHandler := handler.NewProcessHandler(noticeSvc, cfg.Ident.DefaultCountry)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())

	api := router.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.Auth(authSvc))
	authed.GET("/auth/me", authHandler.GetCurrentUser)
	authed.POST("/processes", processHandler.Create)
	authed.POST("/processes/:processId/stages/:stage", processHandler.Derive)
	authed.POST("/processes/:processId/relaunch", processHandler.Relaunch)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("api listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
