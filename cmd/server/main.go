package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"conectezap-dashboard/internal/api"
	"conectezap-dashboard/internal/cache"
	"conectezap-dashboard/internal/config"
	"conectezap-dashboard/internal/database"
	"conectezap-dashboard/internal/leadfields"
	"conectezap-dashboard/internal/profile"
	"conectezap-dashboard/internal/repository"
	"conectezap-dashboard/internal/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger, _ := zap.NewProduction()
	if cfg.AppEnv == "local" {
		logger, _ = zap.NewDevelopment()
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg, logger)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	var fieldCache leadfields.Cache
	rdb, err := cache.NewClient(ctx, cfg)
	if err != nil {
		logger.Fatal("redis init failed", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
		fieldCache = cache.NewLeadFieldCache(rdb, cfg.CacheTTL)
		logger.Info("lead field cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	store := leadfields.NewStore(repository.NewLeadFieldRepository(db), fieldCache, logger)
	profiles := profile.NewService(repository.NewProfileRepository(db), logger)

	router := api.NewRouter(cfg, logger, api.Handlers{
		LeadFields: api.NewLeadFieldHandler(store, hub),
		Profile:    api.NewProfileHandler(profiles, hub),
		Phone:      api.NewPhoneHandler(),
		Hub:        hub,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
