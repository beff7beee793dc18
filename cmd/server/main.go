package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/riddhimajain08/productivity-api/api/handler"
	"github.com/riddhimajain08/productivity-api/internal/auth"
	"github.com/riddhimajain08/productivity-api/internal/config"
	"github.com/riddhimajain08/productivity-api/internal/infrastructure/monitor"
	pgInfra "github.com/riddhimajain08/productivity-api/internal/infrastructure/postgres"
	"github.com/riddhimajain08/productivity-api/internal/middleware"
	"github.com/riddhimajain08/productivity-api/internal/router"
	"github.com/riddhimajain08/productivity-api/internal/services/lifecycle"
	"github.com/riddhimajain08/productivity-api/pkg/httpcontext"
	"github.com/riddhimajain08/productivity-api/pkg/logger"
	"github.com/riddhimajain08/productivity-api/repository/postgres"
	authUC "github.com/riddhimajain08/productivity-api/usecase/auth"
	statsUC "github.com/riddhimajain08/productivity-api/usecase/stats"
	taskUC "github.com/riddhimajain08/productivity-api/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx := manager.Notify(context.Background())

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pgInfra.Close(pool, zapLogger)
		return nil
	})

	mon := monitor.New(pool, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	tokens := auth.NewTokens(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL)

	authUseCase := authUC.New(userRepo, tokens, zapLogger)
	taskUseCase := taskUC.New(taskRepo, zapLogger)
	statsUseCase := statsUC.New(statsRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	// /init-db must create the schema even when startup migrations are
	// switched off, so the bootstrap closure forces them on.
	bootstrapCfg := *cfg
	bootstrapCfg.Migrations.Enabled = true
	bootstrap := func() error {
		return pgInfra.RunMigrations(&bootstrapCfg, zapLogger)
	}

	handlers := router.Handlers{
		Auth:   apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Task:   apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Stats:  apiHandler.NewStatsHandler(statsUseCase, ctxAdapter, zapLogger),
		Schema: apiHandler.NewSchemaHandler(bootstrap, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.BearerAuth(tokens, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}
	if cfg.HTTP.MaxConn > 0 {
		server.Concurrency = cfg.HTTP.MaxConn
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
