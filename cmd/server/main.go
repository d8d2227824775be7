package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/meetingagent/todo-service/api/handler"
	"github.com/meetingagent/todo-service/internal/config"
	sqliteInfra "github.com/meetingagent/todo-service/internal/infrastructure/sqlite"
	"github.com/meetingagent/todo-service/internal/router"
	"github.com/meetingagent/todo-service/internal/services/lifecycle"
	"github.com/meetingagent/todo-service/internal/services/maintenance"
	"github.com/meetingagent/todo-service/pkg/httpcontext"
	"github.com/meetingagent/todo-service/pkg/logger"
	sqliteRepo "github.com/meetingagent/todo-service/repository/sqlite"
	"github.com/meetingagent/todo-service/usecase"
	todoUC "github.com/meetingagent/todo-service/usecase/todo"
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

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	db, err := sqliteInfra.Open(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("sqlite open failed", zap.Error(err))
	}
	manager.Register("sqlite", func(ctx context.Context) error {
		return db.Close()
	})

	if cfg.Migrations.Enabled {
		if err := sqliteInfra.RunMigrations(db, zapLogger); err != nil {
			zapLogger.Fatal("migrations failed", zap.Error(err))
		}
	}

	if cfg.Maintenance.Enabled {
		maint := maintenance.New(db, zapLogger, maintenance.Config{
			Interval: cfg.Maintenance.Interval,
		})
		maint.Start()
		manager.Register("maintenance", func(ctx context.Context) error {
			maint.Stop(ctx)
			return nil
		})
	}

	todoRepo := sqliteRepo.NewTodoRepository(db)
	todoUseCase := todoUC.New(todoRepo, zapLogger)

	dispatcher := usecase.NewDispatcher(zapLogger)
	apiHandler.NewTodoOperations(todoUseCase).Register(dispatcher)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Dispatch: apiHandler.NewDispatchHandler(dispatcher, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(db, ctxAdapter, zapLogger),
	}
	r := router.New(handlers)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("database", cfg.Database.Path()))
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
