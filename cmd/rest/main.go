package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elevennote-be/internal/bootstrap"
	"elevennote-be/internal/config"
	"elevennote-be/internal/pkg/logger"
	"elevennote-be/internal/repository/memory"
	"elevennote-be/internal/repository/unitofwork"
	"elevennote-be/internal/server"
	"elevennote-be/internal/tracer"
	"elevennote-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	if cfg.Auth.JwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	var uowFactory unitofwork.RepositoryFactory
	switch {
	case cfg.Database.Connection != "":
		gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		uowFactory = unitofwork.NewRepositoryFactory(gormDB)
	case !cfg.IsProduction():
		sysLogger.Warn("Bootstrap", "DB_CONNECTION_STRING not set, notes are kept in memory", nil)
		uowFactory = memory.NewRepositoryFactory(memory.NewStore())
	default:
		log.Fatal("DB_CONNECTION_STRING is not set")
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(uowFactory, cfg, sysLogger)

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
