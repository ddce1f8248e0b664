package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realestate/internal"
	"realestate/internal/config"
	"realestate/internal/container"
	"realestate/ui"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.DefaultLogger = internal.NewLogger(internal.ParseLogLevel(appConfig.LogLevel))
	logger := internal.DefaultLogger.With("Main")

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The dataset is loaded once; the service cannot run without it
	if err := appContainer.LoadDataset(ctx); err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	server := ui.NewServer(appContainer.AnalysisService, ui.Options{
		GinMode:        appConfig.Server.GinMode,
		AllowedOrigins: appConfig.Server.AllowedOrigins,
	})

	servers := []*http.Server{{
		Addr:              ":" + appConfig.Server.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if appConfig.Profiling.Enabled {
		logger.Info("Ops server (health + pprof) enabled on :%s", appConfig.Profiling.Port)
		logger.Info("View profiles: go tool pprof -http=:8081 http://localhost:%s/debug/pprof/profile?seconds=30", appConfig.Profiling.Port)
		servers = append(servers, &http.Server{
			Addr:              ":" + appConfig.Profiling.Port,
			Handler:           ui.NewOpsRouter(appContainer.AnalysisService),
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logger.Info("Listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down (timeout %s)", appConfig.Server.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown of %s: %v", srv.Addr, err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	logger.Info("Server stopped")
}
