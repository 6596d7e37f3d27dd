package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"housing-empire-ai/internal/bootstrap"
	"housing-empire-ai/internal/config"
	"housing-empire-ai/internal/server"
	"housing-empire-ai/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Unable to bootstrap container: %v", err)
	}
	defer container.Logger.Sync()

	// 3. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Otel, container.Logger)

	// 4. Start Background Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := container.ConsumerService.Consume(ctx); err != nil {
		container.Logger.Error("BOOT", "Activity consumer failed to start", map[string]interface{}{"error": err.Error()})
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// 6. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("SERVER", "Shutting down", nil)
	if err := srv.Shutdown(); err != nil {
		container.Logger.Error("SERVER", "Server shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	cancel()
	if err := container.Close(); err != nil {
		container.Logger.Error("SERVER", "Event bus close failed", map[string]interface{}{"error": err.Error()})
	}

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	if err := shutdownTracer(flushCtx); err != nil {
		container.Logger.Error("TRACER", "Tracer shutdown failed", map[string]interface{}{"error": err.Error()})
	}
}
