package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pranavthakur-code/get-health-help/internal/config"
	"github.com/pranavthakur-code/get-health-help/internal/handler"
	"github.com/pranavthakur-code/get-health-help/internal/logging"
	"github.com/pranavthakur-code/get-health-help/internal/middleware"
	"github.com/pranavthakur-code/get-health-help/internal/model/doctor"
	"github.com/pranavthakur-code/get-health-help/internal/service/booking"
	"github.com/pranavthakur-code/get-health-help/internal/service/chat"
)

const janitorInterval = time.Minute

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so it completes before main exits.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.Init(cfg.Log)
	if err != nil {
		logger.Warn("log file unavailable, logging to stderr", "error", err)
	}
	if envErr != nil {
		logger.Warn("failed to load .env file, continuing with system environment variables only", "error", envErr)
	}

	doctorStore := doctor.NewMemoryStore(doctor.Seed())
	chatService := chat.NewService(chat.Options{
		ThinkingDelay: thinkingDelay(cfg.Triage),
		Logger:        logger,
	})
	defer chatService.Close()

	bookingService := booking.NewService(doctorStore, booking.LogNotifier{Logger: logger}, nil)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled() {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	go runJanitor(ctx, logger, chatService, limiter, cfg.Triage.SessionIdleTTL)

	router := handler.NewRouter(doctorStore, chatService, bookingService, limiter)

	return startServer(ctx, logger, cfg.Server, router)
}

// thinkingDelay maps a configured zero to an immediate reply.
func thinkingDelay(cfg config.TriageConfig) time.Duration {
	if cfg.ThinkingDelay == 0 {
		return chat.NoThinkingDelay
	}
	return cfg.ThinkingDelay
}

// runJanitor periodically disposes idle sessions and forgets idle clients.
func runJanitor(ctx context.Context, logger *slog.Logger, chatService *chat.Service, limiter *middleware.RateLimiter, ttl time.Duration) {
	if ttl <= 0 {
		logger.Info("session sweeping disabled")
		return
	}

	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			chatService.Sweep(ttl)
			if limiter != nil {
				limiter.Prune(ttl)
			}
		}
	}
}

func startServer(ctx context.Context, logger *slog.Logger, serverCfg config.ServerConfig, router http.Handler) error {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		// Long-lived SSE requests end with the process context instead of
		// holding Shutdown until its timeout.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	logger.Info("health assistant backend listening", "addr", addr)
	if err := runServer(ctx, srv); err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
