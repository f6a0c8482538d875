package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	config "taskflow.com/taskflow/internal/configs"
	httpapi "taskflow.com/taskflow/internal/http"
	middleware "taskflow.com/taskflow/internal/http/middlewares"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the TaskFlow HTTP API and serves it until SIGINT or SIGTERM",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		limiter, closeLimiter, err := newLimiter(a.cfg)
		if err != nil {
			return err
		}
		defer closeLimiter()

		handler := httpapi.NewHandler(a.projects, a.tasks, a.seed, a.health, a.logger)
		e := httpapi.NewServer(handler, httpapi.ServerOptions{
			Logger:             a.logger,
			CORSAllowedOrigins: a.cfg.CORSAllowedOrigins,
			Limiter:            limiter,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("HTTP server listening", "addr", a.cfg.AppURL)
			if err := e.Start(a.cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return err
			}
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(a.cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}

		a.logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

// newLimiter picks the rate limiter backend. A zero limit disables limiting.
func newLimiter(cfg config.Config) (middleware.Limiter, func(), error) {
	if cfg.RateLimit <= 0 {
		return nil, func() {}, nil
	}

	if cfg.RateLimitBackend != config.RateLimitBackendRedis {
		return middleware.NewMemoryLimiter(cfg.RateLimit, time.Minute), func() {}, nil
	}

	client, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	limiter := middleware.NewRedisLimiter(client, cfg.RedisKeyPrefix, cfg.RateLimit, time.Minute)
	return limiter, client.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
