// cmd/jobswipe/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobswipe-client/internal/api"
	"jobswipe-client/internal/apply"
	"jobswipe-client/internal/common/cache"
	"jobswipe-client/internal/common/config"
	"jobswipe-client/internal/common/logger"
	"jobswipe-client/internal/common/observability"
	"jobswipe-client/internal/companies"
	"jobswipe-client/internal/models"
	"jobswipe-client/internal/poll"
	"jobswipe-client/internal/profile"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting jobswipe client runtime",
		zap.String("environment", cfg.App.Environment),
		zap.String("apiBaseUrl", cfg.API.BaseURL),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Optional Redis profile cache with retry ---
	var profileCache profile.Cache
	if cfg.Cache.Enabled {
		var redisClient *cache.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = cache.NewRedis(cfg.Cache.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			// The cache is a fallback layer, not a dependency.
			zapLog.Warn("Redis unavailable, continuing without profile cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			profileCache = redisClient
			zapLog.Info("Redis connected successfully")
		}
	}

	// --- Backend client and stores ---
	apiClient := api.NewClient(cfg.API, log)

	store := profile.NewStore(apiClient, profileCache, time.Duration(cfg.Cache.TTL)*time.Second, log)
	current := store.Load(ctx, cfg.User.DefaultUserID)
	if loadErr := store.Err(); loadErr != nil {
		zapLog.Warn("Profile loaded from fallback", zap.String("code", string(loadErr.Code)))
	}
	zapLog.Info("Profile ready", zap.String("userId", current.UserID))

	coordinator := apply.NewCoordinator(apply.LoadConfig(), apiClient, obs, log)
	rt := newRuntime(coordinator, store, log)
	zapLog.Info("Application coordinator ready")

	directory := companies.NewDirectory(apiClient, log)
	if err := directory.Refresh(ctx); err != nil {
		zapLog.Warn("Initial companies fetch failed", zap.Error(err))
	}

	// --- Auth status poller ---
	poller := poll.NewPoller(apiClient, config.GetDuration(cfg.Poll.AuthStatusInterval), log, func(status models.AuthStatus) {
		zapLog.Info("Auth status changed",
			zap.Bool("signedIn", status.SignedIn),
			zap.Bool("linkedinConnected", status.LinkedInConnected),
			zap.Bool("tokenExpired", status.TokenExpired),
		)
	})
	poller.Start(ctx)

	// --- Health/Metrics Server ---
	if cfg.Metrics.Enabled {
		go func() {
			http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "healthy",
					"time":   time.Now().Format(time.RFC3339),
				})
			})
			http.Handle("/metrics", promhttp.Handler())
			zapLog.Info("Health/Metrics server listening", zap.String("addr", cfg.Metrics.ListenAddr))
			if err := http.ListenAndServe(cfg.Metrics.ListenAddr, nil); err != nil {
				zapLog.Error("Health/Metrics server failed", zap.Error(err))
			}
		}()
	}

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping...")

	poller.Stop()
	rt.Close()
	cancel()
	store.Flush()

	zapLog.Info("Shutdown complete")
}
