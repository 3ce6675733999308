package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chaiwat/seminarhub/internal/cache"
	"github.com/chaiwat/seminarhub/internal/config"
	"github.com/chaiwat/seminarhub/internal/db"
	httpx "github.com/chaiwat/seminarhub/internal/http"
	"github.com/chaiwat/seminarhub/internal/notify"
	"github.com/chaiwat/seminarhub/internal/observability"
	"github.com/chaiwat/seminarhub/internal/repo/postgres"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	if cfg.OTLPEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(context.Background(), "seminarhub", cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
		} else {
			defer func() {
				ctx, cancel := config.WithTimeout(5 * time.Second)
				defer cancel()

				_ = shutdownTracer(ctx)
			}()
		}
	}

	pool, err := db.NewPool(cfg.DBURL)

	if err != nil {
		log.Error("database connect failed", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	prom := observability.NewProm(prometheus.DefaultRegisterer)

	// catalog cache: redis when configured, in-process otherwise
	var catalogCache cache.Cache
	var redisCache *cache.Redis

	if cfg.RedisAddr != "" {
		redisCache = cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      10 * time.Minute,
		})
		catalogCache = redisCache

		defer redisCache.Close()
	} else {
		catalogCache = cache.NewMemory(10 * time.Minute)
	}

	registrationsRepo := postgres.NewRegistrationsRepo(pool, prom)
	scheduleRepo := postgres.NewScheduleRepo(pool, prom)
	refdataRepo := postgres.NewRefdataRepo(pool, prom, catalogCache)

	breaker := notify.BreakerConfig{
		Timeout:          8 * time.Second,
		FailureThreshold: 5,
		Cooldown:         30 * time.Second,
		HalfOpenMaxCalls: 1,
	}

	var sms notify.SMSDispatcher
	var email notify.EmailDispatcher

	if cfg.SMSGatewayURL != "" {
		sms = notify.NewHTTPSMSDispatcher(notify.SMSGatewayConfig{
			URL:    cfg.SMSGatewayURL,
			APIKey: cfg.SMSAPIKey,
			Sender: cfg.SMSSender,
		})
	} else {
		log.Warn("no sms gateway configured, sms deliveries go to the log")
		sms = notify.NewLogDispatcher()
	}

	if cfg.SMTPHost != "" {
		email = notify.NewSMTPEmailDispatcher(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			From:     cfg.SMTPFrom,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
		})
	} else {
		log.Warn("no smtp host configured, email deliveries go to the log")
		email = notify.NewLogDispatcher()
	}

	sms = notify.NewProtectedSMSDispatcher(sms, breaker)
	email = notify.NewProtectedEmailDispatcher(email, breaker)

	pingDB := func() error {
		ctx, cancel := config.WithTimeout(1 * time.Second)
		defer cancel()

		return pool.Ping(ctx)
	}

	pingCache := func() error {
		if redisCache == nil {
			return nil
		}

		ctx, cancel := config.WithTimeout(1 * time.Second)
		defer cancel()

		return redisCache.Ping(ctx)
	}

	router := httpx.NewRouter(cfg, log, httpx.Deps{
		Registrations: registrationsRepo,
		Schedules:     scheduleRepo,
		Catalog:       refdataRepo,
		Deliveries:    registrationsRepo,
		SMS:           sms,
		Email:         email,
		Prom:          prom,
		PingDB:        pingDB,
		PingCache:     pingCache,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)

			return
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
