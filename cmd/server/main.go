package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"petitionpay/internal/admin"
	"petitionpay/internal/confirmation"
	"petitionpay/internal/notification"
	"petitionpay/internal/petitioner"
	"petitionpay/internal/platform/config"
	"petitionpay/internal/platform/database"
	"petitionpay/internal/platform/health"
	"petitionpay/internal/platform/httpserver"
	"petitionpay/internal/platform/logger"
	"petitionpay/internal/platform/metrics"
	"petitionpay/internal/platform/redis"
	"petitionpay/internal/revocation"
	"petitionpay/internal/token"
	httptransport "petitionpay/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal services; nothing here should grow beyond plumbing.
func main() {
	log := logger.New()

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	tokens := token.NewService(cfg.JWTSigningKey, cfg.TokenTTL)

	adminStore := admin.NewPostgres(pool.DB())
	petitionerStore := petitioner.NewPostgres(pool.DB())

	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.MailUser,
		Password: cfg.MailAppPassword,
	})
	receipts := notification.NewWorker(mailer, log, m)

	admins := admin.NewService(adminStore, tokens, log, m)
	confirmations := confirmation.NewService(petitionerStore, receipts, log, m)

	// With no Redis configured the revocation list is disabled and logout is
	// client-side only, which is acceptable for a single-admin deployment.
	var trl *revocation.RedisTRL
	if redisClient != nil {
		trl = revocation.NewRedisTRL(redisClient.Client)
	}

	healthHandler := health.New()
	healthHandler.RegisterCheck("postgres", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return pool.Health(ctx)
	})
	if redisClient != nil {
		healthHandler.RegisterCheck("redis", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(ctx)
		})
	}

	routerCfg := httptransport.RouterConfig{
		Auth:        httptransport.NewAuthHandler(admins, nilIfNoTRL(trl), log),
		Petitioners: httptransport.NewPetitionerHandler(petitionerStore, confirmations, log),
		Verifier:    tokens,
		Health:      healthHandler,
		Metrics:     m,
		Logger:      log,
	}
	if trl != nil {
		routerCfg.Revocations = trl
	}
	router := httptransport.NewRouter(routerCfg)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := receipts.Run(gCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// nilIfNoTRL keeps the typed-nil *RedisTRL from masquerading as a non-nil
// TokenRevoker interface value inside the handler.
func nilIfNoTRL(trl *revocation.RedisTRL) httptransport.TokenRevoker {
	if trl == nil {
		return nil
	}
	return trl
}
