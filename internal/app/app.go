package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ownersalliance/trustportal/internal/adapter/discord"
	"github.com/ownersalliance/trustportal/internal/auth"
	"github.com/ownersalliance/trustportal/internal/config"
	authsvc "github.com/ownersalliance/trustportal/internal/service/auth"
	"github.com/ownersalliance/trustportal/internal/store/memory"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
	"github.com/ownersalliance/trustportal/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, seeds the
// in-memory store, wires the HTTP stack and serves until the context is
// cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	store := memory.New(logger)
	seed := memory.SeedParams{
		AdminUsername: cfg.Seed.AdminUsername,
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
		StaffUsername: cfg.Seed.StaffUsername,
		StaffEmail:    cfg.Seed.StaffEmail,
		StaffPassword: cfg.Seed.StaffPassword,
		BcryptCost:    cfg.Auth.BcryptCost,
	}
	if err := store.SeedBaseline(ctx, seed); err != nil {
		return fmt.Errorf("app.Run seed store: %w", err)
	}
	if err := store.EnsureDefaultAccounts(ctx, seed); err != nil {
		return fmt.Errorf("app.Run ensure accounts: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var authService *authsvc.Service
	if cfg.Auth.HasDiscordOAuth() {
		verifier := discord.NewVerifier(
			cfg.Auth.DiscordClientID,
			cfg.Auth.DiscordClientSecret,
			cfg.Auth.DiscordRedirectURI,
			logger,
		)
		authService = authsvc.NewService(logger, store, verifier, jwtManager, cfg.Auth)
	} else {
		logger.Warn("discord oauth not configured, discord login disabled")
		authService = authsvc.NewService(logger, store, nil, jwtManager, cfg.Auth)
	}

	mux := rest.NewRouter(logger, store, authService, cfg.Auth.BcryptCost, BuildVersion())

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	metrics := middleware.NewMetrics()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		metrics.Instrument(mux),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimit),
		middleware.Auth(jwtManager),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app.Run serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Run shutdown: %w", err)
	}
	return nil
}
