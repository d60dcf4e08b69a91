package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/ispnetops/ipam/internal/auth"
	appdb "github.com/ispnetops/ipam/internal/db"
	"github.com/ispnetops/ipam/internal/domain"
	apihttp "github.com/ispnetops/ipam/internal/http"
)

type Config struct {
	Port              string
	DSN               string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	AuthEnabled       bool
	AuthIssuer        string
	AuthJWKSURL       string
	AuthAudience      string
	GatewayConvention string
	LogLevel          slog.Level
}

// LoadConfig reads configuration from the environment. DB_CONN is the
// only required variable.
func LoadConfig() (Config, error) {
	cfg := Config{
		DSN:               os.Getenv("DB_CONN"),
		Port:              os.Getenv("PORT"),
		ReadTimeout:       3 * time.Second,
		WriteTimeout:      3 * time.Second,
		AuthEnabled:       os.Getenv("AUTH_ENABLED") == "true",
		AuthIssuer:        os.Getenv("AUTH_ISSUER"),
		AuthJWKSURL:       os.Getenv("AUTH_JWKS_URL"),
		AuthAudience:      os.Getenv("AUTH_AUDIENCE"),
		GatewayConvention: os.Getenv("GATEWAY_CONVENTION"),
	}

	if cfg.DSN == "" {
		return Config{}, fmt.Errorf("missing required environment variable: DB_CONN")
	}
	if cfg.Port == "" {
		cfg.Port = "4040"
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		JWKSURL:  cfg.AuthJWKSURL,
		Audience: cfg.AuthAudience,
	})
}

// Serve wires the full stack on an existing listener and blocks until
// ctx is cancelled.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	gateway, err := domain.ParseGatewayConvention(cfg.GatewayConvention)
	if err != nil {
		return err
	}

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := appdb.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}

	service := domain.NewLoggingNetworkService(logger,
		domain.NewNetworkService(appdb.NewSubnetRepository(pool), appdb.NewIPRepository(pool), gateway))

	api := apihttp.NewAPI(logger, pool, service, authenticator)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

// Run creates the listener from the configured port and serves on it.
func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return Serve(ctx, cfg, listener)
}
