package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/sapphire-api/docs"
	"github.com/AlexZinkM/sapphire-api/internal/api"
	"github.com/AlexZinkM/sapphire-api/internal/cache"
	"github.com/AlexZinkM/sapphire-api/internal/client"
	"github.com/AlexZinkM/sapphire-api/internal/config"
	"github.com/AlexZinkM/sapphire-api/internal/logger"
	"github.com/AlexZinkM/sapphire-api/internal/service"

	"github.com/rs/zerolog"
)

// @title        Sapphire Wallet API
// @version      1.0.0
// @description  Backend API for Sapphire Non-Custodial Crypto Wallet
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:   cfg.EffectiveLogLevel(),
		Service: cfg.AppName,
		Version: cfg.AppVersion,
		Pretty:  cfg.LogPretty,
	})

	docs.SwaggerInfo.Title = cfg.AppName
	docs.SwaggerInfo.Version = cfg.AppVersion

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

// run owns the shared upstream client, so it is released on every exit path.
func run(cfg *config.Config, log zerolog.Logger) error {
	networks, err := service.NewNetworks(cfg.SupportedNetworks)
	if err != nil {
		return fmt.Errorf("invalid SUPPORTED_NETWORKS: %w", err)
	}

	coingecko := client.NewCoinGeckoClient(cfg.CoinGeckoAPIURL, cfg.UpstreamTimeout, log)
	defer coingecko.Close()

	aggregator, err := service.NewAggregator(coingecko, networks, cache.New(cfg.CacheTTL), cfg.NetworkStrategy, log)
	if err != nil {
		return fmt.Errorf("invalid NETWORK_STRATEGY: %w", err)
	}

	router := api.SetupRouter(aggregator, api.Options{
		AppName:        cfg.AppName,
		AppVersion:     cfg.AppVersion,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		// an upstream call may take the full upstream timeout
		WriteTimeout: cfg.UpstreamTimeout + 10*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("upstream", cfg.CoinGeckoAPIURL).
			Strs("networks", networks.Names()).
			Strs("strategies", aggregator.Strategies()).
			Str("default_strategy", cfg.NetworkStrategy).
			Dur("cache_ttl", cfg.CacheTTL).
			Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
	return nil
}
