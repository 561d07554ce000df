package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mocklab/corpmock/internal/api"
	"github.com/mocklab/corpmock/internal/core/domain"
	"github.com/mocklab/corpmock/internal/core/service"
	"github.com/mocklab/corpmock/internal/infrastructure/config"
	"github.com/mocklab/corpmock/internal/infrastructure/store"
	"github.com/mocklab/corpmock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Debug,
	})

	st := store.New(cfg.DataDir, logg)
	keyring := service.NewKeyring(domain.DefaultAPIKeys())

	e := api.NewRouter(api.Deps{
		Logger:  logg,
		Keyring: keyring,
		Catalog: service.NewCatalogService(st, service.SystemRand()),
		Finance: service.NewFinanceService(st),
		HR:      service.NewHRService(st),
		IT:      service.NewITService(st, cfg.ResetTokenSecret, cfg.ResetTokenTTL, logg),
	})

	go func() {
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server error")
		}
	}()
	logg.Info().Str("addr", cfg.Addr()).Str("data_dir", cfg.DataDir).Msg("corpmock listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
	logg.Info().Msg("server stopped")
}
