package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/slooze/commodities-admin/internal/console"
	"github.com/slooze/commodities-admin/internal/core/ports"
	"github.com/slooze/commodities-admin/internal/core/service"
	"github.com/slooze/commodities-admin/internal/infrastructure/config"
	"github.com/slooze/commodities-admin/internal/infrastructure/db/memory"
	redisdb "github.com/slooze/commodities-admin/internal/infrastructure/db/redis"
	"github.com/slooze/commodities-admin/internal/infrastructure/storage"
	"github.com/slooze/commodities-admin/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	backend := flag.String("backend", "", "session backend: file, redis or memory (overrides SESSION_BACKEND)")
	dir := flag.String("dir", "", "session directory for the file backend (overrides SESSION_DIR)")
	level := flag.String("log-level", "warn", "log level written to stderr")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx, config.WithSessionBackend(*backend), config.WithSessionDir(*dir))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: *level, Pretty: true, Output: os.Stderr})

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("console stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	slot, closeSlot, err := openSlot(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSlot()

	identities, err := memory.NewIdentityRepository(memory.DefaultCredentials())
	if err != nil {
		return err
	}
	catalog := service.NewCatalogStore(memory.DefaultProducts(), log.With().Str("component", "catalog").Logger())

	c := console.New(console.Deps{
		Authenticator: service.NewAuthService(identities, cfg.Auth.LoginDelay, log.With().Str("component", "auth").Logger()),
		Session:       service.NewSessionStore(slot, cfg.Session.Key, log.With().Str("component", "session").Logger()),
		Catalog:       catalog,
		Orders:        service.NewOrderService(memory.NewOrderRepository(memory.DefaultOrders()), catalog),
		Users:         service.NewUserService(memory.NewUserDirectory(memory.DefaultUsers())),
		Dashboard:     service.NewDashboardService(catalog, cfg.Catalog.LowStockThreshold),
		Preferences:   service.NewPreferenceService(slot),
		Logger:        log,
	}, os.Stdout)

	return c.Run(ctx, os.Stdin)
}

// openSlot returns the durable slot for the configured backend and a func
// that releases it.
func openSlot(ctx context.Context, cfg *config.Config) (ports.Slot, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		return storage.NewMemorySlot(), func() {}, nil
	case config.SessionBackendRedis:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisdb.NewSlot(rdb, cfg.Redis.KeyPrefix), func() { _ = rdb.Close() }, nil
	case config.SessionBackendFile:
		slot, err := storage.NewFileSlot(cfg.Session.Dir)
		if err != nil {
			return nil, nil, err
		}
		return slot, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
}
