// @title                       Commodities Admin API
// @version                     1.0
// @description                 Catalog, order and user administration for the commodities back office.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	_ "github.com/slooze/commodities-admin/docs"
	"github.com/slooze/commodities-admin/internal/api"
	"github.com/slooze/commodities-admin/internal/core/ports"
	"github.com/slooze/commodities-admin/internal/core/service"
	"github.com/slooze/commodities-admin/internal/infrastructure/config"
	"github.com/slooze/commodities-admin/internal/infrastructure/db/memory"
	mongodb "github.com/slooze/commodities-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/slooze/commodities-admin/internal/infrastructure/db/redis"
	"github.com/slooze/commodities-admin/internal/infrastructure/http/handlers"
	"github.com/slooze/commodities-admin/internal/infrastructure/token"
	"github.com/slooze/commodities-admin/pkg/logger"
)

func main() {
	envErr := godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err == nil {
		err = cfg.CheckTokenSecret()
	}
	if err != nil {
		bootLog := logger.Init(logger.Options{Pretty: true, Output: os.Stderr})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "commodities-api",
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found; relying on existing environment")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	identities, checks, closeIdentities, err := openIdentities(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeIdentities()

	if cfg.Session.Backend == config.SessionBackendRedis {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		checks = append(checks, handlers.RedisCheck(rdb))
	}

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET not set; tokens will not survive a restart")
	}

	catalog := service.NewCatalogStore(memory.DefaultProducts(), log.With().Str("component", "catalog").Logger())

	e := api.NewRouter(api.Deps{
		Config:        cfg,
		Logger:        log,
		Authenticator: service.NewAuthService(identities, cfg.Auth.LoginDelay, log.With().Str("component", "auth").Logger()),
		Tokens:        token.NewJWTManager(secret, cfg.Auth.TokenTTL),
		Catalog:       catalog,
		Orders:        service.NewOrderService(memory.NewOrderRepository(memory.DefaultOrders()), catalog),
		Users:         service.NewUserService(memory.NewUserDirectory(memory.DefaultUsers())),
		Dashboard:     service.NewDashboardService(catalog, cfg.Catalog.LowStockThreshold),
		Readiness:     checks,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openIdentities selects the credential source together with its readiness
// checks. The returned func releases any connection it opened.
func openIdentities(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.IdentityRepository, []handlers.Check, func(), error) {
	if cfg.Auth.IdentitySource != config.IdentitySourceMongo {
		repo, err := memory.NewIdentityRepository(memory.DefaultCredentials())
		return repo, nil, func() {}, err
	}

	db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() { _ = db.Client().Disconnect(context.Background()) }

	repo := mongodb.NewIdentityRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		closeFn()
		return nil, nil, nil, err
	}
	if cfg.Mongo.Seed {
		creds, err := memory.HashCredentials(memory.DefaultCredentials())
		if err != nil {
			closeFn()
			return nil, nil, nil, err
		}
		n, err := repo.Seed(ctx, creds)
		if err != nil {
			closeFn()
			return nil, nil, nil, err
		}
		log.Info().Int("inserted", n).Msg("identities seeded")
	}
	return repo, []handlers.Check{handlers.MongoCheck(db)}, closeFn, nil
}
