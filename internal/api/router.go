package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"github.com/slooze/commodities-admin/internal/api/handler"
	"github.com/slooze/commodities-admin/internal/api/middleware"
	"github.com/slooze/commodities-admin/internal/core/authz"
	"github.com/slooze/commodities-admin/internal/core/ports"
	"github.com/slooze/commodities-admin/internal/infrastructure/config"
	"github.com/slooze/commodities-admin/internal/infrastructure/http/handlers"
)

// TokenManager issues tokens at login and parses them on every request.
type TokenManager interface {
	ports.TokenIssuer
	middleware.TokenParser
}

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Config        *config.Config
	Logger        zerolog.Logger
	Authenticator ports.Authenticator
	Tokens        TokenManager
	Catalog       ports.CatalogStore
	Orders        ports.OrderService
	Users         ports.UserService
	Dashboard     ports.DashboardService
	Readiness     []handlers.Check
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// RealIP is the socket peer; forwarding headers are client controlled.
	e.IPExtractor = echo.ExtractIPDirect()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(secureHeaders(d.Config.IsDevelopment()))
	e.Use(corsMiddleware(d.Config.HTTP.AllowedOrigins))

	authHandler := handler.NewAuthHandler(d.Authenticator, d.Tokens)
	productHandler := handler.NewProductHandler(d.Catalog)
	orderHandler := handler.NewOrderHandler(d.Orders)
	userHandler := handler.NewUserHandler(d.Users)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)
	requireAuth := middleware.Auth(d.Tokens)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login, loginLimiter(d.Config.Auth))
	e.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Business routes ---
	v1 := e.Group("/v1", requireAuth)

	products := v1.Group("/products", middleware.GateRoute(authz.RouteProducts))
	products.GET("", productHandler.List)
	products.GET("/categories", productHandler.Categories)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, middleware.GateAction(authz.ActionCreateProduct))
	products.PUT("/:id", productHandler.Update, middleware.GateAction(authz.ActionUpdateProduct))
	products.DELETE("/:id", productHandler.Delete, middleware.GateAction(authz.ActionDeleteProduct))

	v1.GET("/orders", orderHandler.List, middleware.GateRoute(authz.RouteOrders))
	v1.GET("/users", userHandler.List, middleware.GateRoute(authz.RouteUsers))
	v1.GET("/dashboard", dashboardHandler.Summary, middleware.GateRoute(authz.RouteDashboard))

	// --- Operational routes (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(d.Readiness...).Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// loginLimiter throttles login attempts per client IP.
func loginLimiter(cfg config.AuthConfig) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.LoginRate),
		Burst:     cfg.LoginBurst,
		ExpiresIn: 3 * time.Minute,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
		},
	})
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
