package api

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/pdam/billing-console/docs"
	"github.com/pdam/billing-console/internal/api/handler"
	"github.com/pdam/billing-console/internal/api/metrics"
	"github.com/pdam/billing-console/internal/api/middleware"
	"github.com/pdam/billing-console/internal/api/view"
	"github.com/pdam/billing-console/internal/core/dialog"
	"github.com/pdam/billing-console/internal/core/ports"
	"github.com/pdam/billing-console/internal/core/service"
	"github.com/pdam/billing-console/internal/infrastructure/config"
	dbredis "github.com/pdam/billing-console/internal/infrastructure/db/redis"
	"github.com/pdam/billing-console/internal/infrastructure/session"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Client   ports.PDAMClient
	Sessions session.Provider
	Cache    ports.ReferenceCache
	// Redis is optional; when set the readiness check pings it.
	Redis redis.UniversalClient
	// Metrics overrides the default Prometheus registry (tests).
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) (*echo.Echo, error) {
	if d.Config == nil || d.Client == nil || d.Sessions == nil || d.Cache == nil {
		return nil, errors.New("router: config, client, sessions and cache are required")
	}

	renderer, err := view.New()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(prometheusConfig(d.Metrics)))

	// --- Infrastructure routes (no session) ---
	e.StaticFS("/static", view.Static())
	e.GET("/metrics", metricsHandler(d.Metrics))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(readinessChecks(d.Redis))
	e.GET("/health", healthHandler.Liveness)            // process is up
	e.GET("/health/ready", healthDepsHandler.Readiness) // dependencies reachable

	// --- Dependencies ---
	guard := dialog.NewGuard()
	customers := service.NewCustomerService(d.Client, metrics.Recorder{}, d.Logger.With().Str("component", "customers").Logger())
	catalog := service.NewServiceCatalog(d.Client, d.Cache, d.Config.ReferenceTTL, metrics.Recorder{}, d.Logger.With().Str("component", "services").Logger())
	profiles := service.NewProfileService(d.Client, d.Logger.With().Str("component", "profile").Logger())
	auth := service.NewAuthService(d.Client, 0, d.Logger.With().Str("component", "auth").Logger())

	authHandler := handler.NewAuthHandler(auth, d.Logger)
	profileHandler := handler.NewProfileHandler(profiles, d.Logger)
	customerHandler := handler.NewCustomerHandler(customers, guard, d.Logger)
	serviceHandler := handler.NewServiceHandler(catalog, guard, d.Logger)

	app := e.Group("", middleware.Session(d.Sessions, d.Logger))

	// --- Auth routes ---
	app.GET("/", authHandler.Root)
	app.GET("/sign-in", authHandler.SignInPage)
	app.POST("/sign-in", authHandler.SignIn)
	app.POST("/sign-out", authHandler.SignOut)
	app.GET("/sign-up", authHandler.SignUpPage)
	app.POST("/sign-up", authHandler.SignUp)

	// --- Admin console ---
	admin := app.Group("/admin")
	admin.GET("/dashboard", profileHandler.AdminDashboard)
	admin.GET("/profile", profileHandler.AdminProfile)
	admin.POST("/profile", profileHandler.SaveAdminProfile)

	admin.GET("/customers", customerHandler.List)
	admin.GET("/customers/export.xlsx", customerHandler.Export)
	admin.POST("/customers", customerHandler.Create)
	admin.PUT("/customers/:id", customerHandler.Update)
	admin.DELETE("/customers/:id", customerHandler.Delete)

	admin.GET("/services", serviceHandler.List)
	admin.GET("/services/export.xlsx", serviceHandler.Export)
	admin.POST("/services", serviceHandler.Create)
	admin.PUT("/services/:id", serviceHandler.Update)
	admin.DELETE("/services/:id", serviceHandler.Delete)

	admin.GET("/reference/services", serviceHandler.Reference)

	// --- Customer console ---
	app.GET("/cust/dashboard", profileHandler.CustomerDashboard)

	return e, nil
}

func prometheusConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{
		Subsystem: "pdam_console",
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return p == "/metrics" || strings.HasPrefix(p, "/static/")
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}

func readinessChecks(rdb redis.UniversalClient) map[string]handler.Check {
	checks := map[string]handler.Check{}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return dbredis.Ping(ctx, rdb, 2*time.Second)
		}
	}
	return checks
}
