package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"confidios-proxy/app/port"
	"confidios-proxy/app/rest/handlers"
	custommw "confidios-proxy/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger            *slog.Logger
	IdentityVerifier  port.IdentityVerifier
	SessionUsecase    port.SessionUsecase
	FilesystemUsecase port.FilesystemUsecase
	UserUsecase       port.UserUsecase
	HealthChecks      map[string]handlers.DependencyCheck
	EnableDebug       bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.SessionUsecase, config.Logger)
	filesystemHandler := handlers.NewFilesystemHandler(config.FilesystemUsecase, config.Logger)
	userHandler := handlers.NewUserHandler(config.UserUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecks, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.IdentityVerifier, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Everything else requires a verified caller
	authed := v1.Group("", authMiddleware.RequireAuth())

	// Session endpoints
	auths := authed.Group("/auths")
	auths.POST("/login", authHandler.AdminLogin, authMiddleware.RequireAdmin())
	auths.POST("/logout", authHandler.AdminLogout, authMiddleware.RequireAdmin())
	auths.POST("/user/login", authHandler.UserLogin)
	auths.POST("/user/logout", authHandler.UserLogout)
	authed.GET("/status", authHandler.Status)

	// Filesystem endpoints
	authed.POST("/ls", filesystemHandler.ListFiles)
	authed.POST("/cat", filesystemHandler.ReadFile)
	authed.POST("/mkdir", filesystemHandler.MakeDirectory)

	// User provisioning endpoints
	users := authed.Group("/users")
	users.POST("/create", userHandler.CreateUser, authMiddleware.RequireAdmin())
	users.GET("/list", userHandler.ListUsers, authMiddleware.RequireAdmin())
	users.GET("/me", userHandler.Me)

	return e
}
