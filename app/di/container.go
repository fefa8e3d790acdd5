package di

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"confidios-proxy/app/config"
	"confidios-proxy/app/driver/kratos"
	"confidios-proxy/app/driver/memory"
	"confidios-proxy/app/driver/postgres"
	"confidios-proxy/app/gateway"
	"confidios-proxy/app/port"
	"confidios-proxy/app/rest"
	"confidios-proxy/app/rest/handlers"
	"confidios-proxy/app/usecase"
	"confidios-proxy/app/utils/validator"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client
	SessionCache port.SessionCache

	// Gateways
	ConfidiosGateway port.ConfidiosGateway
	IdentityVerifier port.IdentityVerifier

	// Usecases
	SessionUsecase    port.SessionUsecase
	FilesystemUsecase port.FilesystemUsecase
	UserUsecase       port.UserUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	// Initialize database connection
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Kratos client
	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Initialize repositories and cache
	bindingRepository := postgres.NewBindingRepository(container.DB.Pool(), logger)
	container.SessionCache = memory.NewSessionCache(logger)

	// Initialize gateways
	container.ConfidiosGateway = gateway.NewConfidiosGateway(cfg, logger)
	container.IdentityVerifier = kratos.NewIdentityVerifier(container.KratosClient, logger)

	// Initialize usecases
	container.SessionUsecase = usecase.NewSessionUsecase(
		bindingRepository,
		container.SessionCache,
		container.ConfidiosGateway,
		cfg.ConfidiosAdminUsername,
		cfg.ConfidiosAdminPassword,
		cfg.ConfidiosLogoutTimeout,
		logger,
	)
	container.FilesystemUsecase = usecase.NewFilesystemUsecase(
		container.SessionUsecase,
		bindingRepository,
		container.SessionCache,
		container.ConfidiosGateway,
		cfg.ConfidiosBaseUserFolder,
		logger,
	)
	container.UserUsecase = usecase.NewUserUsecase(
		bindingRepository,
		container.ConfidiosGateway,
		validator.New(),
		logger,
	)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:            c.Logger,
		IdentityVerifier:  c.IdentityVerifier,
		SessionUsecase:    c.SessionUsecase,
		FilesystemUsecase: c.FilesystemUsecase,
		UserUsecase:       c.UserUsecase,
		HealthChecks:      c.healthChecks(),
		EnableDebug:       c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// healthChecks wires the readiness probes for each dependency
func (c *Container) healthChecks() map[string]handlers.DependencyCheck {
	return map[string]handlers.DependencyCheck{
		"database": c.DB.HealthCheck,
		"kratos":   c.KratosClient.HealthCheck,
		"confidios": func(ctx context.Context) error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Config.ConfidiosBaseURL, nil)
			if err != nil {
				return err
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return fmt.Errorf("confidios unreachable: %w", err)
			}
			resp.Body.Close()
			return nil
		},
	}
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
