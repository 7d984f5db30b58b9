package container

import (
	"context"
	"fmt"
	"net/http"

	appcontact "buscacliente/internal/app/contact"
	appdashboard "buscacliente/internal/app/dashboard"
	appprofile "buscacliente/internal/app/profile"
	"buscacliente/internal/app/shared/validation"
	appwhatsapp "buscacliente/internal/app/whatsapp"

	"buscacliente/internal/domain/auth"
	"buscacliente/internal/domain/contact"
	"buscacliente/internal/domain/dashboard"
	"buscacliente/internal/domain/profile"
	"buscacliente/internal/domain/whatsapp"

	"buscacliente/internal/infra/http/handlers"
	"buscacliente/internal/infra/http/routers"
	"buscacliente/internal/infra/repository"

	"buscacliente/platform/config"
	"buscacliente/platform/database"
	"buscacliente/platform/logger"
)

// Container é o container principal de Dependency Injection
type Container struct {
	// Platform dependencies
	config   *config.Config
	logger   *logger.Logger
	database *database.Database
	version  string

	// Adapters
	contactRepo  *repository.ContactRepository
	profileRepo  *repository.ProfileRepository
	sessionRepo  *repository.SessionRepository
	settingsRepo *repository.ChatSettingsRepository

	// Domain services
	contactService   *contact.Service
	dashboardService *dashboard.Service
	profileService   *profile.Service
	whatsappProvider whatsapp.Provider

	// Use cases
	contactUseCase   appcontact.UseCase
	dashboardUseCase appdashboard.UseCase
	profileUseCase   appprofile.UseCase
	whatsappUseCase  appwhatsapp.UseCase

	handler http.Handler
}

// Config estrutura de configuração para o container
type Config struct {
	AppConfig *config.Config
	Logger    *logger.Logger
	Database  *database.Database
	Version   string
}

// New cria uma nova instância do container
func New(cfg *Config) (*Container, error) {
	container := &Container{
		config:   cfg.AppConfig,
		logger:   cfg.Logger,
		database: cfg.Database,
		version:  cfg.Version,
	}

	if err := container.initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	cfg.Logger.Info("Dependency injection container initialized successfully")
	return container, nil
}

// initialize inicializa todos os componentes
func (c *Container) initialize() error {
	c.logger.Debug("Initializing container...")

	// 1. Repositories
	c.contactRepo = repository.NewContactRepository(c.database.DB)
	c.profileRepo = repository.NewProfileRepository(c.database.DB)
	c.sessionRepo = repository.NewSessionRepository(c.database.DB)
	c.settingsRepo = repository.NewChatSettingsRepository(c.database.DB)

	// 2. Domain services
	c.contactService = contact.NewService(c.contactRepo)
	c.dashboardService = dashboard.NewService(c.contactRepo, c.logger)
	c.profileService = profile.NewService(c.profileRepo)
	c.whatsappProvider = whatsapp.NewStubProvider(c.settingsRepo)

	// 3. Validator
	validator := validation.New()

	// 4. Use cases
	c.contactUseCase = appcontact.NewUseCase(c.contactService, validator, c.logger)
	c.dashboardUseCase = appdashboard.NewUseCase(c.dashboardService)
	c.profileUseCase = appprofile.NewUseCase(c.profileService, validator, c.logger)
	c.whatsappUseCase = appwhatsapp.NewUseCase(c.whatsappProvider, validator, c.logger)

	// 5. HTTP handlers + router
	h := &routers.Handlers{
		Health:      handlers.NewHealthHandler(c.database, c.logger, c.version),
		Contacts:    handlers.NewContactHandler(c.contactUseCase, c.logger),
		Dashboard:   handlers.NewDashboardHandler(c.dashboardUseCase, c.logger),
		Profile:     handlers.NewProfileHandler(c.profileUseCase, c.logger),
		WhatsApp:    handlers.NewWhatsAppHandler(c.whatsappUseCase, c.logger),
		Diagnostics: handlers.NewDiagnosticsHandler(c.database, c.sessionRepo, c.profileRepo, c.logger),
	}

	c.handler = routers.SetupRoutes(c.config, c.logger, c.sessionRepo, h)

	return nil
}

// ===== GETTERS =====

// GetConfig retorna a configuração da aplicação
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLogger retorna o logger da aplicação
func (c *Container) GetLogger() *logger.Logger {
	return c.logger
}

// GetDatabase retorna a conexão com o banco
func (c *Container) GetDatabase() *database.Database {
	return c.database
}

// GetSessionStore retorna o store de sessões
func (c *Container) GetSessionStore() auth.Store {
	return c.sessionRepo
}

// GetContactUseCase retorna o use case de contatos
func (c *Container) GetContactUseCase() appcontact.UseCase {
	return c.contactUseCase
}

// ===== LIFECYCLE =====

// Start inicia os componentes do container
func (c *Container) Start(ctx context.Context) error {
	c.logger.Info("Starting container components...")

	if err := c.database.Health(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.logger.Info("Container components started successfully")
	return nil
}

// Stop para os componentes do container
func (c *Container) Stop(ctx context.Context) error {
	c.logger.Info("Stopping container components...")
	return nil
}

// Handler retorna o handler HTTP raiz da aplicação
func (c *Container) Handler() http.Handler {
	return c.handler
}
