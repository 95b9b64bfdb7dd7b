package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/services"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/database"
)

// ServiceContainer wires the application services together.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	pool   *database.ConnectionPool

	cacheService    services.InterfaceCacheService
	adminService    services.InterfaceAdminService
	investorService services.InterfaceInvestorService
	settingsService services.InterfaceSettingsService
	uploadService   services.InterfaceUploadService
	exportService   services.InterfaceExportService

	mu sync.RWMutex
}

// NewServiceContainer creates the container and initializes every service.
// pool may be nil in tests that construct the gorm handle directly.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, pool *database.ConnectionPool) (*ServiceContainer, error) {
	if db == nil {
		panic("service container: nil database handle")
	}
	if cfg == nil {
		panic("service container: nil config")
	}

	c := &ServiceContainer{
		db:     db,
		config: cfg,
		pool:   pool,
	}
	if err := c.initializeServices(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ServiceContainer) initializeServices() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cacheService = services.NewRedisService(c.config)

	upload, err := services.NewUploadService(c.config)
	if err != nil {
		return err
	}
	c.uploadService = upload

	c.adminService = services.NewAdminService(c.db, c.config)
	c.investorService = services.NewInvestorService(c.db, c.config, c.cacheService)
	c.settingsService = services.NewSettingsService(c.db, c.config)
	c.exportService = services.NewExportService(c.db, c.config, c.investorService)

	return nil
}

// GetService returns a service by name; the caller asserts the interface.
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "admin":
		return c.adminService
	case "investor":
		return c.investorService
	case "settings":
		return c.settingsService
	case "upload":
		return c.uploadService
	case "export":
		return c.exportService
	case "cache":
		return c.cacheService
	default:
		return nil
	}
}

// GetConfig returns the application configuration.
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetPool returns the connection pool, nil under tests.
func (c *ServiceContainer) GetPool() *database.ConnectionPool {
	return c.pool
}
