package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Djiento/ActionnaireInscrit/internal/app/controllers"
	"github.com/Djiento/ActionnaireInscrit/internal/app/middleware"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/services"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/services/container"
	"github.com/Djiento/ActionnaireInscrit/internal/error/code"
	"github.com/Djiento/ActionnaireInscrit/internal/error/response"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/database"
)

// SetupRouter initializes the service container, the session store and the
// configured gin engine.
func SetupRouter(db *gorm.DB, cfg *config.Config, pool *database.ConnectionPool) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Logger())
	// A panic must not leak a raw error page; by the time it unwinds, any
	// open transaction has already been rolled back by gorm.
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		response.ErrorPage(c, code.ErrUnknown)
	}))

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")

	serviceContainer, err := container.NewServiceContainer(db, cfg, pool)
	if err != nil {
		return nil, err
	}

	adminService := serviceContainer.GetService("admin").(services.InterfaceAdminService)
	middleware.InitSessionStore(cfg, adminService)

	registerRoutes(r, serviceContainer)
	return r, nil
}

// registerRoutes configures all routes.
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	registerPublicRoutes(r, container)
	registerAdminRoutes(r, container)

	r.NoRoute(func(c *gin.Context) {
		response.ErrorPage(c, code.ErrRecordNotFound)
	})
}

// registerPublicRoutes registers the registration form and the liveness probe.
func registerPublicRoutes(r *gin.Engine, container *container.ServiceContainer) {
	cfg := container.GetConfig()

	r.GET("/", controllers.HandleRegistrationFunc(container, "showForm"))
	r.POST("/",
		middleware.IPRateLimiter(2, 5),
		middleware.BodyLimit(cfg.MaxUploadSize),
		controllers.HandleRegistrationFunc(container, "submit"))
	r.GET("/privacy", controllers.HandleRegistrationFunc(container, "privacy"))

	r.GET("/api/health", controllers.HandleHealthFunc(container, "ping"))
}

// registerAdminRoutes registers login plus the session-guarded admin surface.
func registerAdminRoutes(r *gin.Engine, container *container.ServiceContainer) {
	r.GET("/admin/login", controllers.HandleAdminFunc(container, "showLogin"))
	r.POST("/admin/login",
		middleware.IPRateLimiter(2, 5),
		controllers.HandleAdminFunc(container, "login"))

	auth := r.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	auth.GET("/admin/logout", controllers.HandleAdminFunc(container, "logout"))
	auth.GET("/admin/dashboard", controllers.HandleAdminFunc(container, "dashboard"))
	auth.POST("/admin/update-whatsapp", controllers.HandleAdminFunc(container, "updateWhatsApp"))
	auth.GET("/admin/export-csv", controllers.HandleAdminFunc(container, "exportCSV"))
	auth.GET("/uploads/:filename", controllers.HandleAdminFunc(container, "serveUpload"))

	// Pool statistics stay behind the session; only liveness is public.
	auth.GET("/api/health/status", controllers.HandleHealthFunc(container, "status"))
}
