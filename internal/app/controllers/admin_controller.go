package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Djiento/ActionnaireInscrit/internal/app/forms"
	"github.com/Djiento/ActionnaireInscrit/internal/app/middleware"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/services"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/services/container"
	"github.com/Djiento/ActionnaireInscrit/internal/error/code"
	"github.com/Djiento/ActionnaireInscrit/internal/error/response"
	Logger "github.com/Djiento/ActionnaireInscrit/pkg/logger"
)

// InterfaceAdminController defines the admin-facing surface.
type InterfaceAdminController interface {
	ShowLogin()
	Login()
	Logout()
	Dashboard()
	UpdateWhatsApp()
	ExportCSV()
	ServeUpload()
}

// AdminController handles authentication and the dashboard.
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller.
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAdminFunc returns a gin handler dispatching to the controller.
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "showLogin":
			controller.ShowLogin()
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "dashboard":
			controller.Dashboard()
		case "updateWhatsApp":
			controller.UpdateWhatsApp()
		case "exportCSV":
			controller.ExportCSV()
		case "serveUpload":
			controller.ServeUpload()
		default:
			response.ErrorPage(ctx, code.ErrRecordNotFound)
		}
	}
}

// 1. ShowLogin renders the login page; an authenticated admin is sent
// straight to the dashboard.
func (c *AdminController) ShowLogin() {
	if _, ok := middleware.GetAdminID(c.Ctx); ok {
		c.Ctx.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.Ctx.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Errors":  forms.Errors(nil),
		"Flashes": middleware.TakeFlashes(c.Ctx),
	})
}

// 2. Login verifies the credentials and opens the session. Wrong username
// and wrong password produce the same message.
func (c *AdminController) Login() {
	if err := c.Ctx.Request.ParseForm(); err != nil {
		middleware.Flash(c.Ctx, "danger", code.GetMessage(code.ErrBind))
		c.Ctx.Redirect(http.StatusFound, "/admin/login")
		return
	}

	login, errs := forms.ParseLogin(c.Ctx.Request.PostForm)
	if errs != nil {
		c.Ctx.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Errors":  errs,
			"Flashes": middleware.TakeFlashes(c.Ctx),
		})
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Authenticate(login.Username, login.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			Logger.Error("admin login: %v", err)
		}
		middleware.Flash(c.Ctx, "danger", code.GetMessage(code.ErrLoginFailed))
		c.Ctx.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Errors":  forms.Errors(nil),
			"Flashes": middleware.TakeFlashes(c.Ctx),
		})
		return
	}

	if err := middleware.SetAdminID(c.Ctx, admin.ID); err != nil {
		Logger.Error("save session: %v", err)
		middleware.Flash(c.Ctx, "danger", code.GetMessage(code.ErrUnknown))
		c.Ctx.Redirect(http.StatusFound, "/admin/login")
		return
	}

	middleware.Flash(c.Ctx, "success", "Connexion réussie !")
	next := c.Ctx.Query("next")
	if !isLocalPath(next) {
		next = "/admin/dashboard"
	}
	c.Ctx.Redirect(http.StatusFound, next)
}

// isLocalPath accepts only same-site redirect targets: an absolute path that
// a browser cannot read as a scheme-relative URL ("//host" or "/\host").
func isLocalPath(p string) bool {
	if p == "" || p[0] != '/' {
		return false
	}
	if len(p) > 1 && (p[1] == '/' || p[1] == '\\') {
		return false
	}
	return true
}

// 3. Logout clears the session.
func (c *AdminController) Logout() {
	if err := middleware.ClearAdminID(c.Ctx); err != nil {
		Logger.Warning("clear session: %v", err)
	}
	middleware.Flash(c.Ctx, "info", "Déconnexion réussie.")
	c.Ctx.Redirect(http.StatusFound, "/")
}

// 4. Dashboard renders the filtered, paginated investor list with the
// whole-table aggregates and the settings form.
func (c *AdminController) Dashboard() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	filter := services.InvestorFilter{
		Search:     c.Ctx.Query("search"),
		Experience: c.Ctx.Query("experience"),
		Amount:     c.Ctx.Query("amount"),
		Page:       page,
	}

	investorService := c.Container.GetService("investor").(services.InterfaceInvestorService)
	investors, pagination, err := investorService.ListInvestors(filter)
	if err != nil {
		Logger.Error("list investors: %v", err)
		response.ErrorPage(c.Ctx, code.ErrUnknown)
		return
	}

	stats, err := investorService.GetDashboardStats()
	if err != nil {
		Logger.Error("dashboard stats: %v", err)
		response.ErrorPage(c.Ctx, code.ErrUnknown)
		return
	}

	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	settings, err := settingsService.Get()
	if err != nil {
		Logger.Error("load settings: %v", err)
		response.ErrorPage(c.Ctx, code.ErrUnknown)
		return
	}

	groupLink := ""
	if settings != nil {
		groupLink = settings.WhatsappGroupLink
	}

	c.Ctx.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Admin":            c.Ctx.MustGet(middleware.AdminContextKey),
		"Investors":        investors,
		"Pagination":       pagination,
		"TotalInvestors":   stats.TotalInvestors,
		"TotalEstimated":   stats.EstimatedTotal,
		"Search":           filter.Search,
		"ExperienceFilter": filter.Experience,
		"AmountFilter":     filter.Amount,
		"Experiences":      models.ExperienceLevelChoices,
		"Amounts":          models.InvestmentAmountChoices,
		"GroupLink":        groupLink,
		"Flashes":          middleware.TakeFlashes(c.Ctx),
	})
}

// 5. UpdateWhatsApp upserts the invitation link.
func (c *AdminController) UpdateWhatsApp() {
	if err := c.Ctx.Request.ParseForm(); err != nil {
		middleware.Flash(c.Ctx, "danger", code.GetMessage(code.ErrBind))
		c.Ctx.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	settingsForm, errs := forms.ParseWhatsAppSettings(c.Ctx.Request.PostForm)
	if errs != nil {
		middleware.Flash(c.Ctx, "danger", code.GetMessage(code.ErrValidation))
		c.Ctx.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	if _, err := settingsService.UpdateGroupLink(settingsForm.GroupLink); err != nil {
		Logger.Error("update whatsapp link: %v", err)
		middleware.Flash(c.Ctx, "danger", code.GetMessage(code.ErrSettingsUpdate))
		c.Ctx.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	middleware.Flash(c.Ctx, "success", "Lien WhatsApp mis à jour avec succès !")
	c.Ctx.Redirect(http.StatusFound, "/admin/dashboard")
}

// 6. ExportCSV streams the full table as a CSV attachment.
func (c *AdminController) ExportCSV() {
	exportService := c.Container.GetService("export").(services.InterfaceExportService)

	c.Ctx.Header("Content-Type", "text/csv; charset=utf-8")
	c.Ctx.Header("Content-Disposition", `attachment; filename="investisseurs.csv"`)

	if err := exportService.WriteCSV(c.Ctx.Writer); err != nil {
		Logger.Error("export csv: %v", err)
		// Headers may already be out; nothing safe to render here.
		c.Ctx.Status(http.StatusInternalServerError)
	}
}

// 7. ServeUpload serves a stored identity document to the logged-in admin.
func (c *AdminController) ServeUpload() {
	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)

	path, err := uploadService.Path(c.Ctx.Param("filename"))
	if err != nil {
		response.ErrorPage(c.Ctx, code.ErrRecordNotFound)
		return
	}
	if _, err := os.Stat(path); err != nil {
		response.ErrorPage(c.Ctx, code.ErrRecordNotFound)
		return
	}
	c.Ctx.File(path)
}
