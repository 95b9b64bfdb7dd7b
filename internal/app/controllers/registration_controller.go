package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Djiento/ActionnaireInscrit/internal/app/forms"
	"github.com/Djiento/ActionnaireInscrit/internal/app/middleware"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/services"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/services/container"
	"github.com/Djiento/ActionnaireInscrit/internal/error/code"
	Logger "github.com/Djiento/ActionnaireInscrit/pkg/logger"
)

// InterfaceRegistrationController defines the public registration surface.
type InterfaceRegistrationController interface {
	ShowForm()
	Submit()
	Privacy()
}

// RegistrationController handles the public form.
type RegistrationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRegistrationController creates a new registration controller.
func NewRegistrationController(ctx *gin.Context, container *container.ServiceContainer) *RegistrationController {
	return &RegistrationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleRegistrationFunc returns a gin handler dispatching to the controller.
func HandleRegistrationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRegistrationController(ctx, container)

		switch method {
		case "showForm":
			controller.ShowForm()
		case "submit":
			controller.Submit()
		case "privacy":
			controller.Privacy()
		default:
			ctx.String(http.StatusNotFound, "not found")
		}
	}
}

// formPageData assembles everything index.html needs: choice sets for the
// selects, re-fill values, field errors, flashes and the success state.
func (c *RegistrationController) formPageData(values map[string]string, errs forms.Errors, success bool, whatsappLink string) gin.H {
	return gin.H{
		"Values":         values,
		"Errors":         errs,
		"Success":        success,
		"WhatsappLink":   whatsappLink,
		"Flashes":        middleware.TakeFlashes(c.Ctx),
		"Nationalities":  models.NationalityChoices,
		"Cities":         models.CityCountryChoices,
		"Amounts":        models.InvestmentAmountChoices,
		"Experiences":    models.ExperienceLevelChoices,
		"PaymentMethods": models.PaymentMethodChoices,
	}
}

// 1. ShowForm renders the empty registration form.
func (c *RegistrationController) ShowForm() {
	c.Ctx.HTML(http.StatusOK, "index.html", c.formPageData(nil, nil, false, ""))
}

// 2. Submit runs the registration workflow: validate, intake the document,
// persist the row, then show the invitation link. Each failure state is
// terminal within the request and leaves no partial record behind.
func (c *RegistrationController) Submit() {
	cfg := c.Container.GetConfig()

	if err := c.Ctx.Request.ParseMultipartForm(cfg.MaxUploadSize); err != nil {
		// MaxBytesReader already cut the body off: flash and send the
		// visitor back to the form.
		middleware.Flash(c.Ctx, "danger", code.GetMessage(code.ErrUploadTooLarge))
		c.Ctx.Redirect(http.StatusFound, "/")
		return
	}

	values := c.Ctx.Request.PostForm
	submitted := map[string]string{}
	for key := range values {
		submitted[key] = values.Get(key)
	}

	var clientFilename string
	file, header, err := c.Ctx.Request.FormFile("identity_document")
	if err == nil {
		defer file.Close()
		clientFilename = header.Filename
	}

	registration, errs := forms.ParseRegistration(values, clientFilename)
	if errs != nil {
		c.Ctx.HTML(http.StatusOK, "index.html", c.formPageData(submitted, errs, false, ""))
		return
	}

	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)
	storedName, err := uploadService.Save(file, clientFilename)
	if err != nil {
		if errors.Is(err, services.ErrExtensionNotAllowed) {
			errs = forms.Errors{}
			errs.Add("identity_document", code.GetMessage(code.ErrUploadRejected))
			c.Ctx.HTML(http.StatusOK, "index.html", c.formPageData(submitted, errs, false, ""))
			return
		}
		Logger.Error("store identity document: %v", err)
		middleware.Flash(c.Ctx, "danger", code.GetMessage(code.ErrUploadWrite))
		c.Ctx.HTML(http.StatusOK, "index.html", c.formPageData(submitted, nil, false, ""))
		return
	}

	investor := &models.Investor{
		FullName:          registration.FullName,
		WhatsappNumber:    registration.WhatsappNumber,
		Email:             registration.Email,
		Nationality:       registration.Nationality,
		CityCountry:       registration.CityCountry,
		Profession:        registration.Profession,
		InvestmentAmount:  registration.InvestmentAmount,
		ExperienceLevel:   registration.ExperienceLevel,
		IdentityDocument:  storedName,
		PaymentMethod:     registration.PaymentMethod,
		AdditionalRemarks: registration.AdditionalRemarks,
		TermsAccepted:     registration.TermsAccepted,
	}

	investorService := c.Container.GetService("investor").(services.InterfaceInvestorService)
	if err := investorService.Register(investor); err != nil {
		Logger.Error("save investor: %v", err)
		if removeErr := uploadService.Remove(storedName); removeErr != nil {
			Logger.Warning("remove orphaned upload %s: %v", storedName, removeErr)
		}
		middleware.Flash(c.Ctx, "danger", code.GetMessage(code.ErrDatabase))
		c.Ctx.HTML(http.StatusOK, "index.html", c.formPageData(submitted, nil, false, ""))
		return
	}

	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	middleware.Flash(c.Ctx, "success", "Inscription réussie ! Redirection vers le groupe WhatsApp...")
	c.Ctx.HTML(http.StatusOK, "index.html", c.formPageData(nil, nil, true, settingsService.GroupLink()))
}

// 3. Privacy renders the static privacy page.
func (c *RegistrationController) Privacy() {
	c.Ctx.HTML(http.StatusOK, "privacy.html", gin.H{
		"Flashes": middleware.TakeFlashes(c.Ctx),
	})
}
