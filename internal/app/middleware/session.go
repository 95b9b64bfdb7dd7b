package middleware

import (
	"crypto/sha256"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/services"
	"github.com/Djiento/ActionnaireInscrit/internal/error/code"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
	Logger "github.com/Djiento/ActionnaireInscrit/pkg/logger"
)

const sessionName = "admin_session"

// AdminContextKey is where the authenticated admin is stored on the gin
// context by AuthenticateAdmin.
const AdminContextKey = "admin"

var (
	store        *sessions.CookieStore
	adminService services.InterfaceAdminService
)

// InitSessionStore builds the cookie store and captures the admin service
// used by the auth middleware. Two keys are derived from the session secret:
// one signs, one encrypts.
func InitSessionStore(cfg *config.Config, admins services.InterfaceAdminService) {
	h := sha256.Sum256([]byte("auth:" + cfg.SessionSecret))
	e := sha256.Sum256([]byte("enc:" + cfg.SessionSecret))

	store = sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	adminService = admins
}

func getSession(r *http.Request) (*sessions.Session, error) {
	return store.Get(r, sessionName)
}

// SetAdminID records a successful login in the session cookie.
func SetAdminID(c *gin.Context, adminID uint) error {
	s, err := getSession(c.Request)
	if err != nil {
		return err
	}
	s.Values["admin_id"] = adminID
	return s.Save(c.Request, c.Writer)
}

// GetAdminID reads the logged-in admin id from the session cookie.
func GetAdminID(c *gin.Context) (uint, bool) {
	s, err := getSession(c.Request)
	if err != nil {
		return 0, false
	}
	if v, ok := s.Values["admin_id"].(uint); ok {
		return v, true
	}
	return 0, false
}

// ClearAdminID ends the session.
func ClearAdminID(c *gin.Context) error {
	s, err := getSession(c.Request)
	if err != nil {
		return err
	}
	delete(s.Values, "admin_id")
	return s.Save(c.Request, c.Writer)
}

// Flash queues a one-shot message, rendered by the next page load.
// category is a display hint (success, danger, info).
func Flash(c *gin.Context, category, message string) {
	s, err := getSession(c.Request)
	if err != nil {
		return
	}
	s.AddFlash(category + "|" + message)
	if err := s.Save(c.Request, c.Writer); err != nil {
		Logger.Warning("save flash: %v", err)
	}
}

// FlashMessage is one queued flash, split back into category and text.
type FlashMessage struct {
	Category string
	Message  string
}

// TakeFlashes drains the queued flashes.
func TakeFlashes(c *gin.Context) []FlashMessage {
	s, err := getSession(c.Request)
	if err != nil {
		return nil
	}

	raw := s.Flashes()
	if len(raw) > 0 {
		if err := s.Save(c.Request, c.Writer); err != nil {
			Logger.Warning("clear flashes: %v", err)
		}
	}

	msgs := make([]FlashMessage, 0, len(raw))
	for _, f := range raw {
		str, ok := f.(string)
		if !ok {
			continue
		}
		category, message, found := strings.Cut(str, "|")
		if !found {
			category, message = "info", str
		}
		msgs = append(msgs, FlashMessage{Category: category, Message: message})
	}
	return msgs
}

// AuthenticateAdmin guards admin-scoped routes: it resolves the session to an
// admin row and injects it into the request context, redirecting to the login
// page otherwise.
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetAdminID(c)
		if !ok {
			Flash(c, "info", code.GetMessage(code.ErrSessionInvalid))
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		admin, err := adminService.GetAdminByID(id)
		if err != nil {
			// Stale cookie for a deleted account; drop it.
			_ = ClearAdminID(c)
			Flash(c, "info", code.GetMessage(code.ErrSessionInvalid))
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set(AdminContextKey, admin)
		c.Next()
	}
}
