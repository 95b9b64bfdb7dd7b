package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
	"github.com/Djiento/ActionnaireInscrit/internal/domain/services"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
	"github.com/Djiento/ActionnaireInscrit/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.SetupLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "setup logger: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func setupSessionTest(t *testing.T) services.InterfaceAdminService {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))

	cfg := &config.Config{
		SessionSecret:        "test-secret",
		DefaultAdminUsername: "admin",
		DefaultAdminEmail:    "admin@example.com",
		DefaultAdminPassword: "admin-password",
	}
	adminSvc := services.NewAdminService(db, cfg)
	InitSessionStore(cfg, adminSvc)
	return adminSvc
}

func TestTokenBucketExhaustsBurst(t *testing.T) {
	tb := NewTokenBucket(0.001, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, tb.Allow(), "request %d should pass", i)
	}
	assert.False(t, tb.Allow())
}

func TestGetIPLimiterConcurrentFirstRequest(t *testing.T) {
	const workers = 16
	results := make(chan *TokenBucket, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- getIPLimiter("203.0.113.7", 2, 5)
		}()
	}
	wg.Wait()
	close(results)

	// Every concurrent caller must end up on the same bucket.
	first := <-results
	require.NotNil(t, first)
	for tb := range results {
		assert.Same(t, first, tb)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	adminSvc := setupSessionTest(t)
	require.NoError(t, adminSvc.EnsureDefaultAdmin())

	r := gin.New()
	r.GET("/login", func(c *gin.Context) {
		require.NoError(t, SetAdminID(c, 1))
		c.Status(http.StatusOK)
	})
	r.GET("/check", func(c *gin.Context) {
		id, ok := GetAdminID(c)
		assert.True(t, ok)
		assert.Equal(t, uint(1), id)
		c.Status(http.StatusOK)
	})
	r.GET("/logout", func(c *gin.Context) {
		require.NoError(t, ClearAdminID(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAdminIDMissingCookie(t *testing.T) {
	setupSessionTest(t)

	r := gin.New()
	r.GET("/check", func(c *gin.Context) {
		_, ok := GetAdminID(c)
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/check", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateAdminRedirectsAnonymous(t *testing.T) {
	setupSessionTest(t)

	r := gin.New()
	r.GET("/admin/dashboard", AuthenticateAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin/login", func(c *gin.Context) {
		flashes := TakeFlashes(c)
		require.Len(t, flashes, 1)
		assert.Equal(t, "Veuillez vous connecter pour accéder à cette page.", flashes[0].Message)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	// The visitor lands on the login page with the explanation queued.
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateAdminInjectsAdmin(t *testing.T) {
	adminSvc := setupSessionTest(t)
	require.NoError(t, adminSvc.EnsureDefaultAdmin())
	admin, err := adminSvc.Authenticate("admin", "admin-password")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/login", func(c *gin.Context) {
		require.NoError(t, SetAdminID(c, admin.ID))
		c.Status(http.StatusOK)
	})
	r.GET("/admin/dashboard", AuthenticateAdmin(), func(c *gin.Context) {
		got := c.MustGet(AdminContextKey).(*models.Admin)
		assert.Equal(t, admin.ID, got.ID)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	cookies := w.Result().Cookies()

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateAdminStaleCookie(t *testing.T) {
	setupSessionTest(t)

	r := gin.New()
	r.GET("/login", func(c *gin.Context) {
		// An id that matches no row, as after an account deletion.
		require.NoError(t, SetAdminID(c, 42))
		c.Status(http.StatusOK)
	})
	r.GET("/admin/dashboard", AuthenticateAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	cookies := w.Result().Cookies()

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestFlashRoundTrip(t *testing.T) {
	setupSessionTest(t)

	r := gin.New()
	r.GET("/set", func(c *gin.Context) {
		Flash(c, "success", "Inscription réussie !")
		c.Status(http.StatusOK)
	})
	r.GET("/take", func(c *gin.Context) {
		flashes := TakeFlashes(c)
		require.Len(t, flashes, 1)
		assert.Equal(t, "success", flashes[0].Category)
		assert.Equal(t, "Inscription réussie !", flashes[0].Message)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/take", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBodyLimitCutsOversizedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/", BodyLimit(16), func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	small := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("field=ok"))
	small.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, small)
	assert.Equal(t, http.StatusOK, w.Code)

	big := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("field="+strings.Repeat("a", 64)))
	big.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
