package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"portfolio/config"
	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/router"
	"portfolio/internal/delivery/api/router/handler"
	"portfolio/internal/delivery/api/validator"
	"portfolio/internal/infra/auth"
	"portfolio/internal/infra/csrf"
	"portfolio/internal/infra/github"
	"portfolio/internal/infra/persistence/gormdb"
	"portfolio/internal/infra/pubsub"
	"portfolio/internal/infra/ratelimit"
	"portfolio/internal/usecase/impl"
	"portfolio/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminUser     = "admin"
	adminPassword = "correct-horse-battery"
	sessionCookie = "portfolio-session"
)

type testApp struct {
	echo      *echo.Echo
	db        *gorm.DB
	csrfClock time.Time
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Database: &config.DatabaseConfig{Driver: config.DatabaseDriverSQLite, AutoMigrate: true},
		Auth:     &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Credentials: &config.CredentialsConfig{
			Key: "admin-credentials.json",
		},
		Session: &config.SessionConfig{
			Driver:     config.SessionDriverJWT,
			Secret:     "e2e-session-secret",
			CookieName: sessionCookie,
			MaxAge:     time.Hour,
		},
		CSRF: &config.CSRFConfig{MaxAge: time.Hour},
		RateLimit: &config.RateLimitConfig{
			Store:           config.RateLimitStoreMemory,
			MaxRequests:     5,
			Window:          time.Hour,
			CleanupInterval: time.Minute,
		},
		GitHub: &config.GitHubConfig{
			BaseURL:  "http://127.0.0.1:0",
			CacheTTL: 10 * time.Minute,
			Timeout:  time.Second,
		},
		SecurityHeaders: &config.SecurityHeadersConfig{},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.RateLimit.Login.MaxRequests = 10
	cfg.RateLimit.Login.Window = 15 * time.Minute
	cfg.Database.SQLite.DSN = fmt.Sprintf("file:e2e_%d?mode=memory&cache=shared", time.Now().UnixNano())

	return cfg
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := gormdb.Open(cfg, logger)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	hasher := auth.NewBcryptHasher(cfg)
	hash, err := hasher.Hash(adminPassword)
	require.NoError(t, err)
	t.Setenv(auth.EnvAdminUser, adminUser)
	t.Setenv(auth.EnvAdminPasswordHash, hash)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	app := &testApp{db: db, csrfClock: time.Now()}

	credentials := auth.NewCredentialStore(logger,
		auth.NewBlobCredentialProvider(bucket, cfg.Credentials.Key),
		auth.NewEnvCredentialProvider(),
	)
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(cfg.RateLimit.CleanupInterval))
	csrfService := csrf.NewService("e2e-csrf-secret", func() time.Time { return app.csrfClock })

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: logger,
	})
	require.NoError(t, err)

	tokens, err := auth.NewJWTService(cfg.Session.Secret, cfg.Session.MaxAge)
	require.NoError(t, err)
	sessions := auth.NewJWTCookieSessionManager(tokens, cfg.Session)

	v := validator.New()
	txManager := gormdb.NewTransactionManager(db)

	authService := impl.NewAuthService(impl.AuthServiceParams{
		Credentials: credentials,
		Hasher:      hasher,
		Limiter:     limiter,
		Validator:   v,
		Config:      cfg,
		Logger:      logger,
	})
	contactService := impl.NewContactService(impl.ContactServiceParams{
		TxManager: txManager,
		Limiter:   limiter,
		CSRF:      csrfService,
		Publisher: publisher,
		Validator: v,
		Config:    cfg,
		Logger:    logger,
	})
	portfolioService := impl.NewPortfolioService(txManager, logger)
	settingsService := impl.NewSettingsService(credentials, auth.NewBlobCredentialWriter(bucket, cfg), hasher, logger)

	app.echo = NewEcho(cfg, logger, v, router.RouterParams{
		CSRFHandler:    handler.NewCSRFHandler(csrfService),
		ContactHandler: handler.NewContactHandler(contactService),
		AuthHandler:    handler.NewAuthHandler(authService, sessions, logger),
		AdminHandler:   handler.NewAdminHandler(portfolioService, settingsService, sessions),
		ContentHandler: handler.NewContentHandler(impl.NewContentService(txManager, logger)),
		SiteHandler: handler.NewSiteHandler(
			portfolioService,
			impl.NewGitHubService(github.NewClient(cfg), cfg, logger),
			cfg,
		),
		GuardMiddleware: middleware.NewGuardMiddleware(impl.NewRouteGuard(authService), sessions, logger),
	})

	return app
}

func (app *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	return rec
}

func (app *testApp) issueToken(t *testing.T) string {
	t.Helper()

	rec := app.do(httptest.NewRequest(http.MethodGet, "/api/csrf", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store, no-cache, must-revalidate", rec.Header().Get(echo.HeaderCacheControl))

	var body struct {
		CSRFToken string `json:"csrfToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.CSRFToken)

	return body.CSRFToken
}

func contactRequest(ip, token string) *http.Request {
	payload, _ := json.Marshal(map[string]string{
		"name":      "Jane Doe",
		"email":     "Jane@Example.com",
		"message":   "I would like to work with you on a project.",
		"csrfToken": token,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(string(payload)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Forwarded-For", ip)

	return req
}

func (app *testApp) countSubmissions(t *testing.T) int64 {
	t.Helper()

	count, err := gormdb.NewContactRepository(app.db).Count(context.Background())
	require.NoError(t, err)

	return count
}

func loginRequest(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("X-Forwarded-For", "192.0.2.10")

	return req
}

func sessionFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookie && cookie.Value != "" {
			return cookie
		}
	}

	return nil
}

func TestE2E_ContactSubmissionWithFreshToken(t *testing.T) {
	app := newTestApp(t)
	token := app.issueToken(t)

	rec := app.do(contactRequest("203.0.113.5", token))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Thank you for your message! I will get back to you soon.","success":true}`, rec.Body.String())
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))

	stored, err := gormdb.NewContactRepository(app.db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "jane@example.com", stored[0].Email)
	assert.Equal(t, util.HashIdentifier("203.0.113.5"), stored[0].IPHash)
	assert.NotContains(t, stored[0].IPHash, "203.0.113.5")
}

func TestE2E_ContactRateLimit(t *testing.T) {
	app := newTestApp(t)
	token := app.issueToken(t)

	for i := range 5 {
		rec := app.do(contactRequest("203.0.113.6", token))
		require.Equal(t, http.StatusCreated, rec.Code, "submission %d: %s", i+1, rec.Body.String())
	}

	rec := app.do(contactRequest("203.0.113.6", token))

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.Positive(t, retryAfter)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Too many requests. Please try again later.", body["error"])
	assert.InDelta(t, float64(retryAfter), body["retryAfter"], 0)
	assert.Equal(t, int64(5), app.countSubmissions(t))

	// Other clients keep their own window.
	rec = app.do(contactRequest("203.0.113.7", token))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestE2E_ContactExpiredToken(t *testing.T) {
	app := newTestApp(t)

	app.csrfClock = time.Now().Add(-2 * time.Hour)
	token := app.issueToken(t)
	app.csrfClock = time.Now()

	rec := app.do(contactRequest("203.0.113.8", token))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired security token. Please refresh and try again."}`, rec.Body.String())
	assert.Zero(t, app.countSubmissions(t))
}

func TestE2E_ContactRejectsBadInput(t *testing.T) {
	app := newTestApp(t)

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":`))
		req.Header.Set("X-Forwarded-For", "203.0.113.9")

		rec := app.do(req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid JSON in request body"}`, rec.Body.String())
	})

	t.Run("schema violations", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			strings.NewReader(`{"name":"J","email":"x","message":"hi","csrfToken":"t"}`))
		req.Header.Set("X-Forwarded-For", "203.0.113.9")

		rec := app.do(req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body struct {
			Error   string `json:"error"`
			Details []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Validation failed", body.Error)
		assert.Len(t, body.Details, 3)
	})

	t.Run("get is not allowed", func(t *testing.T) {
		rec := app.do(httptest.NewRequest(http.MethodGet, "/api/contact", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
	})

	assert.Zero(t, app.countSubmissions(t))
}

func TestE2E_Login(t *testing.T) {
	app := newTestApp(t)

	t.Run("wrong password", func(t *testing.T) {
		rec := app.do(loginRequest(adminUser, "wrong-password"))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/login?error=CredentialsSignin", rec.Header().Get(echo.HeaderLocation))
		assert.Nil(t, sessionFrom(rec))
	})

	t.Run("wrong password as json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/login",
			strings.NewReader(`{"username":"admin","password":"nope"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := app.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Invalid credentials"`)
		assert.Nil(t, sessionFrom(rec))
	})

	t.Run("correct credentials", func(t *testing.T) {
		rec := app.do(loginRequest(adminUser, adminPassword))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))
		cookie := sessionFrom(rec)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)

		dashboard := httptest.NewRequest(http.MethodGet, "/admin", nil)
		dashboard.AddCookie(cookie)
		rec = app.do(dashboard)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}

func TestE2E_GuardRejectsAnonymousRequests(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/admin/projects", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login?callbackUrl=%2Fadmin%2Fprojects", rec.Header().Get(echo.HeaderLocation))

	rec = app.do(httptest.NewRequest(http.MethodGet, "/admin/api/messages", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)

	rec = app.do(httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<form method="post" action="/admin/login">`)
}

func TestE2E_CredentialChangeRevokesSessions(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(loginRequest(adminUser, adminPassword))
	cookie := sessionFrom(rec)
	require.NotNil(t, cookie)

	update := httptest.NewRequest(http.MethodPut, "/admin/api/settings/credentials", strings.NewReader(
		`{"currentPassword":"`+adminPassword+`","newUsername":"owner","newPassword":"n3w-passw0rd","confirmPassword":"n3w-passw0rd"}`))
	update.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	update.AddCookie(cookie)
	rec = app.do(update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	messages := httptest.NewRequest(http.MethodGet, "/admin/api/messages", nil)
	messages.AddCookie(cookie)
	rec = app.do(messages)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(loginRequest("owner", "n3w-passw0rd"))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.NotNil(t, sessionFrom(rec))
}

func TestE2E_PublicReads(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "max-age=63072000; includeSubDomains; preload", rec.Header().Get("Strict-Transport-Security"))

	rec = app.do(httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fallback":true`)

	rec = app.do(httptest.NewRequest(http.MethodGet, "/api/github", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"repos":[],"cached":false,"error":"GitHub username not configured"}`, rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
}
