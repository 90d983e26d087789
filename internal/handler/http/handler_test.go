package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/mock"
	"github.com/MKhiriev/socialix/internal/service"
	"github.com/MKhiriev/socialix/internal/utils"
	"github.com/MKhiriev/socialix/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type serviceMocks struct {
	auth    *mock.MockAuthService
	users   *mock.MockUserService
	profile *mock.MockProfileService
	appInfo *mock.MockAppInfoService
}

var testSettings = Settings{
	RegisterTokenTTL: 24 * time.Hour,
	LoginTokenTTL:    7 * 24 * time.Hour,
	CookieMaxAge:     7 * 24 * time.Hour,
	MaxUploadBytes:   1 << 10,
	RequestTimeout:   5 * time.Second,
}

func newMockedHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		auth:    mock.NewMockAuthService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		profile: mock.NewMockProfileService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		UserService:    m.users,
		ProfileService: m.profile,
		AppInfoService: m.appInfo,
	}, testSettings, logger.Nop())

	return h, m
}

// withSessionUser runs r as if the auth gate had admitted user.
func withSessionUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), user))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func testUser(name string) models.User {
	return models.User{ID: uuid.New(), UserName: name, Email: name + "@x.io"}
}

// ─────────────────────────────────────────────
// NewHandler / Settings
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, testSettings, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, testSettings, h.settings)
	assert.NotNil(t, h.metrics)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, Settings{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, Settings{}, logger.Nop())

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
}

func TestSettings_WithDefaults(t *testing.T) {
	s := Settings{}.withDefaults()

	assert.Equal(t, config.DefaultRegisterTokenDuration, s.RegisterTokenTTL)
	assert.Equal(t, config.DefaultLoginTokenDuration, s.LoginTokenTTL)
	assert.Equal(t, config.DefaultCookieMaxAge, s.CookieMaxAge)
	assert.Equal(t, int64(config.DefaultMaxUploadBytes), s.MaxUploadBytes)
	assert.Equal(t, config.DefaultRequestTimeout, s.RequestTimeout)
	assert.False(t, s.CookieInsecure)
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.App.RegisterTokenDuration = time.Hour
	cfg.App.LoginTokenDuration = 2 * time.Hour
	cfg.App.CookieMaxAge = 3 * time.Hour
	cfg.App.CookieInsecure = true
	cfg.Storage.Media.MaxUploadBytes = 42
	cfg.Server.RequestTimeout = time.Second

	assert.Equal(t, Settings{
		RegisterTokenTTL: time.Hour,
		LoginTokenTTL:    2 * time.Hour,
		CookieMaxAge:     3 * time.Hour,
		CookieInsecure:   true,
		MaxUploadBytes:   42,
		RequestTimeout:   time.Second,
	}, SettingsFromConfig(cfg))
}

// ─────────────────────────────────────────────
// version / health
// ─────────────────────────────────────────────

func TestGetServerVersion_WritesVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newMockedHandler(t, ctrl)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
