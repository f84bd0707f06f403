package login

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gofolio/gofolio/internal/config"
	"github.com/gofolio/gofolio/internal/content"
	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
	websess "github.com/gofolio/gofolio/internal/web/session"
)

// noOpViews is a minimal Fiber Views engine used for tests.
// It writes the "error" field from the provided fiber.Map (if any)
// so tests can assert error messages rendered by handlers.
type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		if v, exists := m["error"]; exists && v != nil {
			_, _ = io.WriteString(w, v.(string))
			return nil
		}
	}
	// write template name to have some content
	_, _ = io.WriteString(w, name)

	return nil
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{Views: noOpViews{}})
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}))

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
		Admin: config.Admin{UserID: 1, Email: "admin@example.com"},
	}
}

// testStorage is a minimal in-memory implementation of storage.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.data = make(map[string][]byte)
	}

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func (s *testStorage) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

func postLogin(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()

	form := url.Values{"email": {email}, "password": {password}}

	req, err := http.NewRequest(http.MethodPost, Path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func setup(t *testing.T) (*fiber.App, *gorm.DB, *config.Config, *content.Store, *testStorage) {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig()
	app := newTestApp()
	store := content.NewStore()

	sessStorage := &testStorage{data: make(map[string][]byte)}
	websess.Init(sessStorage)

	var s Service
	require.NoError(t, s.Init(app, cfg, db, store, nil))

	return app, db, cfg, store, sessStorage
}

func TestPostWrongCredentials(t *testing.T) {
	app, db, _, store, sessStorage := setup(t)

	require.NoError(t, db.Create(&models.User{
		Email:    "admin@example.com",
		Password: models.HashPassword("secret"),
		Active:   true,
	}).Error)

	resp := postLogin(t, app, "admin@example.com", "wrong")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), ErrInvalidCredentials.Error())

	assert.Zero(t, sessStorage.len())
	assert.False(t, store.Current().Authenticated)
}

func TestPostUnknownUser(t *testing.T) {
	app, _, _, _, _ := setup(t)

	resp := postLogin(t, app, "nobody@example.com", "secret")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPostNotTheAdminDeletesSession(t *testing.T) {
	app, db, cfg, store, sessStorage := setup(t)

	// user id 1 is someone else, the configured admin id points elsewhere
	cfg.Admin.UserID = 42

	require.NoError(t, db.Create(&models.User{
		Email:    "intruder@example.com",
		Password: models.HashPassword("secret"),
		Active:   true,
	}).Error)

	resp := postLogin(t, app, "intruder@example.com", "secret")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), ErrUnauthorizedUser.Error())

	// the session written during login must be gone again
	assert.Zero(t, sessStorage.len())
	assert.False(t, store.Current().Authenticated)
}

func TestPostSuccess(t *testing.T) {
	app, db, _, store, sessStorage := setup(t)

	require.NoError(t, db.Create(&models.User{
		Email:    "admin@example.com",
		Password: models.HashPassword("secret"),
		Active:   true,
	}).Error)

	resp := postLogin(t, app, "admin@example.com", "secret")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.AdminRootPath+"/dashboard", resp.Header.Get("Location"))

	// session cookie issued and stored
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.Equal(t, 1, sessStorage.len())

	assert.True(t, store.Current().Authenticated)

	// the profile picked up the email-derived username
	var profile models.Profile
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&profile).Error)
	assert.Equal(t, "admin", profile.Username)
}

func TestPostInactiveUser(t *testing.T) {
	app, db, _, _, _ := setup(t)

	require.NoError(t, db.Create(&models.User{
		Email:    "admin@example.com",
		Password: models.HashPassword("secret"),
		Active:   false,
	}).Error)

	resp := postLogin(t, app, "admin@example.com", "secret")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), ErrAccountInactive.Error())
}
