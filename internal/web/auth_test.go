package web

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofolio/gofolio/internal/db/models"
	"github.com/gofolio/gofolio/internal/web/handler"
	websess "github.com/gofolio/gofolio/internal/web/session"
)

type memStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func (s *memStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data[key], nil
}

func (s *memStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = val

	return nil
}

func (s *memStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *memStorage) Reset() error { return nil }
func (s *memStorage) Close() error { return nil }

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()

	websess.Init(&memStorage{data: make(map[string][]byte)})

	app := fiber.New()
	app.Use(AuthMiddleware)

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }

	app.Get("/", ok)
	app.Get("/projects", ok)
	app.Get(handler.AdminRootPath, ok)
	app.Get(handler.AdminRootPath+"/dashboard", ok)
	app.Get(handler.AdminRootPath+"/logout", ok)

	return app
}

func writeSession(t *testing.T) string {
	t.Helper()

	id, err := websess.GenerateSessionID()
	require.NoError(t, err)

	data := &websess.Data{User: models.User{ID: 1, Active: true}}
	require.NoError(t, data.Write(id, time.Minute))

	return id
}

func get(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestAuthMiddlewarePublicPagesPass(t *testing.T) {
	app := newAuthTestApp(t)

	for _, path := range []string{"/", "/projects"} {
		resp := get(t, app, path, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestAuthMiddlewareAdminRequiresSession(t *testing.T) {
	app := newAuthTestApp(t)

	resp := get(t, app, handler.AdminRootPath+"/dashboard", "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.AdminRootPath, resp.Header.Get("Location"))
}

func TestAuthMiddlewareInvalidSessionRedirects(t *testing.T) {
	app := newAuthTestApp(t)

	resp := get(t, app, handler.AdminRootPath+"/dashboard", "bogus")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestAuthMiddlewareValidSessionPasses(t *testing.T) {
	app := newAuthTestApp(t)
	id := writeSession(t)

	resp := get(t, app, handler.AdminRootPath+"/dashboard", id)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareLoginPageBouncesWhenLoggedIn(t *testing.T) {
	app := newAuthTestApp(t)
	id := writeSession(t)

	resp := get(t, app, handler.AdminRootPath, id)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.AdminRootPath+"/dashboard", resp.Header.Get("Location"))
}

func TestAuthMiddlewareLogoutAlwaysPasses(t *testing.T) {
	app := newAuthTestApp(t)

	resp := get(t, app, handler.AdminRootPath+"/logout", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
