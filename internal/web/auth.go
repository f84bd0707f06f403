package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gofolio/gofolio/internal/web/handler"
	"github.com/gofolio/gofolio/internal/web/handler/login"
	"github.com/gofolio/gofolio/internal/web/session"
)

// AuthMiddleware protects the admin area. Public portfolio pages pass
// through untouched; any /admin request without a valid session is sent to
// the login page, and a logged-in admin hitting the login page is sent to
// the dashboard.
func AuthMiddleware(c *fiber.Ctx) error {
	path := strings.ToLower(c.Path())

	if !strings.HasPrefix(path, handler.AdminRootPath) {
		return c.Next()
	}

	isLoginPage := path == handler.AdminRootPath || path == handler.AdminRootPath+"/"
	isLogoutPage := strings.HasPrefix(path, handler.AdminRootPath+"/logout")

	if isLogoutPage {
		return c.Next()
	}

	// get session cookie
	loginCookie := c.Cookies("session")
	if loginCookie == "" && !isLoginPage {
		return c.Redirect(login.Path)
	}

	var sessDataValid bool

	sessData := new(session.Data)
	if err := sessData.Read(loginCookie); err != nil && !isLoginPage {
		// expired or unknown session: back to login, no further backend calls
		return c.Redirect(login.Path)
	}

	if sessData.User.ID > 0 {
		sessDataValid = true
		c.Locals("CurrentUser", sessData.User)
	}

	if !sessDataValid && !isLoginPage {
		return c.Redirect(login.Path)
	}

	if sessDataValid && isLoginPage {
		return c.Redirect(handler.AdminRootPath + "/dashboard")
	}

	return c.Next()
}
