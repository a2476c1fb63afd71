package folio

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) handleHome(c echo.Context) error {
	meta := HomeMeta(a.Profile, a.Config.Description)
	return Render(c, a.Views.Home(a.Profile, meta, Theme(c), CsrfToken(c)))
}

func (a *App) handleProfileJSON(c echo.Context) error {
	if !a.profileLimiter.Allow(c.RealIP()) {
		c.Response().Header().Set("Cache-Control", "no-store")
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
	}
	return c.JSON(http.StatusOK, a.Profile.Fields())
}

func (a *App) handleTheme(c echo.Context) error {
	next := ThemeDark
	if Theme(c) == ThemeDark {
		next = ThemeLight
	}
	if err := setTheme(c, next); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// handleRobots generates robots.txt from the profile's website.
func (a *App) handleRobots(c echo.Context) error {
	base := strings.TrimSuffix(a.Profile.Website(), "/")
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", base)
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Profile))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error("server error",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
		)
		_ = RenderStatus(c, code, a.Views.ServerError(a.Profile))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
