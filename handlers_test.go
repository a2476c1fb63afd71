package folio_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/kanajetzt/folio"
	"github.com/kanajetzt/folio/views"
)

func newTestApp(t *testing.T, mutate func(*folio.SiteConfig), opts ...folio.Option) *folio.App {
	t.Helper()
	cfg := folio.DefaultConfig()
	cfg.SessionSecret = "test-secret"
	cfg.StaticDir = t.TempDir()
	if mutate != nil {
		mutate(&cfg)
	}
	opts = append([]folio.Option{folio.WithLogger(zap.NewNop())}, opts...)
	app, err := folio.New(cfg, views.Default(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func get(t *testing.T, app *folio.App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

// send serves req and carries over every cookie the response sets.
func send(t *testing.T, app *folio.App, req *http.Request, jar map[string]*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	for _, ck := range jar {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		jar[ck.Name] = ck
	}
	return rec
}

var csrfField = regexp.MustCompile(`name="_csrf" value="([^"]+)"`)

func TestHomeRendersProfile(t *testing.T) {
	app := newTestApp(t, nil)

	rec := get(t, app, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Kai / KANA</title>")
	assert.Contains(t, body, `<h1 class="name">Kai / KANA</h1>`)
	assert.Contains(t, body, `src="https://avatars.githubusercontent.com/u/41547570?v=4"`)
	assert.Contains(t, body, "I’m Kai, a software engineer based in Germany.")
	assert.Contains(t, body, `"@type":"Person"`)
}

func TestHomeRendersOnlyConfiguredHandles(t *testing.T) {
	app := newTestApp(t, func(cfg *folio.SiteConfig) {
		cfg.Profile.GitHub = "KANAjetzt"
		cfg.Profile.Twitter = ""
		cfg.Profile.Instagram = ""
	})

	body := get(t, app, "/").Body.String()
	assert.Contains(t, body, `href="https://github.com/KANAjetzt"`)
	assert.Contains(t, body, `data-network="github"`)
	assert.NotContains(t, body, "instagram.com")
	assert.NotContains(t, body, `data-network="instagram"`)
	assert.NotContains(t, body, `data-network="twitter"`)
}

func TestHomeUsesConfiguredDescription(t *testing.T) {
	app := newTestApp(t, func(cfg *folio.SiteConfig) {
		cfg.Description = "Godot tinkerer"
	})
	body := get(t, app, "/").Body.String()
	assert.Contains(t, body, `<meta name="description" content="Godot tinkerer">`)
}

func TestProfileJSON(t *testing.T) {
	app := newTestApp(t, nil)

	rec := get(t, app, "/profile.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var got folio.ProfileFields
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, folio.DefaultProfile().Fields(), got)
}

func TestProfileJSONRateLimited(t *testing.T) {
	app := newTestApp(t, func(cfg *folio.SiteConfig) {
		cfg.ProfileRateLimit = 2
	})

	assert.Equal(t, http.StatusOK, get(t, app, "/profile.json").Code)
	assert.Equal(t, http.StatusOK, get(t, app, "/profile.json").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(t, app, "/profile.json").Code)
}

func TestProfileJSONRateLimitIsNotCached(t *testing.T) {
	app := newTestApp(t, func(cfg *folio.SiteConfig) {
		cfg.ProfileRateLimit = 1
	})

	ok := get(t, app, "/profile.json")
	require.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, "public, max-age=3600", ok.Header().Get("Cache-Control"))

	limited := get(t, app, "/profile.json")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "no-store", limited.Header().Get("Cache-Control"))
}

func TestHomeIsRevalidatedPerCookie(t *testing.T) {
	app := newTestApp(t, nil)

	rec := get(t, app, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "private, no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Header().Values("Vary"), "Cookie")
}

func TestRobotsAndSitemap(t *testing.T) {
	app := newTestApp(t, nil)

	robots := get(t, app, "/robots.txt")
	require.Equal(t, http.StatusOK, robots.Code)
	assert.Contains(t, robots.Body.String(), "Sitemap: https://kana.jetzt/sitemap.xml")

	sitemap := get(t, app, "/sitemap.xml")
	require.Equal(t, http.StatusOK, sitemap.Code)
	assert.Contains(t, sitemap.Body.String(), "<loc>https://kana.jetzt/</loc>")
}

func TestEmbeddedAssets(t *testing.T) {
	app := newTestApp(t, nil)

	css := get(t, app, "/public/style.css")
	require.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Body.String(), ".social")

	icon := get(t, app, "/favicon.svg")
	require.Equal(t, http.StatusOK, icon.Code)
	assert.Contains(t, icon.Body.String(), "<svg")
}

func TestNotFoundPage(t *testing.T) {
	app := newTestApp(t, nil)

	rec := get(t, app, "/nope/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not found · Kai / KANA")
}

func TestServerErrorPage(t *testing.T) {
	app := newTestApp(t, nil, folio.WithCustomRoutes(func(a *folio.App) {
		a.Echo.GET("/boom/", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusInternalServerError, "boom")
		})
	}))

	rec := get(t, app, "/boom/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
}

func TestThemeRequiresCSRFToken(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/theme/", strings.NewReader(""))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestThemeToggle(t *testing.T) {
	app := newTestApp(t, nil)
	jar := map[string]*http.Cookie{}

	home := send(t, app, httptest.NewRequest(http.MethodGet, "/", nil), jar)
	require.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), `class="light"`)
	m := csrfField.FindStringSubmatch(home.Body.String())
	require.Len(t, m, 2, "theme form carries a csrf token")

	toggle := func() {
		form := url.Values{"_csrf": {m[1]}}
		req := httptest.NewRequest(http.MethodPost, "/theme/", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := send(t, app, req, jar)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	}

	toggle()
	dark := send(t, app, httptest.NewRequest(http.MethodGet, "/", nil), jar)
	require.Equal(t, http.StatusOK, dark.Code)
	assert.Contains(t, dark.Body.String(), `<html lang="en" class="dark">`)
	assert.Contains(t, dark.Body.String(), "Light mode")

	toggle()
	light := send(t, app, httptest.NewRequest(http.MethodGet, "/", nil), jar)
	assert.Contains(t, light.Body.String(), `<html lang="en" class="light">`)
}

func TestStartShutsDownOnCancel(t *testing.T) {
	app := newTestApp(t, func(cfg *folio.SiteConfig) {
		cfg.Addr = "127.0.0.1:0"
		cfg.ShutdownTimeout = 2 * time.Second
	})
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Start(ctx) }()

	require.Eventually(t, func() bool {
		return app.Echo.ListenerAddr() != nil
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestStartReportsListenError(t *testing.T) {
	app := newTestApp(t, func(cfg *folio.SiteConfig) {
		cfg.Addr = "127.0.0.1:-1"
	})

	err := app.Start(context.Background())
	assert.ErrorContains(t, err, "folio: serve")
}

func TestNewRejectsInvalidProfileInStrictMode(t *testing.T) {
	cfg := folio.DefaultConfig()
	cfg.StrictProfile = true
	cfg.Profile.Website = "not a url"

	_, err := folio.New(cfg, views.Default(), folio.WithLogger(zap.NewNop()))
	require.Error(t, err)
	assert.ErrorIs(t, err, folio.ErrInvalidProfile)
}

func TestNewTrustsProfileWithoutStrictMode(t *testing.T) {
	app := newTestApp(t, func(cfg *folio.SiteConfig) {
		cfg.Profile.Website = "not a url"
	})
	assert.Equal(t, "not a url", app.Profile.Website())
}

func TestNewRequiresViews(t *testing.T) {
	_, err := folio.New(folio.DefaultConfig(), folio.ViewFuncs{})
	assert.Error(t, err)
}
