// Package folio serves a personal landing page from a single immutable
// SiteProfile: name, bio, avatar and social handles.
//
// Users provide their own templ components via the ViewFuncs struct, and
// folio handles routing, middleware, and the profile JSON endpoint.
package folio

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ViewFuncs holds the templ components the framework calls when rendering
// pages. Every component receives the profile by value.
type ViewFuncs struct {
	Home        func(p SiteProfile, meta PageMeta, theme, csrfToken string) templ.Component
	NotFound    func(p SiteProfile) templ.Component
	ServerError func(p SiteProfile) templ.Component
}

// App wires the profile, views, middleware and routes together.
type App struct {
	Config  SiteConfig
	Profile SiteProfile
	Echo    *echo.Echo
	Log     *zap.Logger
	Views   ViewFuncs

	profileLimiter *RequestLimiter
	customRoutes   []func(*App)
	staticDir      string
	setupOnce      sync.Once
}

// New builds the profile from cfg and returns an App ready to Start.
// With cfg.StrictProfile set, an invalid profile fails here.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) (*App, error) {
	cfg.setDefaults()

	if views.Home == nil || views.NotFound == nil || views.ServerError == nil {
		return nil, errors.New("folio: Home, NotFound and ServerError views are required")
	}

	profile := NewProfile(cfg.Profile)
	if cfg.StrictProfile {
		if err := profile.Validate(); err != nil {
			return nil, err
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config:    cfg,
		Profile:   profile,
		Echo:      e,
		Views:     views,
		staticDir: cfg.StaticDir,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.Log == nil {
		log, err := NewLogger(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		a.Log = log
	}

	if a.Config.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("folio: generate session secret: %w", err)
		}
		a.Config.SessionSecret = secret
		a.Log.Warn("no session_secret configured; theme preferences reset on restart")
	}

	a.profileLimiter = NewRequestLimiter(cfg.ProfileRateLimit, time.Minute)
	return a, nil
}

func (a *App) setup() {
	a.setupOnce.Do(func() {
		a.setupMiddleware()
		a.setupRoutes()
		for _, fn := range a.customRoutes {
			fn(a)
		}
	})
}

// ServeHTTP lets the App be mounted or exercised with httptest.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.setup()
	a.Echo.ServeHTTP(w, r)
}

// Start serves until ctx is cancelled, then shuts down gracefully within
// Config.ShutdownTimeout.
func (a *App) Start(ctx context.Context) error {
	a.setup()

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("server started",
			zap.String("addr", a.Config.Addr),
			zap.String("website", a.Profile.Website()),
		)
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("folio: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Log.Info("shutting down", zap.Duration("timeout", a.Config.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("folio: shutdown: %w", err)
	}
	// Wait for the serve goroutine so nothing outlives Start.
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("folio: serve: %w", err)
		}
	case <-shutdownCtx.Done():
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/style.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/favicon.svg", echo.WrapHandler(embeddedHandler))

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	e.GET("/", a.handleHome)
	e.GET("/profile.json", a.handleProfileJSON)
	e.POST("/theme/", a.handleTheme)
}

// Close releases background resources and flushes the logger.
func (a *App) Close() error {
	if a.profileLimiter != nil {
		a.profileLimiter.Stop()
	}
	if a.Log != nil {
		_ = a.Log.Sync()
	}
	return nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
