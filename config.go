package folio

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Profile ProfileConfig `yaml:"profile"`

	Addr        string `yaml:"addr"`        // Listen address (default ":3000")
	Description string `yaml:"description"` // Meta description (default: first bio line)

	StrictProfile bool `yaml:"strict_profile"` // Validate the profile at startup

	SessionSecret string `yaml:"session_secret"` // Theme session secret (default: random per process)
	CookieSecure  bool   `yaml:"cookie_secure"`  // Set true for HTTPS

	StaticDir string `yaml:"static_dir"` // User static assets (default "public")

	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error (default "info")
	LogFormat string `yaml:"log_format"` // json or console (default "json")

	ProfileRateLimit int           `yaml:"profile_rate_limit"` // /profile.json requests per minute per IP (default 60)
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`   // Graceful shutdown budget (default 10s)
}

// DefaultConfig returns a SiteConfig carrying the built-in profile.
func DefaultConfig() SiteConfig {
	cfg := SiteConfig{Profile: DefaultProfileConfig()}
	cfg.setDefaults()
	return cfg
}

func (c *SiteConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.ProfileRateLimit <= 0 {
		c.ProfileRateLimit = 60
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// LoadConfig reads the YAML file at path over the defaults and applies
// FOLIO_* environment overrides. An empty path skips the file. Keys omitted
// from the file keep their defaults; keys set to "" clear them.
func LoadConfig(path string) (SiteConfig, error) {
	cfg := SiteConfig{Profile: DefaultProfileConfig()}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SiteConfig{}, fmt.Errorf("%w: parse %s: %w", ErrConfig, path, err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return SiteConfig{}, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) applyEnvOverrides() error {
	strs := map[string]*string{
		"FOLIO_WEBSITE":        &c.Profile.Website,
		"FOLIO_FIRST_NAME":     &c.Profile.FirstName,
		"FOLIO_LAST_NAME":      &c.Profile.LastName,
		"FOLIO_AVATAR":         &c.Profile.Avatar,
		"FOLIO_BIO":            &c.Profile.Bio,
		"FOLIO_GITHUB":         &c.Profile.GitHub,
		"FOLIO_TWITTER":        &c.Profile.Twitter,
		"FOLIO_LINKEDIN":       &c.Profile.LinkedIn,
		"FOLIO_INSTAGRAM":      &c.Profile.Instagram,
		"FOLIO_ADDR":           &c.Addr,
		"FOLIO_DESCRIPTION":    &c.Description,
		"FOLIO_SESSION_SECRET": &c.SessionSecret,
		"FOLIO_STATIC_DIR":     &c.StaticDir,
		"FOLIO_LOG_LEVEL":      &c.LogLevel,
		"FOLIO_LOG_FORMAT":     &c.LogFormat,
	}
	for key, dst := range strs {
		// LookupEnv so an exported empty value clears a handle.
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"FOLIO_STRICT_PROFILE": &c.StrictProfile,
		"FOLIO_COOKIE_SECURE":  &c.CookieSecure,
	}
	for key, dst := range bools {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrConfig, key, err)
		}
		*dst = b
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger replaces the logger built from the config.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}

// EnvOr returns the value of the environment variable key, or fallback if
// key is unset. Like the FOLIO_* overrides in LoadConfig, an exported empty
// value counts as set and is returned unchanged.
func EnvOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
