package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, secrets)
// - default: Values common across all environments (timezone, timeouts, TTLs)
// -----------------------------------------------------------------------------

type Config struct {
	Server         ServerConfig
	ReservationAPI ReservationAPIConfig
	CORS           CORSConfig
	Log            LogConfig
	Session        SessionConfig
	Cookie         CookieConfig
	Widget         WidgetConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// ReservationAPIConfig points at the single remote reservation endpoint.
// A zero Timeout leaves requests unbounded.
type ReservationAPIConfig struct {
	BaseURL string        `envconfig:"RESERVATION_API_URL" required:"true"`
	Timeout time.Duration `envconfig:"RESERVATION_API_TIMEOUT" default:"0s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type SessionConfig struct {
	Secret        string        `envconfig:"SESSION_SECRET" required:"true"`
	Duration      time.Duration `envconfig:"SESSION_DURATION" default:"24h"`
	IdleTTL       time.Duration `envconfig:"SESSION_IDLE_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type WidgetConfig struct {
	CurrencySymbol string `envconfig:"WIDGET_CURRENCY_SYMBOL" default:"₹"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		ReservationAPI: ReservationAPIConfig{
			BaseURL: "http://127.0.0.1:18080/exec",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Session: SessionConfig{
			Secret:        "test-session-secret",
			Duration:      time.Hour,
			IdleTTL:       30 * time.Minute,
			SweepInterval: time.Minute,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Widget: WidgetConfig{
			CurrencySymbol: "₹",
		},
	}
}
