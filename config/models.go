package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds application configuration.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	HTTP          HTTPConfig          `mapstructure:"http"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Currency      CurrencyConfig      `mapstructure:"currency"`
	Graph         GraphConfig         `mapstructure:"graph"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if err := c.Postgres.Validate(); err != nil {
		return err
	}
	if len(c.Auth.JWTSecret) < 16 {
		return errors.New("auth.jwt_secret must be at least 16 characters")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if err := c.Currency.Validate(); err != nil {
		return err
	}
	if c.Graph.Enabled && (c.Graph.ClientID == "" || c.Graph.ClientSecret == "" || c.Graph.TenantID == "") {
		return errors.New("graph credentials are required when graph.enabled is set")
	}
	if c.Notifications.Email && (!c.Graph.Enabled || c.Graph.MailSender == "") {
		return errors.New("notifications.email requires graph.enabled and graph.mail_sender")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CORSOrigins    string        `mapstructure:"cors_origins"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// Validate checks the connection settings.
func (p PostgresConfig) Validate() error {
	if p.User == "" || p.Password == "" || p.DBName == "" {
		return errors.New("postgres credentials are required")
	}
	if p.Host == "" {
		return errors.New("postgres.host is required")
	}
	return nil
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// AuthConfig configures session tokens.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	Issuer    string        `mapstructure:"issuer"`
}

// CurrencyConfig configures money handling.
// Rates is a comma separated list of CODE=value pairs where value is the price
// of one unit of CODE expressed in Base.
type CurrencyConfig struct {
	Base    string `mapstructure:"base"`
	Default string `mapstructure:"default"`
	Rates   string `mapstructure:"rates"`
}

// Validate checks the rate list and that the default currency has a rate.
func (c CurrencyConfig) Validate() error {
	rates, err := c.ParseRates()
	if err != nil {
		return err
	}
	def := strings.ToUpper(strings.TrimSpace(c.Default))
	if def == "" {
		return errors.New("currency.default is required")
	}
	if _, ok := rates[def]; !ok && def != strings.ToUpper(strings.TrimSpace(c.Base)) {
		return fmt.Errorf("currency.default %s has no rate in currency.rates", def)
	}
	return nil
}

// ParseRates decodes the Rates list.
func (c CurrencyConfig) ParseRates() (map[string]decimal.Decimal, error) {
	res := make(map[string]decimal.Decimal)
	for _, pair := range strings.Split(c.Rates, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("currency.rates: malformed pair %q", pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("currency.rates: %s: %w", code, err)
		}
		res[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	if c.Base == "" {
		return nil, errors.New("currency.base is required")
	}
	return res, nil
}

// GraphConfig configures the Microsoft Graph integration.
type GraphConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	TenantID     string        `mapstructure:"tenant_id"`
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	BaseURL      string        `mapstructure:"base_url"`
	TokenURL     string        `mapstructure:"token_url"`
	MailSender   string        `mapstructure:"mail_sender"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// TokenEndpoint returns the OAuth token URL, derived from the tenant unless set.
func (g GraphConfig) TokenEndpoint() string {
	if g.TokenURL != "" {
		return g.TokenURL
	}
	return fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", g.TenantID)
}

// NotificationsConfig configures notification delivery.
type NotificationsConfig struct {
	Email bool `mapstructure:"email"`
}
