package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// Типы шлюзов отправки бронирования
const (
	GatewayLog      = "log"
	GatewayWebhook  = "webhook"
	GatewaySendGrid = "sendgrid"
	GatewayPostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Wizard    WizardConfig    `toml:"wizard"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Gateway   GatewayConfig   `toml:"gateway"`
	Webhook   WebhookConfig   `toml:"webhook"`
	SendGrid  SendGridConfig  `toml:"sendgrid"`
	Database  DatabaseConfig  `toml:"database"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type WizardConfig struct {
	Timezone          string `toml:"timezone"`            // IANA, например "America/New_York"
	SessionTTLMinutes int    `toml:"session_ttl_minutes"` // сессия удаляется после простоя
	SweepSchedule     string `toml:"sweep_schedule"`      // cron-выражение очистки, например "@every 1m"
}

type CatalogConfig struct {
	Slots []SlotConfig `toml:"slots"`
}

type SlotConfig struct {
	Label     string `toml:"label"`
	SpotsLeft int    `toml:"spots_left"`
}

type GatewayConfig struct {
	Kind    string `toml:"kind"`    // log | webhook | sendgrid | postgres
	Timeout int    `toml:"timeout"` // секунды на одну отправку
}

type WebhookConfig struct {
	URL    string `toml:"url"`
	Secret string `toml:"secret"`
}

type SendGridConfig struct {
	APIKey      string `toml:"api_key"`
	FromEmail   string `toml:"from_email"`
	FromName    string `toml:"from_name"`
	NotifyEmail string `toml:"notify_email"` // копия менеджеру, опционально
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type RateLimitConfig struct {
	SubmitPerSecond float64 `toml:"submit_per_second"`
	SubmitBurst     int     `toml:"submit_burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// SessionTTL время жизни простаивающей сессии
func (w WizardConfig) SessionTTL() time.Duration {
	return time.Duration(w.SessionTTLMinutes) * time.Minute
}

// Location часовой пояс, в котором считается "сегодня"
func (w WizardConfig) Location() (*time.Location, error) {
	return time.LoadLocation(w.Timezone)
}

// TimeSlots слоты каталога из конфигурации или стандартный набор
func (c CatalogConfig) TimeSlots() []domain.TimeSlot {
	if len(c.Slots) == 0 {
		return domain.DefaultTimeSlots
	}
	out := make([]domain.TimeSlot, len(c.Slots))
	for i, s := range c.Slots {
		out[i] = domain.TimeSlot{Label: s.Label, SpotsLeft: s.SpotsLeft}
	}
	return out
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "booking_wizard"},
		Wizard: WizardConfig{
			Timezone:          "UTC",
			SessionTTLMinutes: 30,
			SweepSchedule:     "@every 1m",
		},
		Gateway:   GatewayConfig{Kind: GatewayLog, Timeout: 5},
		SendGrid:  SendGridConfig{FromName: "Booking"},
		Database:  DatabaseConfig{Port: 5432, SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 5, ConnMaxLifetime: 300},
		RateLimit: RateLimitConfig{SubmitPerSecond: 5, SubmitBurst: 10},
		CORS:      CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// Load читает .env (если есть), затем TOML-файл поверх значений по умолчанию.
// Секреты из переменных окружения имеют приоритет над файлом.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		c.SendGrid.APIKey = v
	}
	if v := os.Getenv("WEBHOOK_SECRET"); v != "" {
		c.Webhook.Secret = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Wizard.SessionTTLMinutes <= 0 {
		return fmt.Errorf("%w: wizard.session_ttl_minutes must be positive", ErrInvalidConfig)
	}
	if _, err := c.Wizard.Location(); err != nil {
		return fmt.Errorf("%w: wizard.timezone: %v", ErrInvalidConfig, err)
	}
	if c.RateLimit.SubmitPerSecond <= 0 || c.RateLimit.SubmitBurst <= 0 {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}

	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("%w: gateway.timeout must be positive", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Gateway.Kind) {
	case GatewayLog:
	case GatewayWebhook:
		if c.Webhook.URL == "" {
			return fmt.Errorf("%w: webhook.url is required for webhook gateway", ErrInvalidConfig)
		}
	case GatewaySendGrid:
		if c.SendGrid.APIKey == "" || c.SendGrid.FromEmail == "" {
			return fmt.Errorf("%w: sendgrid.api_key and sendgrid.from_email are required", ErrInvalidConfig)
		}
	case GatewayPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown gateway.kind %q", ErrInvalidConfig, c.Gateway.Kind)
	}
	c.Gateway.Kind = strings.ToLower(c.Gateway.Kind)

	return nil
}
