package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Pricing  PricingConfig  `toml:"pricing"`
	Session  SessionConfig  `toml:"session"`
	Auth     AuthConfig     `toml:"auth"`
	Smoobu   SmoobuConfig   `toml:"smoobu"`
	Stripe   StripeConfig   `toml:"stripe"`
	Promo    PromoConfig    `toml:"promo"`
	Mail     MailConfig     `toml:"mail"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	PublicURL       string `toml:"public_url"` // база для ссылок в письмах (link token)
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr          string `toml:"addr"`
	Password      string `toml:"password"`
	DB            int    `toml:"db"`
	EventsChannel string `toml:"events_channel"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type PricingConfig struct {
	NightlyRate              float64 `toml:"nightly_rate"`
	CleaningFee              float64 `toml:"cleaning_fee"`
	TouristTaxPerNightGuest  float64 `toml:"tourist_tax_per_night_per_guest"`
	WeeklyDiscountPercent    float64 `toml:"discount_7"`
	FortnightDiscountPercent float64 `toml:"discount_14"`
	MonthlyDiscountPercent   float64 `toml:"discount_28"`
	MaxGuests                int     `toml:"max_guests"`
	Currency                 string  `toml:"currency"`
}

// ToDomain конвертирует секцию в доменную конфигурацию цен
func (p PricingConfig) ToDomain() domain.PricingConfig {
	return domain.PricingConfig{
		NightlyRate:              p.NightlyRate,
		CleaningFee:              p.CleaningFee,
		TouristTaxPerNightGuest:  p.TouristTaxPerNightGuest,
		WeeklyDiscountPercent:    p.WeeklyDiscountPercent,
		FortnightDiscountPercent: p.FortnightDiscountPercent,
		MonthlyDiscountPercent:   p.MonthlyDiscountPercent,
		MaxGuests:                p.MaxGuests,
	}
}

type SessionConfig struct {
	TimeoutSeconds int    `toml:"timeout_seconds"`
	WarningSeconds int    `toml:"warning_seconds"`
	CookieName     string `toml:"cookie_name"`
	CookieSecure   bool   `toml:"cookie_secure"`
}

type AuthConfig struct {
	JWTSecret         string `toml:"jwt_secret"`
	AdminPasswordHash string `toml:"admin_password_hash"` // bcrypt
	TokenTTLHours     int    `toml:"token_ttl_hours"`
}

type SmoobuConfig struct {
	URL         string `toml:"url"`
	APIKey      string `toml:"api_key"`
	ApartmentID int64  `toml:"apartment_id"`
	ChannelID   int64  `toml:"channel_id"`
	Timeout     int    `toml:"timeout"`
}

type StripeConfig struct {
	URL        string `toml:"url"`
	SecretKey  string `toml:"secret_key"`
	SuccessURL string `toml:"success_url"`
	Timeout    int    `toml:"timeout"`
}

type PromoConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type MailConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	Username      string `toml:"username"`
	Password      string `toml:"password"`
	FromName      string `toml:"from_name"`
	OperatorEmail string `toml:"operator_email"`
}

// Load читает конфигурацию из TOML файла
// Секреты переопределяются переменными окружения (в т.ч. из .env, если он есть)
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	// .env опционален - в production переменные приходят из окружения
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Pricing.NightlyRate <= 0 {
		return fmt.Errorf("%w: pricing.nightly_rate must be positive", ErrInvalidConfig)
	}
	if c.Pricing.CleaningFee < 0 || c.Pricing.TouristTaxPerNightGuest < 0 {
		return fmt.Errorf("%w: pricing fees must not be negative", ErrInvalidConfig)
	}
	for _, p := range []float64{c.Pricing.WeeklyDiscountPercent, c.Pricing.FortnightDiscountPercent, c.Pricing.MonthlyDiscountPercent} {
		if p < 0 || p > 100 {
			return fmt.Errorf("%w: pricing discounts must be in 0..100", ErrInvalidConfig)
		}
	}
	if c.Pricing.MaxGuests <= 0 {
		return fmt.Errorf("%w: pricing.max_guests must be positive", ErrInvalidConfig)
	}
	if c.Session.WarningSeconds >= c.Session.TimeoutSeconds {
		return fmt.Errorf("%w: session.warning_seconds must be less than timeout_seconds", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:          "localhost:6379",
			EventsChannel: "reservations.events",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "rental_service",
		},
		Pricing: PricingConfig{
			NightlyRate:              domain.DefaultNightlyRate,
			CleaningFee:              domain.DefaultCleaningFee,
			TouristTaxPerNightGuest:  domain.DefaultTouristTaxPerNightGuest,
			WeeklyDiscountPercent:    domain.DefaultWeeklyDiscountPercent,
			FortnightDiscountPercent: domain.DefaultFortnightDiscountPercent,
			MonthlyDiscountPercent:   domain.DefaultMonthlyDiscountPercent,
			MaxGuests:                domain.DefaultMaxGuests,
			Currency:                 "eur",
		},
		Session: SessionConfig{
			TimeoutSeconds: int(domain.DefaultSessionTimeout.Seconds()),
			WarningSeconds: int(domain.DefaultSessionWarning.Seconds()),
			CookieName:     "admin_session",
		},
		Auth: AuthConfig{
			TokenTTLHours: 12,
		},
		Smoobu: SmoobuConfig{
			URL:     "https://login.smoobu.com",
			Timeout: 10,
		},
		Stripe: StripeConfig{
			URL:     "https://api.stripe.com",
			Timeout: 10,
		},
		Promo: PromoConfig{
			Timeout: 5,
		},
		Mail: MailConfig{
			Port: 587,
		},
	}
}

// applyEnv переопределяет секреты из переменных окружения
func applyEnv(cfg *Config) {
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Auth.JWTSecret, "AUTH_JWT_SECRET")
	setString(&cfg.Auth.AdminPasswordHash, "ADMIN_PASSWORD_HASH")
	setString(&cfg.Smoobu.APIKey, "SMOOBU_API_KEY")
	setString(&cfg.Stripe.SecretKey, "STRIPE_SECRET_KEY")
	setString(&cfg.Mail.Password, "SMTP_PASSWORD")

	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

func setString(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}
