package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// DatabaseConfig describes the leads database. An empty Host disables
// Postgres and the service keeps bookings in memory.
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST"`
	Port            int           `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER"`
	Password        string        `env:"DB_PASSWORD"`
	Name            string        `env:"DB_NAME"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"2m"`
}

// RedisConfig describes the session store. An empty Addr keeps sessions
// in process memory.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"24h"`
}

type AdvisoryConfig struct {
	BaseURL string        `env:"ADVISORY_BASE_URL"`
	APIKey  string        `env:"ADVISORY_API_KEY"`
	Timeout time.Duration `env:"ADVISORY_TIMEOUT" envDefault:"20s"`
}

type RatesConfig struct {
	URL      string        `env:"RATES_URL" envDefault:"https://api.coingecko.com/api/v3/simple/price?ids=tether&vs_currencies=krw"`
	Timeout  time.Duration `env:"RATES_TIMEOUT" envDefault:"10s"`
	Fallback float64       `env:"RATES_FALLBACK_KRW" envDefault:"1450"`
}

// PaymentConfig carries the static payment instruction details shown to
// the customer. Amounts never flow through here.
type PaymentConfig struct {
	BankName      string `env:"PAYMENT_BANK_NAME" envDefault:"Shinhan Bank"`
	BankAccount   string `env:"PAYMENT_BANK_ACCOUNT" envDefault:"110-123-456789"`
	BankHolder    string `env:"PAYMENT_BANK_HOLDER" envDefault:"Lumière Studio"`
	USDTNetwork   string `env:"PAYMENT_USDT_NETWORK" envDefault:"Arbitrum One"`
	USDTAddress   string `env:"PAYMENT_USDT_ADDRESS" envDefault:"0x5c9856c32eaff6659aae211d816b45a8b50de756"`
	PayPalAccount string `env:"PAYMENT_PAYPAL_ACCOUNT" envDefault:"concierge@lumiere-ppf.com"`
}

// AdminConfig configures Telegram notifications about new bookings.
// An empty token disables them.
type AdminConfig struct {
	TelegramToken string  `env:"ADMIN_TELEGRAM_TOKEN"`
	ChatID        int64   `env:"ADMIN_CHAT_ID"`
	ChannelID     int64   `env:"ADMIN_CHANNEL_ID"`
	IDs           []int64 `env:"ADMIN_IDS" envSeparator:","`
}

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Advisory AdvisoryConfig
	Rates    RatesConfig
	Payment  PaymentConfig
	Admin    AdminConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Database.Host != "" {
		if cfg.Database.User == "" || cfg.Database.Name == "" {
			return nil, fmt.Errorf("DB_USER and DB_NAME are required when DB_HOST is set")
		}
	}

	if cfg.Rates.Fallback <= 0 {
		return nil, fmt.Errorf("RATES_FALLBACK_KRW must be positive")
	}

	return &cfg, nil
}
