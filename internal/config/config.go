package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DBDriver string `envconfig:"DB_DRIVER" default:"sqlite"` // sqlite|postgres
	DBUrl    string `envconfig:"DATABASE_URL" default:"./data/chair.db"`

	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`

	JWTSecret            string `envconfig:"JWT_SECRET" default:"changeme"`
	OperatorPasswordHash string `envconfig:"OPERATOR_PASSWORD_HASH"` // bcrypt; vazio desliga a autenticação

	ShopTimezone string `envconfig:"SHOP_TIMEZONE" default:"America/Sao_Paulo"`

	// CORSAllowedOrigins vazio aceita qualquer origem.
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	RemindersEnabled     bool          `envconfig:"REMINDERS_ENABLED" default:"false"`
	ReminderPollInterval time.Duration `envconfig:"REMINDER_POLL_INTERVAL" default:"30s"`

	BusinessOpenHour   int  `envconfig:"BUSINESS_OPEN_HOUR" default:"8"`
	BusinessCloseHour  int  `envconfig:"BUSINESS_CLOSE_HOUR" default:"21"`
	DefaultDurationMin int  `envconfig:"DEFAULT_DURATION_MIN" default:"60"`
	EnforcePastCheck   bool `envconfig:"ENFORCE_PAST_CHECK" default:"true"`
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.BusinessOpenHour < 0 || c.BusinessCloseHour > 23 || c.BusinessOpenHour > c.BusinessCloseHour {
		return fmt.Errorf("config: invalid business window %d..%d", c.BusinessOpenHour, c.BusinessCloseHour)
	}
	if c.DefaultDurationMin <= 0 {
		return fmt.Errorf("config: DEFAULT_DURATION_MIN must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) AuthEnabled() bool {
	return c.OperatorPasswordHash != ""
}
