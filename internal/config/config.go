package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	MailQueuePostgres = "postgres"
	MailQueueRabbitMQ = "rabbitmq"
)

type Config struct {
	IsTestMode         bool          `env:"TEST_MODE" envDefault:"false"`
	Port               int           `env:"PORT" envDefault:"9090"`
	PostgresqlURL      string        `env:"POSTGRESQL_URL,notEmpty"`
	RedisURL           string        `env:"REDIS_URL,notEmpty"`
	RabbitmqURL        string        `env:"RABBITMQ_URL"`
	MailQueueBackend   string        `env:"MAIL_QUEUE_BACKEND" envDefault:"postgres"`
	RabbitmqEmailQueue string        `env:"RABBITMQ_EMAIL_QUEUE" envDefault:"email"`
	ForumName          string        `env:"FORUM_NAME" envDefault:"Podium"`
	BaseURL            string        `env:"BASE_URL,notEmpty"`
	AllowedOrigins     []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	TemplateCacheTTL   time.Duration `env:"TEMPLATE_CACHE_TTL" envDefault:"1m"`
	RateLimitPerHour   uint16        `env:"RATE_LIMIT_PER_HOUR" envDefault:"3"`
	TokenLength        int           `env:"TOKEN_LENGTH" envDefault:"32"`
	MigrationsPath     string        `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.MailQueueBackend != MailQueuePostgres && c.MailQueueBackend != MailQueueRabbitMQ {
		return fmt.Errorf("invalid MAIL_QUEUE_BACKEND value: %q", c.MailQueueBackend)
	}
	if c.MailQueueBackend == MailQueueRabbitMQ && c.RabbitmqURL == "" {
		return fmt.Errorf("RABBITMQ_URL must be set when MAIL_QUEUE_BACKEND is %q", MailQueueRabbitMQ)
	}
	if _, err := c.ParseBaseURL(); err != nil {
		return err
	}
	if c.TokenLength <= 0 {
		return fmt.Errorf("TOKEN_LENGTH must be positive, got %d", c.TokenLength)
	}
	if c.RateLimitPerHour == 0 {
		return fmt.Errorf("RATE_LIMIT_PER_HOUR must be positive")
	}
	return nil
}

func (c *Config) ParseBaseURL() (url.URL, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return url.URL{}, fmt.Errorf("invalid BASE_URL value: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return url.URL{}, fmt.Errorf("BASE_URL must be an absolute URL, got %q", c.BaseURL)
	}
	return *u, nil
}
