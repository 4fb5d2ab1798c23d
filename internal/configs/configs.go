package configs

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	KafkaBrokers  string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic    string `env:"KAFKA_TOPIC" envDefault:"order-events"`
	KafkaGroupID  string `env:"KAFKA_GROUP_ID" envDefault:"order-notifier"`
	KafkaDLQTopic string `env:"KAFKA_DLQ_TOPIC" envDefault:"order-events-dlq"`

	CacheWarmLimit int `env:"CACHE_WARM_LIMIT" envDefault:"500"`
	// CacheShards > 1 swaps the dashboard cache to the lock-striped
	// implementation with that many shards.
	CacheShards int `env:"CACHE_SHARDS" envDefault:"1"`

	DatabaseURL     string `env:"DATABASE_URL" envDefault:""`
	PostgresHost    string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"vashudhara"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	RazorpayKeyID     string `env:"RAZORPAY_KEY_ID" envDefault:""`
	RazorpayKeySecret string `env:"RAZORPAY_KEY_SECRET" envDefault:""`
	Currency          string `env:"CURRENCY" envDefault:"INR"`

	SendgridAPIKey string `env:"SENDGRID_API_KEY" envDefault:""`
	MailFrom       string `env:"MAIL_FROM" envDefault:""`

	JWTSecret string `env:"JWT_SECRET" envDefault:""`

	ShopName    string `env:"SHOP_NAME" envDefault:"Vashudhara"`
	ShopAddress string `env:"SHOP_ADDRESS" envDefault:""`
}

func LoadConfig(_ string) (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) PgDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPass,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}

// MailConfigured reports whether outbound email can be attempted at all.
// Notifications are still published when this is false; the notifier skips
// delivery and logs.
func (c Config) MailConfigured() bool {
	return strings.TrimSpace(c.SendgridAPIKey) != "" && strings.TrimSpace(c.MailFrom) != ""
}
