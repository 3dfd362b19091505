package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP          HTTP
	Logger        Logger
	Postgres      Postgres
	Kafka         Kafka
	Auth          Auth
	Jobs          Jobs
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:""` // used for shareable referral links
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS"`
	NotificationTopic string   `env:"KAFKA_NOTIFICATION_TOPIC" envDefault:"send-notifications"`
}

type Auth struct {
	JWTPublicKey string `env:"AUTH_JWT_PUBLIC_KEY"` // base64 of PEM encoded RSA public key
}

type Jobs struct {
	OverdueEnabled  bool          `env:"JOBS_OVERDUE_ENABLED" envDefault:"true"`
	OverdueInterval time.Duration `env:"JOBS_OVERDUE_INTERVAL" envDefault:"1h"`
}

// Notifier is the configuration of the notification consumer process.
type Notifier struct {
	Logger Logger
	Kafka  NotifierKafka
	Mailer Mailer
}

type NotifierKafka struct {
	Brokers           []string `env:"KAFKA_BROKERS"`
	ConsumerID        string   `env:"KAFKA_CONSUMER_ID" envDefault:"clinic-notifier"`
	NotificationTopic string   `env:"KAFKA_NOTIFICATION_TOPIC" envDefault:"send-notifications"`
}

type Mailer struct {
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Clinic"`
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
}

func New(envPath string) (Config, error) {
	return parse[Config](envPath)
}

func NewNotifier(envPath string) (Notifier, error) {
	return parse[Notifier](envPath)
}

func parse[T any](envPath string) (T, error) {
	var zero T

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return zero, err
	}

	c, err := env.ParseAsWithOptions[T](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return zero, err
	}

	return c, nil
}
