package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	// ReleaseMode выставляется по GIN_MODE=release.
	ReleaseMode bool
	GinMode     string `env:"GIN_MODE"`

	JWTSecret   string   `env:"JWT_SECRET"`
	FrontendURL []string `env:"FRONTEND_URL" envSeparator:","`
	BcryptCost  int      `env:"BCRYPT_COST"  envDefault:"10"`

	GatewayBaseURL     string        `env:"GATEWAY_BASE_URL"     envDefault:"https://api.mercadopago.com"`
	GatewayAccessToken string        `env:"GATEWAY_ACCESS_TOKEN"`
	GatewayPublicKey   string        `env:"GATEWAY_PUBLIC_KEY"`
	GatewayTimeout     time.Duration `env:"GATEWAY_TIMEOUT"      envDefault:"30s"`
	// GatewayFailOpen при недоступности шлюза явное подтверждение оплаты проходит без перепроверки.
	GatewayFailOpen bool `env:"GATEWAY_FAIL_OPEN" envDefault:"true"`

	WebhookSecret             string `env:"WEBHOOK_SECRET"`
	WebhookInsecureSkipVerify bool   `env:"WEBHOOK_INSECURE_SKIP_VERIFY"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`

	AdminName     string `env:"ADMIN_NAME"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	PollerWorkers      uint          `env:"POLLER_WORKERS"       envDefault:"5"`
	PollerLimit        uint          `env:"POLLER_LIMIT"         envDefault:"50"`
	PollerInterval     time.Duration `env:"POLLER_INTERVAL"      envDefault:"30s"`
	PollerDisabled     bool          `env:"POLLER_DISABLED"`
	WebhookDedupTTL    time.Duration `env:"WEBHOOK_DEDUP_TTL"    envDefault:"24h"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"10s"`
	ReadHeaderTimeout  time.Duration `env:"READ_HEADER_TIMEOUT"  envDefault:"5s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT"        envDefault:"60s"`
	DatabaseMaxConns   int32         `env:"DATABASE_MAX_CONNS"   envDefault:"10"`
	DatabaseConnectTTL time.Duration `env:"DATABASE_CONNECT_TTL" envDefault:"5s"`
}

var (
	ErrEmptyDSN              = errors.New("database DSN is not set")
	ErrEmptyJWTSecret        = errors.New("JWT_SECRET is not set")
	ErrWebhookSecretRequired = errors.New(
		"WEBHOOK_SECRET is required in release mode, set WEBHOOK_INSECURE_SKIP_VERIFY=true to disable verification",
	)
)

// LoadConfig читает конфигурацию из окружения (с подгрузкой .env, если файл есть) и флагов args.
// Значения окружения приоритетнее флагов.
func LoadConfig(args []string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if err := loadFlags(&flagsConfig, args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	if c.DatabaseDSN == "" {
		return ErrEmptyDSN
	}
	if c.JWTSecret == "" {
		return ErrEmptyJWTSecret
	}
	if c.ReleaseMode && c.WebhookSecret == "" && !c.WebhookInsecureSkipVerify {
		return ErrWebhookSecretRequired
	}
	return nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("cit", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret key")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig строковые параметры берутся из окружения, а при их отсутствии из флагов. Остальные параметры
// задаются только через окружение.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.JWTSecret = defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret)
	conf.ReleaseMode = envConfig.GinMode == "release"
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
