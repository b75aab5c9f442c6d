package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StoreBackendPostgres  = "postgres"
	StoreBackendPostgREST = "postgrest"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Store             Store             `mapstructure:",squash"`
	PostgREST         PostgREST         `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Cors              Cors              `mapstructure:",squash"`
	Currency          Currency          `mapstructure:",squash"`
	Dashboard         Dashboard         `mapstructure:",squash"`
	CardSummaryReport CardSummaryReport `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	MigrateOnStart bool   `mapstructure:"migrate_on_start"`
}

// Store selects which remote tabular store backs the dashboard reads.
type Store struct {
	Backend string `mapstructure:"store_backend"`
}

// PostgREST is the hosted Postgres-as-a-service REST endpoint.
type PostgREST struct {
	URL     string        `mapstructure:"postgrest_url"`
	APIKey  string        `mapstructure:"postgrest_api_key"`
	Timeout time.Duration `mapstructure:"postgrest_timeout"`
}

// Auth enables bearer token validation when Secret is not empty.
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Currency struct {
	Locale string `mapstructure:"currency_locale"`
	Symbol string `mapstructure:"currency_symbol"`
}

type Dashboard struct {
	RevenueFetchDelay           time.Duration `mapstructure:"revenue_fetch_delay"`
	CustomerStatsMaxConcurrency int           `mapstructure:"customer_stats_max_concurrency"`
}

type CardSummaryReport struct {
	CronSchedule string        `mapstructure:"card_summary_report_cron"`
	Timeout      time.Duration `mapstructure:"card_summary_report_timeout"`
	Enabled      bool          `mapstructure:"card_summary_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("MIGRATE_ON_START", false)

	viper.SetDefault("STORE_BACKEND", StoreBackendPostgres)

	viper.SetDefault("POSTGREST_URL", "http://localhost:54321")
	viper.SetDefault("POSTGREST_API_KEY", "")
	viper.SetDefault("POSTGREST_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("CURRENCY_LOCALE", "en-US")
	viper.SetDefault("CURRENCY_SYMBOL", "$")

	viper.SetDefault("REVENUE_FETCH_DELAY", "0s")
	viper.SetDefault("CUSTOMER_STATS_MAX_CONCURRENCY", 8)

	viper.SetDefault("CARD_SUMMARY_REPORT_CRON", "0 * * * *") // every hour
	viper.SetDefault("CARD_SUMMARY_REPORT_TIMEOUT", "30s")
	viper.SetDefault("CARD_SUMMARY_REPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreBackendPostgres:
	case StoreBackendPostgREST:
		if c.PostgREST.URL == "" {
			return fmt.Errorf("config: POSTGREST_URL is required when STORE_BACKEND=%s", StoreBackendPostgREST)
		}
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.Store.Backend)
	}

	if c.Dashboard.CustomerStatsMaxConcurrency < 1 {
		return fmt.Errorf("config: CUSTOMER_STATS_MAX_CONCURRENCY must be at least 1")
	}

	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not get the current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Trying to load .env from: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("No .env file found in any known location")
}
