package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DotEnvPaths lists the locations searched for a .env file, in order.
var DotEnvPaths = []string{".env", "../.env", "../../.env"}

// LoadConfig reads configuration from the optional YAML file at path,
// applies defaults, then overlays CI_* environment variables.
func LoadConfig(path string) (*Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("CI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	processEnvOverrides(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	processDurations(&cfg)
	return &cfg, nil
}

func loadDotEnv() {
	for _, p := range DotEnvPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 5)
	v.SetDefault("server.shutdownTimeout", 30)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "condoindica")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 10)
	v.SetDefault("database.queryTimeout", 30)
	v.SetDefault("database.retryAttempts", 5)
	v.SetDefault("database.retryDelay", 2)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.issuer", "condoindica")
	v.SetDefault("auth.audience", "condoindica-api")

	v.SetDefault("loyalty.maxRetries", 3)
	v.SetDefault("loyalty.statementLimit", 50)

	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "condoindica-cards")

	v.SetDefault("webhook.timeout", 5)
}

// processEnvOverrides binds the flat environment variable names used in
// deployment manifests to their nested config keys.
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"environment":               "CI_ENV",
		"server.host":               "CI_SERVER_HOST",
		"server.port":               "CI_SERVER_PORT",
		"database.host":             "CI_DB_HOST",
		"database.port":             "CI_DB_PORT",
		"database.username":         "CI_DB_USER",
		"database.password":         "CI_DB_PASSWORD",
		"database.database":         "CI_DB_NAME",
		"database.sslMode":          "CI_DB_SSLMODE",
		"logger.level":              "CI_LOG_LEVEL",
		"logger.format":             "CI_LOG_FORMAT",
		"auth.jwtSecret":            "CI_JWT_SECRET",
		"auth.issuer":               "CI_JWT_ISSUER",
		"auth.audience":             "CI_JWT_AUDIENCE",
		"loyalty.maxRetries":        "CI_LOYALTY_MAX_RETRIES",
		"storage.endpoint":          "CI_S3_ENDPOINT",
		"storage.region":            "CI_S3_REGION",
		"storage.bucket":            "CI_S3_BUCKET",
		"storage.accessKey":         "CI_S3_ACCESS_KEY",
		"storage.secretKey":         "CI_S3_SECRET_KEY",
		"webhook.profileUrl":        "CI_WEBHOOK_PROFILE_URL",
		"webhook.recommendationUrl": "CI_WEBHOOK_RECOMMENDATION_URL",
	}

	for key, env := range overrides {
		if val, ok := os.LookupEnv(env); ok && val != "" {
			v.Set(key, val)
		}
	}
}

// processDurations converts the numeric values unmarshalled into duration
// fields from their configured units into proper time.Durations.
func processDurations(cfg *Config) {
	cfg.Server.ReadTimeout *= time.Second
	cfg.Server.WriteTimeout *= time.Second
	cfg.Server.IdleTimeout *= time.Second
	cfg.Server.ReadHeaderTimeout *= time.Second
	cfg.Server.ShutdownTimeout *= time.Second

	cfg.Database.ConnMaxLifetime *= time.Minute
	cfg.Database.ConnMaxIdleTime *= time.Minute
	cfg.Database.QueryTimeout *= time.Second
	cfg.Database.RetryDelay *= time.Second

	cfg.Webhook.Timeout *= time.Second
}
