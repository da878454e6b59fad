package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Persistence
	Mongo MongoConfig

	// Auth
	JWT JWTConfig

	// Outbound mail
	SMTP SMTPConfig

	// Hardening
	RateLimit RateLimitConfig

	// Image uploads
	Upload UploadConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port        int
	Mode        string
	BodyLimitKB int
	// PublicURL is used to build links sent by email (password reset).
	// Empty means the host of the incoming request.
	PublicURL string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MongoConfig struct {
	URI      string // may contain the <PASSWORD> placeholder
	Password string
	Database string
	Timeout  time.Duration
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type UploadConfig struct {
	Dir   string
	MaxMB int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.BodyLimitKB = viper.GetInt("http_server.body_limit_kb")
	cfg.HTTPServer.PublicURL = viper.GetString("http_server.public_url")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Mongo
	cfg.Mongo.URI = viper.GetString("mongo.uri")
	cfg.Mongo.Password = expandEnvVar(viper.GetString("mongo.password"))
	cfg.Mongo.Database = viper.GetString("mongo.database")
	cfg.Mongo.Timeout = viper.GetDuration("mongo.timeout")
	if dbURI := viper.GetString("db_uri"); dbURI != "" {
		cfg.Mongo.URI = dbURI
	}
	if dbPassword := viper.GetString("db_password"); dbPassword != "" {
		cfg.Mongo.Password = dbPassword
	}

	// JWT
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.ExpiresIn = viper.GetDuration("jwt.expires_in")

	// SMTP
	cfg.SMTP.Host = viper.GetString("smtp.host")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.Username = viper.GetString("smtp.username")
	cfg.SMTP.Password = expandEnvVar(viper.GetString("smtp.password"))
	cfg.SMTP.From = viper.GetString("smtp.from")

	// Rate limit
	cfg.RateLimit.Max = viper.GetInt("rate_limit.max")
	cfg.RateLimit.Window = viper.GetDuration("rate_limit.window")

	// Uploads
	cfg.Upload.Dir = viper.GetString("upload.dir")
	cfg.Upload.MaxMB = viper.GetInt("upload.max_mb")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.body_limit_kb", 15)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "natours")
	viper.SetDefault("mongo.timeout", "10s")

	viper.SetDefault("jwt.expires_in", "2160h") // 90 days

	viper.SetDefault("smtp.port", 2525)
	viper.SetDefault("smtp.from", "Natours <hello@natours.io>")

	viper.SetDefault("rate_limit.max", 100)
	viper.SetDefault("rate_limit.window", "15m")

	viper.SetDefault("upload.dir", "public/img")
	viper.SetDefault("upload.max_mb", 10)
}

func validate(cfg *Config) error {
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required - set it in config.yaml or JWT_SECRET")
	}
	if len(cfg.JWT.Secret) < 32 {
		return fmt.Errorf("jwt.secret must be at least 32 characters")
	}
	if cfg.JWT.ExpiresIn <= 0 {
		return fmt.Errorf("jwt.expires_in must be positive")
	}
	if cfg.Mongo.URI == "" || cfg.Mongo.Database == "" {
		return fmt.Errorf("mongo.uri and mongo.database are required")
	}
	if cfg.RateLimit.Max <= 0 || cfg.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.max and rate_limit.window must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		return os.Getenv(envVar)
	}

	return value
}
