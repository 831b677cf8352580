// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	APIName         string   `env:"AG_API_APP_NAME" envDefault:"Aethelgard Community API"`
	APIVersion      string   `env:"AG_API_APP_VERSION" envDefault:"1.0.0"`
	ServerPort      string   `env:"AG_API_SERVER_PORT" envDefault:"4000"`
	ServerEnv       string   `env:"AG_API_SERVER_ENV" envDefault:"development"`
	ServerLogLevel  string   `env:"AG_API_SERVER_LOG_LEVEL" envDefault:"info"`
	CharactersDsn   string   `env:"AG_API_CHARACTERS_DSN,required"`
	AuthDbDsn       string   `env:"AG_API_AUTH_DB_DSN,required"`
	MysqlLogLevel   string   `env:"AG_API_MYSQL_LOG_LEVEL" envDefault:"warn"`
	RedisHost       string   `env:"AG_API_REDIS_HOST" envDefault:"localhost"`
	RedisPort       string   `env:"AG_API_REDIS_PORT" envDefault:"6379"`
	RedisPassword   string   `env:"AG_API_REDIS_PASSWORD" envDefault:""`
	JWTSecret       string   `env:"AG_API_JWT_SECRET,required"`
	AdminEmails     []string `env:"AG_API_ADMIN_EMAILS" envSeparator:"," envDefault:"admin@aethelgard.pt"`
	CORSOrigin      string   `env:"AG_API_CORS_ORIGIN" envDefault:"*"`
	DataDir         string   `env:"AG_API_DATA_DIR" envDefault:"data"`
	UploadsDir      string   `env:"AG_API_UPLOADS_DIR" envDefault:"uploads"`
	LogDir          string   `env:"AG_API_LOG_DIR" envDefault:"logs"`
	OpenAIAPIKey    string   `env:"AG_API_OPENAI_API_KEY" envDefault:""`
	OpenAIModel     string   `env:"AG_API_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	APIRateLimit    int      `env:"AG_API_RATE_LIMIT" envDefault:"100"`
	LoginRateLimit  int      `env:"AG_API_LOGIN_RATE_LIMIT" envDefault:"5"`
	SignupRateLimit int      `env:"AG_API_SIGNUP_RATE_LIMIT" envDefault:"3"`
}

var (
	SingleLine string = "--------------------------------------------------"
)

var (
	instance *Config
	once     sync.Once
	loadErr  error
)

// Get returns the application configuration
func Get() (*Config, error) {
	once.Do(func() {
		instance, loadErr = loadConfig()
	})
	return instance, loadErr
}

// loadConfig loads configuration from a .env file, if present, and the environment
func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	for i, e := range cfg.AdminEmails {
		cfg.AdminEmails[i] = strings.ToLower(strings.TrimSpace(e))
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.ServerEnv == "development"
}

// RedisAddr returns the host:port address of the Redis server
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// String returns the configuration as a string
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n--------------------------------------\n")
	sb.WriteString("Configuration:\n")
	sb.WriteString("--------------------------------------\n")

	entries := []struct {
		name  string
		value string
	}{
		{"APIName", c.APIName},
		{"APIVersion", c.APIVersion},
		{"ServerPort", c.ServerPort},
		{"ServerEnv", c.ServerEnv},
		{"ServerLogLevel", c.ServerLogLevel},
		{"CharactersDsn", c.CharactersDsn},
		{"AuthDbDsn", c.AuthDbDsn},
		{"MysqlLogLevel", c.MysqlLogLevel},
		{"RedisHost", c.RedisHost},
		{"RedisPort", c.RedisPort},
		{"RedisPassword", c.RedisPassword},
		{"JWTSecret", c.JWTSecret},
		{"AdminEmails", strings.Join(c.AdminEmails, ",")},
		{"CORSOrigin", c.CORSOrigin},
		{"DataDir", c.DataDir},
		{"UploadsDir", c.UploadsDir},
		{"LogDir", c.LogDir},
		{"OpenAIAPIKey", c.OpenAIAPIKey},
		{"OpenAIModel", c.OpenAIModel},
	}

	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s:  %s\n", e.name, maskSensitiveField(e.name, e.value)))
	}

	sb.WriteString("--------------------------------------\n")

	return sb.String()
}

func maskSensitiveField(fieldName, value string) string {
	sensitiveFields := []string{"token", "dsn", "secret", "password", "key"}

	fieldNameLower := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(fieldNameLower, sensitive) {
			return maskValue(value)
		}
	}

	return value
}

func maskValue(value string) string {
	if len(value) <= 3 {
		return strings.Repeat("*", 7)
	}
	return value[:3] + strings.Repeat("*", 7)
}
