package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the classification server address baked in at build time:
//
//	go build -ldflags "-X github.com/cienciascontic/textlabx/internal/infrastructure/config.DefaultBaseURL=https://..."
var DefaultBaseURL = "http://127.0.0.1:8000"

const envPrefix = "TEXTLABX"

// Session store kinds
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config is the application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Session    SessionConfig    `mapstructure:"session"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig is the HTTP gateway configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// Addr returns host:port
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ClassifierConfig points at the classification server.
// A zero Timeout disables the client-side deadline.
type ClassifierConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig selects where session model selections are kept
type SessionConfig struct {
	Store string        `mapstructure:"store"`
	TTL   time.Duration `mapstructure:"ttl"`
}

// RedisConfig is the redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns host:port
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig is the logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from textlabx.yaml (if present) and TEXTLABX_* variables
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches
// the working directory, ./config and $HOME/.textlabx.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("textlabx")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.textlabx")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("classifier.base_url", DefaultBaseURL)
	v.SetDefault("classifier.timeout", 30*time.Second)

	v.SetDefault("session.store", SessionStoreMemory)
	v.SetDefault("session.ttl", 24*time.Hour)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate checks the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.Classifier.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("classifier.base_url must be an absolute http(s) URL, got %q", c.Classifier.BaseURL)
	}
	if c.Classifier.Timeout < 0 {
		return fmt.Errorf("classifier.timeout must not be negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("session.store must be %q or %q, got %q", SessionStoreMemory, SessionStoreRedis, c.Session.Store)
	}
	return nil
}
