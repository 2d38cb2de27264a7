package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Ollama   OllamaConfig   `mapstructure:"ollama"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Discord  DiscordConfig  `mapstructure:"discord"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Log      LogConfig      `mapstructure:"log"`
}

type AppConfig struct {
	// Namespace prefixes every local storage key
	Namespace string `mapstructure:"namespace"`
	// Timezone decides calendar day boundaries, an IANA name
	Timezone string `mapstructure:"timezone"`
	// HistoryDays is the trailing window returned by the history endpoint
	HistoryDays int `mapstructure:"history_days"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DatabaseConfig selects the remote store. An empty driver runs guest-only
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "postgres", "sqlite3" or ""
	DSN    string `mapstructure:"dsn"`
}

type AuthConfig struct {
	SessionSecret string `mapstructure:"session_secret"`
	SecureCookies bool   `mapstructure:"secure_cookies"`
}

// LLM provider selection
type LLMConfig struct {
	Provider string `mapstructure:"provider"` // "ollama", "openai" or "none"
}

type OllamaConfig struct {
	Host    string `mapstructure:"host"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

type OpenAIConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	BaseURL   string `mapstructure:"base_url"`
	MaxTokens int    `mapstructure:"max_tokens"`
	Timeout   int    `mapstructure:"timeout"` // seconds
}

// DiscordConfig enables the bot when Token is set
type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	ApplicationID string `mapstructure:"application_id"`
	GuildID       string `mapstructure:"guild_id"`
}

type ReminderConfig struct {
	// Schedule is a robfig/cron spec for the reminder tick
	Schedule string `mapstructure:"schedule"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" || strings.EqualFold(c.App.Timezone, "local") {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid app.timezone %q: %w", c.App.Timezone, err)
	}
	return loc, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.namespace", "hydroflow")
	v.SetDefault("app.timezone", "Local")
	v.SetDefault("app.history_days", 7)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("database.driver", "")
	v.SetDefault("database.dsn", "")

	v.SetDefault("auth.session_secret", "")
	v.SetDefault("auth.secure_cookies", false)

	v.SetDefault("llm.provider", "none")

	v.SetDefault("ollama.host", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.2")
	v.SetDefault("ollama.timeout", 30)

	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 300)
	v.SetDefault("openai.timeout", 30)

	v.SetDefault("discord.token", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("discord.guild_id", "")

	v.SetDefault("reminder.schedule", "@every 1m")

	v.SetDefault("log.level", "info")
}

// Load reads config.yaml from . or ./config, then HYDROFLOW_* environment
// variables. A .env file is loaded into the environment first when present
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Unprefixed names kept for compatibility with common deployments
	_ = v.BindEnv("openai.api_key", "HYDROFLOW_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("discord.token", "HYDROFLOW_DISCORD_TOKEN", "DISCORD_TOKEN")

	v.SetEnvPrefix("HYDROFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
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

// Validate checks values the server cannot start without
func (c *Config) Validate() error {
	if c.App.Namespace == "" {
		return errors.New("app.namespace cannot be empty")
	}

	if c.App.HistoryDays <= 0 {
		return errors.New("app.history_days must be positive")
	}

	switch c.Database.Driver {
	case "", "postgres", "sqlite3":
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}

	if c.Database.Driver != "" && c.Database.DSN == "" {
		return errors.New("database.dsn is required when database.driver is set")
	}

	switch c.LLM.Provider {
	case "", "none", "ollama", "openai":
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}
