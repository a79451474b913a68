package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Quick Basket assistant
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Database DatabaseConfig `mapstructure:"database"`
	Chat     ChatConfig     `mapstructure:"chat"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// AdminConfig holds admin authentication configuration
type AdminConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ChatConfig holds dialogue tuning knobs
type ChatConfig struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	MaxRecommendations  int     `mapstructure:"max_recommendations"`
	PriceDelta          float64 `mapstructure:"price_delta"`
	MaxPromotions       int     `mapstructure:"max_promotions"`
	WelcomePromo        string  `mapstructure:"welcome_promo"`
	RandomSeed          int64   `mapstructure:"random_seed"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if specified
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("QUICKBASKET")
	v.AutomaticEnv()

	// Read config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("admin.api_key", "")

	v.SetDefault("database.path", "./data/quickbasket.db")

	v.SetDefault("chat.confidence_threshold", 0.4)
	v.SetDefault("chat.max_recommendations", 3)
	v.SetDefault("chat.price_delta", 30)
	v.SetDefault("chat.max_promotions", 3)
	v.SetDefault("chat.welcome_promo", "WELCOME15")
	v.SetDefault("chat.random_seed", 0)
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
