package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig holds application-specific configuration.
type AppConfig struct {
	AutoApprove bool `mapstructure:"auto_approve"`
}

// LoggingConfig holds the logging-related configuration.
type LoggingConfig struct {
	Level string `mapstructure:"log_level"`
}

// CloudflareConfig holds Cloudflare API access configuration.
type CloudflareConfig struct {
	AccountID      string `mapstructure:"account_id"`
	APIToken       string `mapstructure:"api_token"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Config is the top-level configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Logging    LoggingConfig    `mapstructure:"log"`
	Cloudflare CloudflareConfig `mapstructure:"cloudflare"`
}

// InitConfig performs the initial configuration: setting defaults, specifying the config file, and reading it.
func InitConfig() error {
	// Set defaults for each sub-configuration.
	viper.SetDefault("app.auto_approve", false)
	viper.SetDefault("log.log_level", "INFO")
	viper.SetDefault("cloudflare.base_url", "https://api.cloudflare.com/client/v4")
	viper.SetDefault("cloudflare.timeout_seconds", 30)
	// Registered empty so environment overrides are picked up by Unmarshal.
	viper.SetDefault("cloudflare.account_id", "")
	viper.SetDefault("cloudflare.api_token", "")

	// Specify the config file details.
	viper.SetConfigName("config") // Looks for config.yaml
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // current directory

	// Read the config file if available.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// If the file is not found, just continue with defaults and env vars.
	}

	// Enable automatic environment variable binding.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return nil
}

// Load unmarshals the configuration into the Config struct and validates it.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects configurations that cannot possibly reach the API.
func (c *Config) Validate() error {
	if c.Cloudflare.AccountID == "" {
		return fmt.Errorf("cloudflare account id is required (set cloudflare.account_id or CLOUDFLARE_ACCOUNT_ID)")
	}
	if c.Cloudflare.APIToken == "" {
		return fmt.Errorf("cloudflare api token is required (set cloudflare.api_token or CLOUDFLARE_API_TOKEN)")
	}
	return nil
}
