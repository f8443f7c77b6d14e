package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all startup configuration for the server. It is loaded once
// and read-only afterwards.
type Config struct {
	// Host is the workspace URL, e.g. https://adb-1234.5.azuredatabricks.net
	Host string `mapstructure:"host"`
	// Token is the personal access token attached as a bearer credential.
	Token string `mapstructure:"token"`

	// RequestTimeout bounds a single API call including all retries.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// ToolTimeout bounds a single tool dispatch.
	ToolTimeout time.Duration `mapstructure:"tool_timeout"`
	// LongRunningTimeout applies to tool categories that drive job runs,
	// SQL statement execution and command execution.
	LongRunningTimeout time.Duration `mapstructure:"long_running_timeout"`

	// MaxRetries is the number of retries after the first attempt for
	// transient failures.
	MaxRetries int `mapstructure:"max_retries"`
	// RetryBackoff is the base backoff interval, doubled per attempt.
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	// RetryBackoffCap caps the computed backoff interval.
	RetryBackoffCap time.Duration `mapstructure:"retry_backoff_cap"`
}

// Load reads configuration from the environment and an optional config file.
// Environment variables use the DATABRICKS_ prefix: DATABRICKS_HOST,
// DATABRICKS_TOKEN, DATABRICKS_MAX_RETRIES and so on.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("request_timeout", 60*time.Second)
	v.SetDefault("tool_timeout", 60*time.Second)
	v.SetDefault("long_running_timeout", 10*time.Minute)
	v.SetDefault("max_retries", 3)
	v.SetDefault("retry_backoff", 500*time.Millisecond)
	v.SetDefault("retry_backoff_cap", 10*time.Second)

	v.SetEnvPrefix("DATABRICKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Keys without defaults must be bound explicitly for Unmarshal to see
	// their environment values.
	v.MustBindEnv("host")
	v.MustBindEnv("token")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Host == "" {
		return nil, fmt.Errorf("databricks host is not configured (set DATABRICKS_HOST)")
	}
	if config.Token == "" {
		return nil, fmt.Errorf("databricks token is not configured (set DATABRICKS_TOKEN)")
	}
	config.Host = strings.TrimSuffix(config.Host, "/")

	return &config, nil
}
