// Package config provides viper-backed configuration loading for the
// lowindex CLI: defaults set first, then an optional file, then
// environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every setting a lowindex search run needs beyond what is
// passed as CLI flags for a single invocation: the defaults a script or
// CI job would otherwise have to repeat on every invocation.
type Config struct {
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
}

// SearchConfig holds default search parameters.
type SearchConfig struct {
	Threads            int `mapstructure:"threads"`
	LongRuleLength     int `mapstructure:"long_rule_length"`
	IdleThreadRestarts int `mapstructure:"idle_thread_restarts"`
	KBCompletionBudget int `mapstructure:"kb_completion_budget"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load reads configuration from configPath (if non-empty), falling back
// to ./lowindex.yaml / ./configs/lowindex.yaml, then applies
// LOWINDEX_-prefixed environment variable overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("lowindex")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// use defaults
		} else if os.IsNotExist(err) {
			// use defaults
		} else {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("LOWINDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.threads", 1)
	v.SetDefault("search.long_rule_length", 0)
	v.SetDefault("search.idle_thread_restarts", 0)
	v.SetDefault("search.kb_completion_budget", 512)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate checks the loaded configuration for obviously bad values.
func (c *Config) Validate() error {
	if c.Search.Threads < 1 {
		return fmt.Errorf("search.threads must be at least 1")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
