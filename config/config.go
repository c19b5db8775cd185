package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the startup defaults for a session. Every value can be
// overridden by a MRGN_-prefixed environment variable.
type Config struct {
	ProductPrice float64 `mapstructure:"product_price"`
	COGS         float64 `mapstructure:"cogs"`
	Mode         string  `mapstructure:"mode"`       // "cpa" or "roas"
	ModeValue    float64 `mapstructure:"mode_value"` // desired CPA ($) or desired ROAS
	Chart        string  `mapstructure:"chart"`      // "pie" or "bar"
	FeeProcessor string  `mapstructure:"fee_processor"`
	LogFile      string  `mapstructure:"log_file"`
	DebugLogging bool    `mapstructure:"debug_logging"`
	ReduceMotion bool    `mapstructure:"reduce_motion"`
}

const (
	DefaultProductPrice = 82.99
	DefaultCOGS         = 10.0
	DefaultMode         = "cpa"
	DefaultModeValue    = 20.0
	DefaultChart        = "pie"
	DefaultFeeProcessor = "shopify"
)

// Load reads configuration from path, falling back to built-in defaults when
// the file is absent. An unreadable or invalid file is an error; a missing
// one is not.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"product_price": DefaultProductPrice,
		"cogs":          DefaultCOGS,
		"mode":          DefaultMode,
		"mode_value":    DefaultModeValue,
		"chart":         DefaultChart,
		"fee_processor": DefaultFeeProcessor,
		"log_file":      "",
		"debug_logging": false,
		"reduce_motion": false,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("MRGN")
	v.AutomaticEnv()
	for key := range defaults {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, validate(&cfg)
}

func validate(cfg *Config) error {
	if cfg.ProductPrice < 0 {
		return errors.New("product_price must be non-negative")
	}
	if cfg.COGS < 0 {
		return errors.New("cogs must be non-negative")
	}
	if cfg.ModeValue < 0 {
		return errors.New("mode_value must be non-negative")
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Mode)) {
	case "cpa", "roas":
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Chart)) {
	case "pie", "bar":
	default:
		return fmt.Errorf("unknown chart type %q", cfg.Chart)
	}

	return nil
}
