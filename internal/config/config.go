// Package config provides configuration management for the calculator.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	apperrors "option-calc/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Market MarketConfig `mapstructure:"market"`
	Search SearchConfig `mapstructure:"search"`
	Output OutputConfig `mapstructure:"output"`
}

// MarketConfig holds the economic parameters of the evaluated trade.
type MarketConfig struct {
	Spot             float64 `mapstructure:"spot"`
	Rate             float64 `mapstructure:"rate"`
	Days             float64 `mapstructure:"days"`
	Volatility       float64 `mapstructure:"volatility"`
	ExpectedMovement float64 `mapstructure:"expected_movement"`
}

// SearchConfig holds the strike sweep parameters.
type SearchConfig struct {
	Samples        int     `mapstructure:"samples"`
	MinStrikeRatio float64 `mapstructure:"min_strike_ratio"`
	MaxStrikeRatio float64 `mapstructure:"max_strike_ratio"`
}

// OutputConfig holds result presentation options.
type OutputConfig struct {
	Plot        bool   `mapstructure:"plot"`
	PlotWidth   int    `mapstructure:"plot_width"`
	PlotHeight  int    `mapstructure:"plot_height"`
	CSVPath     string `mapstructure:"csv_path"`
	ColorOutput bool   `mapstructure:"color_output"`
}

// Default returns the documented default configuration: the historical
// script's reference scenario with the 1000-point grid.
func Default() *Config {
	return &Config{
		Market: MarketConfig{
			Spot:             280,
			Rate:             0.0063,
			Days:             180,
			Volatility:       0.4,
			ExpectedMovement: 0.3,
		},
		Search: SearchConfig{
			Samples:        1000,
			MinStrikeRatio: 0.1,
			MaxStrikeRatio: 3.0,
		},
		Output: OutputConfig{
			Plot:        true,
			PlotWidth:   72,
			PlotHeight:  20,
			ColorOutput: true,
		},
	}
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/option-calc"
	}
	return filepath.Join(home, ".config", "option-calc")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()
	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, apperrors.Wrap(err, "loading config.toml")
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, "validating config")
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, target)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template
			return createTemplateConfig(configDir)
		}
		return err
	}

	return v.Unmarshal(target)
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("market.spot", cfg.Market.Spot)
	v.SetDefault("market.rate", cfg.Market.Rate)
	v.SetDefault("market.days", cfg.Market.Days)
	v.SetDefault("market.volatility", cfg.Market.Volatility)
	v.SetDefault("market.expected_movement", cfg.Market.ExpectedMovement)
	v.SetDefault("search.samples", cfg.Search.Samples)
	v.SetDefault("search.min_strike_ratio", cfg.Search.MinStrikeRatio)
	v.SetDefault("search.max_strike_ratio", cfg.Search.MaxStrikeRatio)
	v.SetDefault("output.plot", cfg.Output.Plot)
	v.SetDefault("output.plot_width", cfg.Output.PlotWidth)
	v.SetDefault("output.plot_height", cfg.Output.PlotHeight)
	v.SetDefault("output.csv_path", cfg.Output.CSVPath)
	v.SetDefault("output.color_output", cfg.Output.ColorOutput)
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := envFloat("OPTCALC_SPOT"); ok {
		cfg.Market.Spot = v
	}
	if v, ok := envFloat("OPTCALC_RATE"); ok {
		cfg.Market.Rate = v
	}
	if v, ok := envFloat("OPTCALC_DAYS"); ok {
		cfg.Market.Days = v
	}
	if v, ok := envFloat("OPTCALC_VOLATILITY"); ok {
		cfg.Market.Volatility = v
	}
	if v, ok := envFloat("OPTCALC_MOVEMENT"); ok {
		cfg.Market.ExpectedMovement = v
	}
	if s := os.Getenv("OPTCALC_SAMPLES"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			cfg.Search.Samples = n
		}
	}
}

func envFloat(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Market.Spot <= 0 {
		return apperrors.NewValidationError("market.spot", c.Market.Spot, "must be positive")
	}
	if c.Market.Days <= 0 {
		return apperrors.NewValidationError("market.days", c.Market.Days, "must be positive")
	}
	if c.Market.Volatility <= 0 {
		return apperrors.NewValidationError("market.volatility", c.Market.Volatility, "must be positive")
	}
	if c.Search.Samples < 2 {
		return apperrors.NewValidationError("search.samples", c.Search.Samples, "a sweep needs at least two points")
	}
	if c.Search.MinStrikeRatio <= 0 {
		return apperrors.NewValidationError("search.min_strike_ratio", c.Search.MinStrikeRatio, "must be positive")
	}
	if c.Search.MaxStrikeRatio <= c.Search.MinStrikeRatio {
		return apperrors.NewValidationError("search.max_strike_ratio", c.Search.MaxStrikeRatio,
			"must exceed min_strike_ratio")
	}
	if c.Output.PlotWidth < 20 {
		return apperrors.NewValidationError("output.plot_width", c.Output.PlotWidth, "must be at least 20")
	}
	if c.Output.PlotHeight < 5 {
		return apperrors.NewValidationError("output.plot_height", c.Output.PlotHeight, "must be at least 5")
	}
	return nil
}
