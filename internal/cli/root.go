// Package cli provides the command-line interface for the calculator.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"option-calc/internal/config"
	"option-calc/internal/logging"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "optcalc",
		Short: "Option Calc - optimal strike price calculator",
		Long: `Option Calc estimates which option strike price maximizes expected
percentage return for a single trade, given the current underlying
price, risk-free rate, time to expiration, volatility and an assumed
future price movement.

Pricing uses the Black-Scholes closed-form model for European options.
Positive expected movements are evaluated with calls, negative ones
with puts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/option-calc)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newOptimizeCmd(app))
	rootCmd.AddCommand(newPriceCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd, true)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Option Calc v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.Output.ColorOutput)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd, app.Config.Output.ColorOutput)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.Output.ColorOutput)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Market Parameters")
	output.Printf("  Spot:             %.4f\n", cfg.Market.Spot)
	output.Printf("  Rate:             %.4f\n", cfg.Market.Rate)
	output.Printf("  Days:             %.0f\n", cfg.Market.Days)
	output.Printf("  Volatility:       %.4f\n", cfg.Market.Volatility)
	output.Printf("  Expected Move:    %.4f\n", cfg.Market.ExpectedMovement)
	output.Println()

	output.Bold("Search Parameters")
	output.Printf("  Samples:          %d\n", cfg.Search.Samples)
	output.Printf("  Strike Band:      %.2fx - %.2fx spot\n",
		cfg.Search.MinStrikeRatio, cfg.Search.MaxStrikeRatio)
	output.Println()

	output.Bold("Output")
	output.Printf("  Plot:             %v (%dx%d)\n",
		cfg.Output.Plot, cfg.Output.PlotWidth, cfg.Output.PlotHeight)
	output.Printf("  CSV Path:         %s\n", orNone(cfg.Output.CSVPath))
	output.Printf("  Color:            %v\n", cfg.Output.ColorOutput)
}

func orNone(s string) string {
	if s == "" {
		return "(disabled)"
	}
	return s
}
