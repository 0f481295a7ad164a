// Package cli provides the command-line interface for the calculator.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"option-calc/internal/pricing"
)

func newPriceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a single European option",
		Long: `Compute the Black-Scholes theoretical premium of a single European
option. Spot, rate, days and volatility default to the configured
values; the strike is required.`,
		Example: `  optcalc price --strike 300
  optcalc price --strike 300 --type put
  optcalc price --spot 250 --strike 260 --days 30 --volatility 0.6`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.Output.ColorOutput)

			spot := app.Config.Market.Spot
			rate := app.Config.Market.Rate
			days := app.Config.Market.Days
			volatility := app.Config.Market.Volatility
			if cmd.Flags().Changed("spot") {
				spot, _ = cmd.Flags().GetFloat64("spot")
			}
			if cmd.Flags().Changed("rate") {
				rate, _ = cmd.Flags().GetFloat64("rate")
			}
			if cmd.Flags().Changed("days") {
				days, _ = cmd.Flags().GetFloat64("days")
			}
			if cmd.Flags().Changed("volatility") {
				volatility, _ = cmd.Flags().GetFloat64("volatility")
			}
			strike, _ := cmd.Flags().GetFloat64("strike")

			typeStr, _ := cmd.Flags().GetString("type")
			var typ pricing.OptionType
			switch strings.ToLower(typeStr) {
			case "call":
				typ = pricing.Call
			case "put":
				typ = pricing.Put
			default:
				output.Error("Invalid option type %q (must be call or put)", typeStr)
				return fmt.Errorf("invalid option type: %s", typeStr)
			}

			premium, err := pricing.Price(spot, strike, rate, days, volatility, typ)
			if err != nil {
				app.Logger.Error().Err(err).Msg("Pricing failed")
				output.Error("Pricing failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"option_type": typ.String(),
					"spot":        spot,
					"strike":      strike,
					"rate":        rate,
					"days":        days,
					"volatility":  volatility,
					"premium":     premium,
				})
			}

			output.Printf("%s %s premium: %s\n", typ, FormatPrice(strike), FormatPrice(premium))
			return nil
		},
	}

	cmd.Flags().Float64("spot", 0, "current price of the underlying")
	cmd.Flags().Float64("strike", 0, "exercise price of the option")
	cmd.Flags().Float64("rate", 0, "annualized risk-free interest rate")
	cmd.Flags().Float64("days", 0, "calendar days until expiration")
	cmd.Flags().Float64("volatility", 0, "annualized volatility of the underlying")
	cmd.Flags().String("type", "call", "option type: call or put")
	cmd.MarkFlagRequired("strike")

	return cmd
}
