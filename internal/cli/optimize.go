// Package cli provides the command-line interface for the calculator.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"option-calc/internal/logging"
	"option-calc/internal/optimizer"
	"option-calc/internal/plot"
)

// optimizeResult is the JSON shape of an optimize run.
type optimizeResult struct {
	OptionType      string            `json:"option_type"`
	BestStrike      float64           `json:"best_strike"`
	BestProfitRatio float64           `json:"best_profit_ratio"`
	FuturePrice     float64           `json:"future_price"`
	MinStrike       float64           `json:"min_strike"`
	MaxStrike       float64           `json:"max_strike"`
	Samples         int               `json:"samples"`
	Points          []optimizer.Point `json:"points,omitempty"`
}

func newOptimizeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Find the strike price maximizing expected percentage return",
		Long: `Sweep candidate strike prices across a band around the current
underlying price and report the one whose expected percentage return
on premium is highest, assuming the configured future price movement.

All parameters default to the values in config.toml; flags override
them for a single run.`,
		Example: `  optcalc optimize
  optcalc optimize --spot 250 --movement 0.2
  optcalc optimize --days 30 --volatility 0.6 --samples 100 --no-plot
  optcalc optimize --csv sweep.csv --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config.Output.ColorOutput)
			logger := logging.WithOperation(app.Logger, "optimize")

			params := paramsFromFlags(cmd, app)

			noPlot, _ := cmd.Flags().GetBool("no-plot")
			csvPath, _ := cmd.Flags().GetString("csv")
			if csvPath == "" {
				csvPath = app.Config.Output.CSVPath
			}

			if !output.IsJSON() {
				output.Dim("Searching between exercise prices %s and %s...",
					FormatPrice(params.MinStrike()), FormatPrice(params.MaxStrike()))
			}

			start := time.Now()
			res, err := optimizer.Optimize(params)
			if err != nil {
				logger.Error().Err(err).Msg("Sweep failed")
				output.Error("Optimization failed: %v", err)
				return err
			}
			logging.LogSweep(logger, res.Type.String(), res.BestStrike, res.BestProfit,
				params.Samples, time.Since(start))

			if output.IsJSON() {
				jr := optimizeResult{
					OptionType:      res.Type.String(),
					BestStrike:      res.BestStrike,
					BestProfitRatio: res.BestProfit,
					FuturePrice:     res.FuturePrice,
					MinStrike:       params.MinStrike(),
					MaxStrike:       params.MaxStrike(),
					Samples:         params.Samples,
				}
				for it := res.Points(); ; {
					pt, ok := it.Next()
					if !ok {
						break
					}
					jr.Points = append(jr.Points, pt)
				}
				return output.JSON(jr)
			}

			output.Printf("Best exercise price is %s, profit is %s (%s).\n",
				FormatPrice(res.BestStrike),
				output.FormatPercent(res.BestProfit*100),
				res.Type)

			if app.Config.Output.Plot && !noPlot {
				output.Println()
				chart := plot.NewChart(app.Config.Output.PlotWidth, app.Config.Output.PlotHeight)
				if err := chart.Render(output.Writer(), res); err != nil {
					output.Warning("Chart skipped: %v", err)
				}
			}

			if csvPath != "" {
				if err := plot.WriteCSVFile(csvPath, res); err != nil {
					logger.Error().Err(err).Str("path", csvPath).Msg("CSV export failed")
					output.Error("CSV export failed: %v", err)
					return err
				}
				output.Dim("Sweep written to %s", csvPath)
			}

			return nil
		},
	}

	cmd.Flags().Float64("spot", 0, "current price of the underlying")
	cmd.Flags().Float64("rate", 0, "annualized risk-free interest rate")
	cmd.Flags().Float64("days", 0, "calendar days until expiration")
	cmd.Flags().Float64("volatility", 0, "annualized volatility of the underlying")
	cmd.Flags().Float64("movement", 0, "expected price movement as a fraction (0.3 = +30%)")
	cmd.Flags().Int("samples", 0, "number of candidate strikes to evaluate")
	cmd.Flags().Bool("no-plot", false, "suppress the terminal chart")
	cmd.Flags().String("csv", "", "write the (strike, profit %) sweep to this CSV file")

	return cmd
}

// paramsFromFlags builds sweep parameters from config, overridden by
// any flag the user set explicitly.
func paramsFromFlags(cmd *cobra.Command, app *App) optimizer.Params {
	params := optimizer.Params{
		Spot:             app.Config.Market.Spot,
		Rate:             app.Config.Market.Rate,
		Days:             app.Config.Market.Days,
		Volatility:       app.Config.Market.Volatility,
		ExpectedMovement: app.Config.Market.ExpectedMovement,
		Samples:          app.Config.Search.Samples,
		MinStrikeRatio:   app.Config.Search.MinStrikeRatio,
		MaxStrikeRatio:   app.Config.Search.MaxStrikeRatio,
	}

	if cmd.Flags().Changed("spot") {
		params.Spot, _ = cmd.Flags().GetFloat64("spot")
	}
	if cmd.Flags().Changed("rate") {
		params.Rate, _ = cmd.Flags().GetFloat64("rate")
	}
	if cmd.Flags().Changed("days") {
		params.Days, _ = cmd.Flags().GetFloat64("days")
	}
	if cmd.Flags().Changed("volatility") {
		params.Volatility, _ = cmd.Flags().GetFloat64("volatility")
	}
	if cmd.Flags().Changed("movement") {
		params.ExpectedMovement, _ = cmd.Flags().GetFloat64("movement")
	}
	if cmd.Flags().Changed("samples") {
		params.Samples, _ = cmd.Flags().GetInt("samples")
	}

	return params
}
