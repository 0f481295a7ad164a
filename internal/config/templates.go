package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Option Calc Configuration

[market]
# Current price of the underlying.
spot = 280.0
# Annualized, continuously-compounded risk-free interest rate.
rate = 0.0063
# Calendar days until the targeted expiration date.
days = 180
# Annualized volatility of the underlying (standard deviation of log
# returns). Implied volatility as quoted by your broker works here; a
# reasonable estimate is the average implied volatility across several
# options currently on the market.
volatility = 0.4
# Percent price movement expected before expiration, as a fraction
# (0.3 = +30%). Positive expectations are evaluated with calls,
# negative ones with puts.
expected_movement = 0.3

[search]
# Number of evenly spaced candidate strikes. 1000 keeps the located
# optimum stable; 100 was used historically and is noticeably coarser.
samples = 1000
# Candidate strike band as multiples of spot.
min_strike_ratio = 0.1
max_strike_ratio = 3.0

[output]
# Render the strike/profit chart in the terminal.
plot = true
plot_width = 72
plot_height = 20
# Write the (strike, profit %) sweep to this CSV file ("" disables).
csv_path = ""
# Enable colored output.
color_output = true
`

// createTemplateConfig writes the default config template so the user
// has a commented file to edit on first run.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
