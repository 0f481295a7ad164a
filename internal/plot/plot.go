// Package plot renders the strike/profit sweep for human inspection,
// either as a terminal chart or as a CSV export.
package plot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"option-calc/internal/optimizer"
)

// Chart renders (strike, profit %) points as a fixed-size terminal
// scatter chart.
type Chart struct {
	Width  int
	Height int
}

// NewChart creates a chart with the given cell dimensions.
func NewChart(width, height int) *Chart {
	return &Chart{Width: width, Height: height}
}

// Render draws the sweep to w: strike on the X axis, percentage
// profit on the Y axis, with a title annotating the input parameters
// the way the historical tool did.
//
// The point sequence is walked twice, first for bounds then for
// placement, relying on Points() being restartable. Returns an error
// only when the sequence is empty.
func (c *Chart) Render(w io.Writer, res *optimizer.Result) error {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	n := 0
	for it := res.Points(); ; {
		pt, ok := it.Next()
		if !ok {
			break
		}
		n++
		pct := pt.ProfitRatio * 100
		minX = math.Min(minX, pt.Strike)
		maxX = math.Max(maxX, pt.Strike)
		minY = math.Min(minY, pct)
		maxY = math.Max(maxY, pct)
	}
	if n == 0 {
		return fmt.Errorf("no points to plot")
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, c.Width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	place := func(strike, pct float64, mark rune) {
		col := int(math.Round((strike - minX) / (maxX - minX) * float64(c.Width-1)))
		row := int(math.Round((pct - minY) / (maxY - minY) * float64(c.Height-1)))
		// Row 0 is the top of the grid.
		grid[c.Height-1-row][col] = mark
	}

	for it := res.Points(); ; {
		pt, ok := it.Next()
		if !ok {
			break
		}
		place(pt.Strike, pt.ProfitRatio*100, '·')
	}
	place(res.BestStrike, res.BestProfit*100, '*')

	p := res.Params()
	fmt.Fprintf(w, "S: %g, predicted movement: %g, time: %g, v: %g\n",
		p.Spot, p.ExpectedMovement, p.Days, p.Volatility)
	fmt.Fprintln(w, "Profit (%)")

	yLabel := func(row int) string {
		frac := float64(c.Height-1-row) / float64(c.Height-1)
		return fmt.Sprintf("%9.1f", minY+frac*(maxY-minY))
	}
	for row := 0; row < c.Height; row++ {
		label := strings.Repeat(" ", 9)
		if row == 0 || row == c.Height-1 || row == c.Height/2 {
			label = yLabel(row)
		}
		fmt.Fprintf(w, "%s │%s\n", label, string(grid[row]))
	}
	fmt.Fprintf(w, "%s └%s\n", strings.Repeat(" ", 9), strings.Repeat("─", c.Width))
	fmt.Fprintf(w, "%s %-*.2f%*.2f\n", strings.Repeat(" ", 9), c.Width/2, minX, c.Width-c.Width/2, maxX)
	fmt.Fprintf(w, "%s %s\n", strings.Repeat(" ", 9), centered("Exercise Price", c.Width))
	return nil
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
