// Package optimizer searches candidate strike prices for the one that
// maximizes expected percentage return on premium.
package optimizer

import (
	apperrors "option-calc/internal/errors"
	"option-calc/internal/pricing"
)

// Default search parameters. Strikes below a tenth of spot or above
// three times spot are economically irrelevant for a directional
// premium bet; the band is a default, not a hard limit, and is
// overridable through Params.
const (
	DefaultSamples        = 1000
	DefaultMinStrikeRatio = 0.1
	DefaultMaxStrikeRatio = 3.0
)

// Params holds the inputs of a single optimization request.
type Params struct {
	Spot             float64
	Rate             float64
	Days             float64
	Volatility       float64
	ExpectedMovement float64

	// Samples is the number of evenly spaced candidate strikes.
	// 1000 is the recommended default; coarser grids materially
	// degrade the located optimum on a continuous objective.
	Samples int

	// MinStrikeRatio and MaxStrikeRatio bound the candidate band as
	// multiples of Spot. Zero values fall back to the defaults.
	MinStrikeRatio float64
	MaxStrikeRatio float64
}

// DefaultParams returns Params populated with the documented default
// scenario.
func DefaultParams() Params {
	return Params{
		Spot:             280,
		Rate:             0.0063,
		Days:             180,
		Volatility:       0.4,
		ExpectedMovement: 0.3,
		Samples:          DefaultSamples,
		MinStrikeRatio:   DefaultMinStrikeRatio,
		MaxStrikeRatio:   DefaultMaxStrikeRatio,
	}
}

// normalized returns a copy with zero band ratios replaced by the
// defaults.
func (p Params) normalized() Params {
	if p.MinStrikeRatio == 0 {
		p.MinStrikeRatio = DefaultMinStrikeRatio
	}
	if p.MaxStrikeRatio == 0 {
		p.MaxStrikeRatio = DefaultMaxStrikeRatio
	}
	return p
}

// MinStrike returns the lower bound of the candidate band.
func (p Params) MinStrike() float64 {
	return p.normalized().MinStrikeRatio * p.Spot
}

// MaxStrike returns the upper bound of the candidate band.
func (p Params) MaxStrike() float64 {
	return p.normalized().MaxStrikeRatio * p.Spot
}

// FuturePrice returns the assumed underlying price at expiration.
func (p Params) FuturePrice() float64 {
	return p.Spot * (1 + p.ExpectedMovement)
}

// Type returns the option type implied by the expected movement.
func (p Params) Type() pricing.OptionType {
	return pricing.TypeForMovement(p.ExpectedMovement)
}

// validate rejects parameter combinations the sweep cannot evaluate.
func (p Params) validate() error {
	if p.Spot <= 0 {
		return apperrors.NewNumericErrorf("optimize", "spot must be positive, got %v", p.Spot)
	}
	if p.Days <= 0 {
		return apperrors.NewNumericErrorf("optimize", "days to expiration must be positive, got %v", p.Days)
	}
	if p.Volatility <= 0 {
		return apperrors.NewNumericErrorf("optimize", "volatility must be positive, got %v", p.Volatility)
	}
	if p.Samples < 2 {
		return apperrors.NewNumericErrorf("optimize", "sample count must be at least 2, got %d", p.Samples)
	}
	if p.MinStrikeRatio < 0 || p.MaxStrikeRatio <= p.MinStrikeRatio {
		return apperrors.NewNumericErrorf("optimize", "invalid strike band [%v, %v]",
			p.MinStrikeRatio, p.MaxStrikeRatio)
	}
	return nil
}

// strikeAt returns the i-th candidate strike of the evenly spaced
// grid. Both band endpoints are included.
func (p Params) strikeAt(i int) float64 {
	lo, hi := p.MinStrike(), p.MaxStrike()
	return lo + (hi-lo)*float64(i)/float64(p.Samples-1)
}

// Point is a single evaluated candidate.
type Point struct {
	Strike      float64 `json:"strike"`
	ProfitRatio float64 `json:"profit_ratio"`
}

// Result holds the outcome of an optimization sweep.
type Result struct {
	BestStrike  float64            `json:"best_strike"`
	BestProfit  float64            `json:"best_profit_ratio"`
	Type        pricing.OptionType `json:"-"`
	FuturePrice float64            `json:"future_price"`

	params Params
}

// Params returns the parameters the sweep was run with.
func (r *Result) Params() Params {
	return r.params
}

// profitRatio evaluates the profit metric for one candidate strike.
// The second return is false when the candidate must be excluded:
// the premium degenerated to exactly zero (undefined ratio) or the
// pricing model rejected the inputs.
func profitRatio(p Params, strike float64) (float64, bool) {
	premium, err := pricing.Price(p.Spot, strike, p.Rate, p.Days, p.Volatility, p.Type())
	if err != nil || premium == 0 {
		return 0, false
	}
	var raw float64
	switch p.Type() {
	case pricing.Call:
		raw = (p.FuturePrice() - strike) - premium
	case pricing.Put:
		raw = (strike - p.FuturePrice()) - premium
	}
	return raw / premium, true
}

// Optimize sweeps the candidate strike band and returns the strike
// with the maximum profit ratio under the assumed future price.
//
// The scan is a deterministic left-to-right grid search; the first
// candidate reaching the maximum wins ties. Candidates whose premium
// degenerates to zero are excluded rather than aborting the sweep. If
// every candidate is excluded, Optimize fails with
// ErrNoValidCandidates.
func Optimize(p Params) (*Result, error) {
	p = p.normalized()
	if err := p.validate(); err != nil {
		return nil, err
	}

	res := &Result{
		Type:        p.Type(),
		FuturePrice: p.FuturePrice(),
		params:      p,
	}

	found := false
	for i := 0; i < p.Samples; i++ {
		strike := p.strikeAt(i)
		ratio, ok := profitRatio(p, strike)
		if !ok {
			continue
		}
		if !found || ratio > res.BestProfit {
			res.BestStrike = strike
			res.BestProfit = ratio
			found = true
		}
	}
	if !found {
		return nil, apperrors.NewNumericError("optimize",
			"every candidate premium degenerated to zero", apperrors.ErrNoValidCandidates)
	}
	return res, nil
}

// Points returns a fresh iterator over the (strike, profit ratio)
// pairs of the sweep, for downstream visualization. Candidates losing
// more than the full premium (ratio <= -1) and excluded candidates do
// not appear. Each call restarts from the first candidate; points are
// computed on demand, never materialized.
func (r *Result) Points() *PointIterator {
	return &PointIterator{params: r.params}
}

// PointIterator lazily walks the evaluated candidate grid.
type PointIterator struct {
	params Params
	next   int
}

// Next returns the next reportable point. The second return is false
// once the grid is exhausted.
func (it *PointIterator) Next() (Point, bool) {
	for it.next < it.params.Samples {
		strike := it.params.strikeAt(it.next)
		it.next++
		ratio, ok := profitRatio(it.params, strike)
		if !ok || ratio <= -1.0 {
			continue
		}
		return Point{Strike: strike, ProfitRatio: ratio}, true
	}
	return Point{}, false
}
