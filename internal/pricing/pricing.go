// Package pricing implements the Black-Scholes closed-form model for
// European options.
package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	apperrors "option-calc/internal/errors"
)

// DaysPerYear converts calendar days to expiration into model years.
// Volatility is assumed to be annualized, the unit brokers quote
// implied volatility in, so time must be in years as well.
const DaysPerYear = 365.0

// OptionType identifies the economic case of a contract.
type OptionType int

const (
	// Call is the right to buy the underlying at the strike.
	Call OptionType = iota
	// Put is the right to sell the underlying at the strike.
	Put
)

// String returns the display name of the option type.
func (t OptionType) String() string {
	switch t {
	case Call:
		return "CALL"
	case Put:
		return "PUT"
	default:
		return "UNKNOWN"
	}
}

// TypeForMovement returns the option type for a directional bet on the
// given expected price movement: calls for upward expectations, puts
// for downward ones.
func TypeForMovement(movement float64) OptionType {
	if movement > 0 {
		return Call
	}
	return Put
}

// stdNormal is the standard normal distribution used for the
// cumulative terms. distuv evaluates the CDF via erf, which holds
// better than 1e-10 accuracy into the tails.
var stdNormal = distuv.UnitNormal

// Price returns the theoretical premium of a European option with no
// dividends under the Black-Scholes model.
//
// spot and strike are prices of the underlying and the contract, rate
// is the annualized continuously-compounded risk-free rate, days is
// calendar days to expiration and volatility is the annualized
// standard deviation of log returns.
//
// Price is pure: identical inputs yield identical results and it is
// safe for concurrent use. Non-positive spot, strike, days or
// volatility is rejected with a NumericError rather than clamped or
// propagated as NaN.
func Price(spot, strike, rate, days, volatility float64, typ OptionType) (float64, error) {
	if spot <= 0 {
		return 0, apperrors.NewNumericErrorf("price", "spot must be positive, got %v", spot)
	}
	if strike <= 0 {
		return 0, apperrors.NewNumericErrorf("price", "strike must be positive, got %v", strike)
	}
	if days <= 0 {
		return 0, apperrors.NewNumericErrorf("price", "days to expiration must be positive, got %v", days)
	}
	if volatility <= 0 {
		return 0, apperrors.NewNumericErrorf("price", "volatility must be positive, got %v", volatility)
	}

	t := days / DaysPerYear
	denom := volatility * math.Sqrt(t)
	if denom == 0 {
		// Positive inputs can still underflow the denominator for
		// extreme values; surface it instead of dividing.
		return 0, apperrors.NewNumericErrorf("price", "degenerate denominator v*sqrt(t) for v=%v t=%v", volatility, t)
	}

	d1 := (math.Log(spot/strike) + (rate+volatility*volatility/2)*t) / denom
	d2 := (math.Log(spot/strike) + (rate-volatility*volatility/2)*t) / denom

	if typ == Call {
		return spot*stdNormal.CDF(d1) - strike*math.Exp(-rate*t)*stdNormal.CDF(d2), nil
	}
	return strike*math.Exp(-rate*t)*stdNormal.CDF(-d2) - spot*stdNormal.CDF(-d1), nil
}
