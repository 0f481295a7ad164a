package pricing

import (
	"math"
	"testing"

	apperrors "option-calc/internal/errors"
)

// Reference premiums for the default scenario, computed against an
// independent implementation of the closed-form model.
func TestPriceKnownValues(t *testing.T) {
	tests := []struct {
		name       string
		spot       float64
		strike     float64
		rate       float64
		days       float64
		volatility float64
		typ        OptionType
		want       float64
	}{
		{"atm call", 280, 280, 0.0063, 180, 0.4, Call, 31.66228868657413},
		{"atm put", 280, 280, 0.0063, 180, 0.4, Put, 30.793720831732543},
		{"otm call", 280, 350, 0.0063, 180, 0.4, Call, 10.805049625610756},
		{"otm put", 280, 200, 0.0063, 180, 0.4, Put, 3.631754785994417},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.spot, tt.strike, tt.rate, tt.days, tt.volatility, tt.typ)
			if err != nil {
				t.Fatalf("Price() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Price() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPricePutCallParity(t *testing.T) {
	const (
		spot = 280.0
		rate = 0.0063
		days = 180.0
		vol  = 0.4
	)
	for _, strike := range []float64{28, 150, 280, 350, 840} {
		call, err := Price(spot, strike, rate, days, vol, Call)
		if err != nil {
			t.Fatalf("call at %v: %v", strike, err)
		}
		put, err := Price(spot, strike, rate, days, vol, Put)
		if err != nil {
			t.Fatalf("put at %v: %v", strike, err)
		}
		want := spot - strike*math.Exp(-rate*days/DaysPerYear)
		if math.Abs((call-put)-want) > 1e-6 {
			t.Errorf("parity violated at strike %v: call-put = %v, want %v", strike, call-put, want)
		}
	}
}

func TestPriceMonotonicInStrike(t *testing.T) {
	var prevCall, prevPut float64
	for i, strike := range []float64{50, 100, 200, 280, 400, 600, 840} {
		call, err := Price(280, strike, 0.0063, 180, 0.4, Call)
		if err != nil {
			t.Fatalf("call at %v: %v", strike, err)
		}
		put, err := Price(280, strike, 0.0063, 180, 0.4, Put)
		if err != nil {
			t.Fatalf("put at %v: %v", strike, err)
		}
		if i > 0 {
			if call > prevCall {
				t.Errorf("call premium increased with strike: %v -> %v at %v", prevCall, call, strike)
			}
			if put < prevPut {
				t.Errorf("put premium decreased with strike: %v -> %v at %v", prevPut, put, strike)
			}
		}
		prevCall, prevPut = call, put
	}
}

func TestPriceBoundaryBehavior(t *testing.T) {
	// As the strike vanishes, a call converges to the spot price.
	call, err := Price(280, 1e-6, 0.0063, 180, 0.4, Call)
	if err != nil {
		t.Fatalf("deep itm call: %v", err)
	}
	if math.Abs(call-280) > 1e-3 {
		t.Errorf("deep in-the-money call = %v, want ~280", call)
	}

	// As the strike grows without bound, a call becomes worthless.
	call, err = Price(280, 1e9, 0.0063, 180, 0.4, Call)
	if err != nil {
		t.Fatalf("deep otm call: %v", err)
	}
	if call > 1e-6 {
		t.Errorf("deep out-of-the-money call = %v, want ~0", call)
	}
}

func TestPriceRejectsDegenerateInputs(t *testing.T) {
	tests := []struct {
		name       string
		spot       float64
		strike     float64
		days       float64
		volatility float64
	}{
		{"zero volatility", 280, 280, 180, 0},
		{"negative volatility", 280, 280, 180, -0.4},
		{"zero days", 280, 280, 0, 0.4},
		{"negative days", 280, 280, -1, 0.4},
		{"zero spot", 0, 280, 180, 0.4},
		{"zero strike", 280, 0, 180, 0.4},
		{"negative strike", 280, -10, 180, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.spot, tt.strike, 0.0063, tt.days, tt.volatility, Call)
			if err == nil {
				t.Fatalf("Price() = %v, want NumericError", got)
			}
			if !apperrors.IsNumeric(err) {
				t.Errorf("Price() error = %v, want NumericError", err)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("Price() returned non-finite %v alongside error", got)
			}
		})
	}
}

func TestPriceToleratesNegativeRate(t *testing.T) {
	got, err := Price(280, 280, -0.01, 180, 0.4, Call)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if got <= 0 || math.IsNaN(got) {
		t.Errorf("Price() with negative rate = %v, want positive premium", got)
	}
}

func TestTypeForMovement(t *testing.T) {
	if got := TypeForMovement(0.3); got != Call {
		t.Errorf("TypeForMovement(0.3) = %v, want Call", got)
	}
	if got := TypeForMovement(-0.3); got != Put {
		t.Errorf("TypeForMovement(-0.3) = %v, want Put", got)
	}
	// Zero movement is not an upward expectation.
	if got := TypeForMovement(0); got != Put {
		t.Errorf("TypeForMovement(0) = %v, want Put", got)
	}
}
