package montecarlo

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// BlackScholesPrice returns the closed-form Black-Scholes-Merton price of a
// European option. It shares the validation rules of the simulator and
// serves as the convergence reference for the Monte Carlo estimate.
func BlackScholesPrice(params OptionParams) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}

	discount := math.Exp(-params.R * params.T)

	// Sigma=0 collapses to the discounted intrinsic value on the forward.
	if params.Sigma == 0 {
		forward := params.S0 / discount
		if params.Type == Call {
			return discount * math.Max(forward-params.K, 0), nil
		}
		return discount * math.Max(params.K-forward, 0), nil
	}

	sqrtT := math.Sqrt(params.T)
	d1 := (math.Log(params.S0/params.K) + (params.R+0.5*params.Sigma*params.Sigma)*params.T) / (params.Sigma * sqrtT)
	d2 := d1 - params.Sigma*sqrtT

	if params.Type == Call {
		return params.S0*stdNormal.CDF(d1) - params.K*discount*stdNormal.CDF(d2), nil
	}
	return params.K*discount*stdNormal.CDF(-d2) - params.S0*stdNormal.CDF(-d1), nil
}
