package montecarlo

import "time"

// PricingResult is the outcome of a Monte Carlo pricing run. Price is the
// discounted estimate; StdError and the confidence bounds are expressed in
// present-value terms.
type PricingResult struct {
	Price    float64
	StdError float64
	CILower  float64
	CIUpper  float64

	// Grid is the simulated path grid, retained only when the engine is
	// configured to keep it. It is large and safe to discard.
	Grid *PriceGrid

	// Mode and Elapsed describe the run that produced the estimate.
	Mode    ExecutionMode
	Elapsed time.Duration
}
