package montecarlo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// z95 is the normal-approximation z-score for a 95% confidence interval.
// The sample counts here are large enough that no Student-t correction is
// warranted.
const z95 = 1.96

// PriceFromGrid reduces a simulated price grid to a discounted Monte Carlo
// price estimate with its standard error and 95% confidence interval. The
// standard error uses the population standard deviation of the payoffs
// (divide by N), discounted by exp(-r*T) to express it in present-value
// terms. It is a pure reduction: the grid is not modified.
func PriceFromGrid(params OptionParams, grid *PriceGrid) (*PricingResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if grid == nil || grid.rows == 0 {
		return nil, fmt.Errorf("%w: price grid has no simulated paths", ErrInvalidParameter)
	}
	if grid.cols < 1 {
		return nil, fmt.Errorf("%w: price grid has %d columns, terminal column required", ErrShapeMismatch, grid.cols)
	}

	terminal := grid.TerminalPrices()
	payoffs := make([]float64, len(terminal))
	for i, sT := range terminal {
		if params.Type == Call {
			payoffs[i] = math.Max(sT-params.K, 0)
		} else {
			payoffs[i] = math.Max(params.K-sT, 0)
		}
	}

	discount := math.Exp(-params.R * params.T)
	price := discount * stat.Mean(payoffs, nil)
	stdErr := discount * stat.PopStdDev(payoffs, nil) / math.Sqrt(float64(len(payoffs)))
	half := z95 * stdErr

	return &PricingResult{
		Price:    price,
		StdError: stdErr,
		CILower:  price - half,
		CIUpper:  price + half,
	}, nil
}
