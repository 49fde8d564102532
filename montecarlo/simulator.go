package montecarlo

import (
	"fmt"
	"math"
	"sync"
)

// SimulatePaths simulates nSimulations GBM price trajectories of nSteps
// steps each, drawing from src. Every sub-interval uses the exact GBM
// transition
//
//	S[t] = S[t-1] * exp((r - 0.5*sigma^2)*dt + sigma*sqrt(dt)*Z)
//
// with dt = T/nSteps, so the marginal distribution of each column carries no
// discretization bias. Sigma=0 degenerates to the deterministic drift path
// with no special casing. Each path draws from its own sub-stream of src
// keyed by path index, so output depends only on (params, counts, seed) and
// never on scheduling.
func SimulatePaths(params OptionParams, nSimulations, nSteps uint, src NormalSource) (*PriceGrid, error) {
	return simulate(params, nSimulations, nSteps, src, 1)
}

func simulate(params OptionParams, nSimulations, nSteps uint, src NormalSource, workers int) (*PriceGrid, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if nSimulations == 0 {
		return nil, fmt.Errorf("%w: n_simulations must be >= 1", ErrInvalidParameter)
	}
	if nSteps == 0 {
		return nil, fmt.Errorf("%w: n_steps must be >= 1", ErrInvalidParameter)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: a normal source is required", ErrInvalidParameter)
	}

	dt := params.T / float64(nSteps)
	drift := (params.R - 0.5*params.Sigma*params.Sigma) * dt
	vol := params.Sigma * math.Sqrt(dt)

	rows := int(nSimulations)
	grid := newGrid(rows, int(nSteps)+1)

	if workers <= 1 {
		scratch := make([]float64, nSteps)
		for i := 0; i < rows; i++ {
			fillPath(grid.data.RawRowView(i), params.S0, drift, vol, src.Stream(uint64(i)), scratch)
		}
		return grid, nil
	}

	// Workers own disjoint row ranges, so no locking is needed.
	chunk := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < rows; lo += chunk {
		hi := lo + chunk
		if hi > rows {
			hi = rows
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			scratch := make([]float64, nSteps)
			for i := lo; i < hi; i++ {
				fillPath(grid.data.RawRowView(i), params.S0, drift, vol, src.Stream(uint64(i)), scratch)
			}
		}(lo, hi)
	}
	wg.Wait()
	return grid, nil
}

// fillPath evolves a single trajectory in place. row has length nSteps+1 and
// z has length nSteps.
func fillPath(row []float64, s0, drift, vol float64, src NormalSource, z []float64) {
	src.StandardNormals(z)
	row[0] = s0
	for t := 1; t < len(row); t++ {
		row[t] = row[t-1] * math.Exp(drift+vol*z[t-1])
	}
}
