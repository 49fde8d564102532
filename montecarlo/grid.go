package montecarlo

import "gonum.org/v1/gonum/mat"

// PriceGrid holds simulated price trajectories, one row per path. Column 0
// is the initial price, column t the simulated price after t time steps.
// A grid is produced once, consumed once and owned by its requester.
type PriceGrid struct {
	rows int
	cols int
	data *mat.Dense
}

// GridFromMatrix wraps an externally built matrix so it can be priced with
// PriceFromGrid. The matrix is not copied.
func GridFromMatrix(m *mat.Dense) *PriceGrid {
	g := &PriceGrid{data: m}
	if m != nil {
		g.rows, g.cols = m.Dims()
	}
	return g
}

func newGrid(rows, cols int) *PriceGrid {
	return &PriceGrid{rows: rows, cols: cols, data: mat.NewDense(rows, cols, nil)}
}

// Simulations returns the number of simulated paths (rows).
func (g *PriceGrid) Simulations() int { return g.rows }

// Steps returns the number of simulated time steps (columns minus one).
func (g *PriceGrid) Steps() int { return g.cols - 1 }

// Path returns a copy of the price trajectory of path i.
func (g *PriceGrid) Path(i int) []float64 {
	return mat.Row(nil, i, g.data)
}

// TerminalPrices returns the last column: one terminal price per path.
func (g *PriceGrid) TerminalPrices() []float64 {
	return mat.Col(nil, g.cols-1, g.data)
}

// Matrix exposes the backing matrix for callers doing their own numerics.
func (g *PriceGrid) Matrix() mat.Matrix { return g.data }
