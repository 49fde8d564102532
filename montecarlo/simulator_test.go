package montecarlo

import (
	"errors"
	"math"
	"testing"
)

func TestSimulatePathsShape(t *testing.T) {
	grid, err := SimulatePaths(validParams(), 50, 12, NewNormalSource(42))
	if err != nil {
		t.Fatalf("simulation failed: %v", err)
	}

	if grid.Simulations() != 50 {
		t.Errorf("expected 50 paths, got %d", grid.Simulations())
	}
	if grid.Steps() != 12 {
		t.Errorf("expected 12 steps, got %d", grid.Steps())
	}

	for i := 0; i < grid.Simulations(); i++ {
		path := grid.Path(i)
		if len(path) != 13 {
			t.Fatalf("path %d has length %d, want 13", i, len(path))
		}
		if path[0] != 100 {
			t.Fatalf("path %d does not start at S0: %v", i, path[0])
		}
		for step, price := range path {
			if price <= 0 || math.IsNaN(price) {
				t.Fatalf("path %d has non-positive price %v at step %d", i, price, step)
			}
		}
	}
}

func TestSimulatePathsReproducible(t *testing.T) {
	a, err := SimulatePaths(validParams(), 200, 16, NewNormalSource(42))
	if err != nil {
		t.Fatalf("first simulation failed: %v", err)
	}
	b, err := SimulatePaths(validParams(), 200, 16, NewNormalSource(42))
	if err != nil {
		t.Fatalf("second simulation failed: %v", err)
	}

	for i := 0; i < a.Simulations(); i++ {
		pa, pb := a.Path(i), b.Path(i)
		for j := range pa {
			if pa[j] != pb[j] {
				t.Fatalf("grids differ at path %d step %d: %v vs %v", i, j, pa[j], pb[j])
			}
		}
	}
}

func TestSequentialAndParallelGridsMatch(t *testing.T) {
	seq, err := simulate(validParams(), 500, 8, NewNormalSource(42), 1)
	if err != nil {
		t.Fatalf("sequential simulation failed: %v", err)
	}
	par, err := simulate(validParams(), 500, 8, NewNormalSource(42), 4)
	if err != nil {
		t.Fatalf("parallel simulation failed: %v", err)
	}

	for i := 0; i < seq.Simulations(); i++ {
		ps, pp := seq.Path(i), par.Path(i)
		for j := range ps {
			if ps[j] != pp[j] {
				t.Fatalf("sequential and parallel grids differ at path %d step %d", i, j)
			}
		}
	}
}

func TestZeroVolatilityDriftPath(t *testing.T) {
	p := validParams()
	p.Sigma = 0

	grid, err := SimulatePaths(p, 20, 252, NewNormalSource(42))
	if err != nil {
		t.Fatalf("simulation failed: %v", err)
	}

	want := p.S0 * math.Exp(p.R*p.T)
	for _, sT := range grid.TerminalPrices() {
		if math.Abs(sT-want)/want > 1e-9 {
			t.Fatalf("zero-vol terminal price %v, want %v", sT, want)
		}
	}
}

func TestSimulatePathsRejectsBadInputs(t *testing.T) {
	src := NewNormalSource(42)

	if _, err := SimulatePaths(validParams(), 0, 10, src); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero simulations: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := SimulatePaths(validParams(), 10, 0, src); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero steps: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := SimulatePaths(validParams(), 10, 10, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("nil source: expected ErrInvalidParameter, got %v", err)
	}

	bad := validParams()
	bad.T = 0
	if _, err := SimulatePaths(bad, 10, 10, src); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero maturity: expected ErrInvalidParameter, got %v", err)
	}

	bad = validParams()
	bad.S0 = -1
	if _, err := SimulatePaths(bad, 10, 10, src); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative S0: expected ErrInvalidParameter, got %v", err)
	}
}
