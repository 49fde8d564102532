package montecarlo

import (
	"runtime"
	"time"

	"github.com/jwaldner/swordfish/internal/config"
	"github.com/jwaldner/swordfish/internal/logger"
)

// ExecutionMode defines how path generation is scheduled.
type ExecutionMode string

const (
	ModeAuto       ExecutionMode = "auto"
	ModeSequential ExecutionMode = "sequential"
	ModeParallel   ExecutionMode = "parallel"
)

// autoParallelThreshold is the simulations*steps workload above which auto
// mode partitions paths across workers.
const autoParallelThreshold = 1 << 16

// Engine runs Monte Carlo pricing with fixed simulation controls. The same
// seed and counts always reproduce the same result, in every execution mode.
type Engine struct {
	nSimulations uint
	seed         uint64
	mode         ExecutionMode
	workers      int
	retainPaths  bool
}

// NewEngine creates an engine in auto mode with one worker per CPU.
func NewEngine(nSimulations uint, seed uint64) *Engine {
	return &Engine{
		nSimulations: nSimulations,
		seed:         seed,
		mode:         ModeAuto,
		workers:      runtime.GOMAXPROCS(0),
	}
}

// NewEngineWithMode creates an engine with a forced execution mode.
func NewEngineWithMode(nSimulations uint, seed uint64, mode ExecutionMode) *Engine {
	e := NewEngine(nSimulations, seed)
	switch mode {
	case ModeSequential, ModeParallel:
		e.mode = mode
	default:
		e.mode = ModeAuto
	}
	return e
}

// NewEngineFromConfig builds an engine from the loaded configuration.
func NewEngineFromConfig(cfg *config.Config) *Engine {
	e := NewEngineWithMode(cfg.Engine.NSimulations, cfg.Engine.Seed, ExecutionMode(cfg.Engine.ExecutionMode))
	if cfg.Engine.Workers > 0 {
		e.workers = cfg.Engine.Workers
	}
	e.retainPaths = cfg.Engine.RetainPaths
	return e
}

// RetainPaths controls whether PriceOption keeps the simulated grid on the
// result for diagnostics.
func (e *Engine) RetainPaths(keep bool) { e.retainPaths = keep }

// SimulatePaths simulates the engine's configured number of paths for the
// given option over nSteps time steps.
func (e *Engine) SimulatePaths(params OptionParams, nSteps uint) (*PriceGrid, error) {
	return simulate(params, e.nSimulations, nSteps, NewNormalSource(e.seed), e.workerCount(nSteps))
}

// PriceOption simulates paths and reduces them to a priced result.
func (e *Engine) PriceOption(params OptionParams, nSteps uint) (*PricingResult, error) {
	start := time.Now()

	workers := e.workerCount(nSteps)
	grid, err := simulate(params, e.nSimulations, nSteps, NewNormalSource(e.seed), workers)
	if err != nil {
		return nil, err
	}

	result, err := PriceFromGrid(params, grid)
	if err != nil {
		return nil, err
	}

	// A forced mode is echoed as configured; only auto reports the
	// effective schedule. workerCount can resolve a forced parallel mode to
	// one worker on a single-CPU host, and the grids are bit-identical
	// either way.
	result.Mode = e.mode
	if e.mode == ModeAuto {
		result.Mode = ModeSequential
		if workers > 1 {
			result.Mode = ModeParallel
		}
	}
	result.Elapsed = time.Since(start)
	if e.retainPaths {
		result.Grid = grid
	}

	logger.Debug.Printf("priced %s S0=%.4f K=%.4f: %.6f ± %.6f (%d paths, %d steps, %s, %s)",
		params.Type, params.S0, params.K, result.Price, result.StdError,
		e.nSimulations, nSteps, result.Mode, result.Elapsed)

	return result, nil
}

func (e *Engine) workerCount(nSteps uint) int {
	switch e.mode {
	case ModeSequential:
		return 1
	case ModeParallel:
		return e.workers
	default:
		if uint64(e.nSimulations)*uint64(nSteps) >= autoParallelThreshold {
			return e.workers
		}
		return 1
	}
}
