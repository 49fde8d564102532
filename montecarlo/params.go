package montecarlo

import "fmt"

// OptionType identifies the payoff direction of a European option.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// OptionParams holds the Black-Scholes-Merton inputs for a European option.
// It is a read-only value object; pricing never mutates it.
type OptionParams struct {
	S0    float64    // initial asset price
	K     float64    // strike price
	T     float64    // time to maturity in years
	R     float64    // continuously-compounded risk-free rate
	Sigma float64    // annualized volatility of log-returns
	Type  OptionType // call or put
}

// Validate checks the pricing preconditions: S0, K and T strictly positive,
// Sigma non-negative, Type one of call/put. The rate R may be negative.
func (p OptionParams) Validate() error {
	if p.S0 <= 0 {
		return fmt.Errorf("%w: initial price S0 must be > 0, got %g", ErrInvalidParameter, p.S0)
	}
	if p.K <= 0 {
		return fmt.Errorf("%w: strike K must be > 0, got %g", ErrInvalidParameter, p.K)
	}
	if p.T <= 0 {
		return fmt.Errorf("%w: time to maturity T must be > 0, got %g", ErrInvalidParameter, p.T)
	}
	if p.Sigma < 0 {
		return fmt.Errorf("%w: volatility sigma must be >= 0, got %g", ErrInvalidParameter, p.Sigma)
	}
	if p.Type != Call && p.Type != Put {
		return fmt.Errorf("%w: option type must be %q or %q, got %q", ErrInvalidParameter, Call, Put, p.Type)
	}
	return nil
}
