// Package montecarlo prices European options by Monte Carlo simulation of a
// geometric Brownian motion price process under Black-Scholes-Merton
// assumptions. It returns a discounted price estimate together with its
// standard error and a 95% confidence interval, and exposes the closed-form
// Black-Scholes price as a reference.
package montecarlo
