// Package solve finds the internal rate of return of a cash-flow series.
//
// A single Newton-Raphson solver replaces the per-product yield loops the
// calculators used to carry; each call site passes a [Config] with its own
// iteration ceiling, tolerance and rate clamp band. Discount factors are
// accumulated by repeated multiplication rather than a general power
// routine so transcendental-approximation error never enters a valuation.
//
// Callers own domain validation: the series must hold at least two flows
// and open with an outflow (negative amount) for the root to be
// economically meaningful.
package solve
