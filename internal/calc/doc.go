// Package calc implements the financial calculators built on the decimal
// kernel (decmath, solve, linalg).
//
// Every calculator follows the same shape: a validated input struct, a
// Compute method running the formula, and an annotated result struct.
// Convergence failures inside a product that has a sensible fallback
// (private credit substitutes the nominal coupon) are downgraded to a
// warning on the result; products without one propagate the typed error.
package calc
