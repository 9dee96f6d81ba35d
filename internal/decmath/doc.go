// Package decmath provides transcendental math over exact base-10 decimals.
//
// Every function operates on [decimal.Decimal] values and is built from
// decimal arithmetic alone; no float64 appears in any computation path, so
// identical inputs produce identical output bit patterns on every platform:
//
//   - [Sqrt]: Newton's method, fixed 20 iterations
//   - [Exp]: Taylor series with halving/squaring range reduction
//   - [Ln]: Newton's method inverting [Exp]
//   - [Cos], [Sinh], [Cosh], [Acosh]: series and exponential identities
//   - [NormPDF], [NormCDF], [NormInvCDF]: normal distribution functions
//   - [PowFrac]: binomial-series fractional exponentiation
//
// # Determinism
//
// Iteration budgets are fixed and unconditional (no early exits, no
// adaptive stopping), and every division rounds at [DivisionPrecision]
// digits. Worst-case latency is therefore bounded and results are
// bit-reproducible, which matters more here than shaving iterations:
// the consumers are monetary and regulatory calculations that must be
// auditable long after they ran.
//
// # Thread safety
//
// All functions are pure and share no state; they are safe to call
// concurrently without synchronization.
package decmath
