// Package linalg provides dense decimal vectors and matrices for the
// portfolio-optimization calculators.
//
// Every combining operation validates conformable dimensions first and
// returns [ErrDimension] on violation; inversion returns [ErrSingular]
// when a pivot collapses. Symmetry of covariance inputs is the caller's
// responsibility.
//
// Inversion is Gauss-Jordan with partial pivoting, which is adequate for
// the tens-of-assets matrices the calculators build; this package is not
// a general linear-algebra library and does not try to scale past that.
package linalg
