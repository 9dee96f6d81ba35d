package linalg

import "github.com/shopspring/decimal"

// divisionPrecision mirrors the kernel-wide decimal division rounding.
const divisionPrecision = 28

// Vector is a sequence of decimal values.
type Vector []decimal.Decimal

// NewVector builds a vector from decimal strings; it panics on malformed
// input, so it is meant for literals and tests.
func NewVector(values ...string) Vector {
	v := make(Vector, len(values))
	for i, s := range values {
		v[i] = decimal.RequireFromString(s)
	}
	return v
}

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// Dot returns the inner product of v and o.
func (v Vector) Dot(o Vector) (decimal.Decimal, error) {
	if len(v) != len(o) {
		return decimal.Decimal{}, &DimensionError{
			Op: "dot", LeftRows: len(v), LeftCols: 1, RightRows: len(o), RightCols: 1,
		}
	}
	sum := decimal.Zero
	for i := range v {
		sum = sum.Add(v[i].Mul(o[i]))
	}
	return sum.Round(divisionPrecision), nil
}

// Add returns the element-wise sum of v and o.
func (v Vector) Add(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, &DimensionError{
			Op: "add", LeftRows: len(v), LeftCols: 1, RightRows: len(o), RightCols: 1,
		}
	}
	r := make(Vector, len(v))
	for i := range v {
		r[i] = v[i].Add(o[i])
	}
	return r, nil
}

// Scale returns v multiplied element-wise by k.
func (v Vector) Scale(k decimal.Decimal) Vector {
	r := make(Vector, len(v))
	for i := range v {
		r[i] = v[i].Mul(k).Round(divisionPrecision)
	}
	return r
}
