package linalg

import "github.com/shopspring/decimal"

// Matrix is a rectangular grid of decimal values in row-major storage.
type Matrix struct {
	rows, cols int
	data       []decimal.Decimal
}

// NewMatrix returns a zero-valued rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	data := make([]decimal.Decimal, rows*cols)
	for i := range data {
		data[i] = decimal.Zero
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// NewMatrixFromRows builds a matrix from decimal-string rows; it panics
// on ragged or malformed input, so it is meant for literals and tests.
func NewMatrixFromRows(rows ...[]string) *Matrix {
	if len(rows) == 0 {
		return NewMatrix(0, 0)
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.cols {
			panic("linalg: ragged rows")
		}
		for j, s := range row {
			m.Set(i, j, decimal.RequireFromString(s))
		}
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, decimal.New(1, 0))
	}
	return m
}

// Diagonal returns a square matrix with v on the diagonal.
func Diagonal(v Vector) *Matrix {
	m := NewMatrix(len(v), len(v))
	for i, d := range v {
		m.Set(i, i, d)
	}
	return m
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the value at row r, column c.
func (m *Matrix) At(r, c int) decimal.Decimal { return m.data[r*m.cols+c] }

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v decimal.Decimal) { m.data[r*m.cols+c] = v }

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Transpose returns m with rows and columns exchanged.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.Set(j, i, m.At(i, j))
		}
	}
	return t
}

// Add returns the element-wise sum of m and o.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return nil, &DimensionError{
			Op: "add", LeftRows: m.rows, LeftCols: m.cols, RightRows: o.rows, RightCols: o.cols,
		}
	}
	r := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i].Add(o.data[i])
	}
	return r, nil
}

// Scale returns m multiplied element-wise by k.
func (m *Matrix) Scale(k decimal.Decimal) *Matrix {
	r := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i].Mul(k).Round(divisionPrecision)
	}
	return r
}

// Mul returns the matrix product m * o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.cols != o.rows {
		return nil, &DimensionError{
			Op: "mul", LeftRows: m.rows, LeftCols: m.cols, RightRows: o.rows, RightCols: o.cols,
		}
	}
	r := NewMatrix(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			sum := decimal.Zero
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.At(i, k).Mul(o.At(k, j)))
			}
			r.Set(i, j, sum.Round(divisionPrecision))
		}
	}
	return r, nil
}

// MulTranspose returns m * o-transpose without materializing the
// transpose, the common case when combining view matrices.
func (m *Matrix) MulTranspose(o *Matrix) (*Matrix, error) {
	if m.cols != o.cols {
		return nil, &DimensionError{
			Op: "multranspose", LeftRows: m.rows, LeftCols: m.cols, RightRows: o.rows, RightCols: o.cols,
		}
	}
	r := NewMatrix(m.rows, o.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.rows; j++ {
			sum := decimal.Zero
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.At(i, k).Mul(o.At(j, k)))
			}
			r.Set(i, j, sum.Round(divisionPrecision))
		}
	}
	return r, nil
}

// MulVec returns the matrix-vector product m * v.
func (m *Matrix) MulVec(v Vector) (Vector, error) {
	if m.cols != len(v) {
		return nil, &DimensionError{
			Op: "mulvec", LeftRows: m.rows, LeftCols: m.cols, RightRows: len(v), RightCols: 1,
		}
	}
	r := make(Vector, m.rows)
	for i := 0; i < m.rows; i++ {
		sum := decimal.Zero
		for k := 0; k < m.cols; k++ {
			sum = sum.Add(m.At(i, k).Mul(v[k]))
		}
		r[i] = sum.Round(divisionPrecision)
	}
	return r, nil
}
