package linalg

import "github.com/shopspring/decimal"

// pivotFloor is the magnitude below which a pivot is treated as zero and
// the matrix reported singular.
var pivotFloor = decimal.New(1, -10)

// Inverse returns the inverse of a square matrix via Gauss-Jordan
// elimination with partial pivoting: augment with the identity, pivot on
// the largest column magnitude, normalize, eliminate.
//
// Returns ErrDimension for non-square input and ErrSingular when the
// best available pivot falls below 1e-10.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, &DimensionError{
			Op: "inverse", LeftRows: m.rows, LeftCols: m.cols, RightRows: m.rows, RightCols: m.cols,
		}
	}
	n := m.rows
	a := m.Clone()
	inv := Identity(n)

	for col := 0; col < n; col++ {
		// Partial pivot: largest magnitude in this column at or below
		// the diagonal.
		pivotRow := col
		pivotMag := a.At(col, col).Abs()
		for r := col + 1; r < n; r++ {
			if mag := a.At(r, col).Abs(); mag.Cmp(pivotMag) > 0 {
				pivotRow = r
				pivotMag = mag
			}
		}
		if pivotMag.Cmp(pivotFloor) < 0 {
			return nil, ErrSingular
		}
		if pivotRow != col {
			a.swapRows(col, pivotRow)
			inv.swapRows(col, pivotRow)
		}

		// Normalize the pivot row.
		pivot := a.At(col, col)
		for j := 0; j < n; j++ {
			a.Set(col, j, a.At(col, j).DivRound(pivot, divisionPrecision))
			inv.Set(col, j, inv.At(col, j).DivRound(pivot, divisionPrecision))
		}

		// Eliminate the column from every other row.
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := a.At(r, col)
			if factor.IsZero() {
				continue
			}
			for j := 0; j < n; j++ {
				a.Set(r, j, a.At(r, j).Sub(factor.Mul(a.At(col, j))).Round(divisionPrecision))
				inv.Set(r, j, inv.At(r, j).Sub(factor.Mul(inv.At(col, j))).Round(divisionPrecision))
			}
		}
	}
	return inv, nil
}

// InverseDiagonal returns the inverse of a diagonal matrix in O(n),
// skipping elimination entirely. Off-diagonal entries are not inspected;
// the caller asserts diagonality (view-uncertainty matrices are built
// diagonal by construction).
func (m *Matrix) InverseDiagonal() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, &DimensionError{
			Op: "inversediagonal", LeftRows: m.rows, LeftCols: m.cols, RightRows: m.rows, RightCols: m.cols,
		}
	}
	inv := NewMatrix(m.rows, m.cols)
	one := decimal.New(1, 0)
	for i := 0; i < m.rows; i++ {
		d := m.At(i, i)
		if d.Abs().Cmp(pivotFloor) < 0 {
			return nil, ErrSingular
		}
		inv.Set(i, i, one.DivRound(d, divisionPrecision))
	}
	return inv, nil
}

func (m *Matrix) swapRows(r1, r2 int) {
	for j := 0; j < m.cols; j++ {
		m.data[r1*m.cols+j], m.data[r2*m.cols+j] = m.data[r2*m.cols+j], m.data[r1*m.cols+j]
	}
}
