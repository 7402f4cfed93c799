package core

// Matrix is a 4×4 affine transform stored row-major. Composition is
// left-multiplication: the transform applied last is the leftmost factor.
type Matrix [4][4]float64

// Identity is the 4×4 identity matrix.
var Identity = Matrix{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// NewMatrix creates a matrix from 16 row-major values.
func NewMatrix(values [16]float64) Matrix {
	var m Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[row][col] = values[row*4+col]
		}
	}
	return m
}

// Multiply returns the matrix product m × other.
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple applies the transform to a tuple.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// submatrix returns the 3×3 matrix left after removing the given row and column.
func (m Matrix) submatrix(dropRow, dropCol int) [3][3]float64 {
	var sub [3][3]float64
	subRow := 0
	for row := 0; row < 4; row++ {
		if row == dropRow {
			continue
		}
		subCol := 0
		for col := 0; col < 4; col++ {
			if col == dropCol {
				continue
			}
			sub[subRow][subCol] = m[row][col]
			subCol++
		}
		subRow++
	}
	return sub
}

func determinant3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// cofactor returns the signed minor for the given element.
func (m Matrix) cofactor(row, col int) float64 {
	minor := determinant3(m.submatrix(row, col))
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant via cofactor expansion along row 0.
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the matrix has an inverse.
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse via the adjugate, or ErrNonInvertibleTransform
// if the matrix is singular.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrNonInvertibleTransform
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed assignment folds the adjugate transpose in.
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equal reports whether two matrices are equal within Epsilon.
func (m Matrix) Equal(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}
