// Package linalg provides small dense column-major matrix containers
// used by measurement accumulators.
package linalg

import "fmt"

// Matrix is a dense column-major matrix of float64 elements. The
// element (i, j) is stored at data[i + j*ld]. The leading dimension
// equals the number of rows for a freshly allocated matrix.
type Matrix struct {
	rows int
	cols int
	ld   int
	data []float64
}

// NewMatrix allocates a zero-initialized rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("linalg: invalid matrix size %d x %d", rows, cols))
	}

	return &Matrix{
		rows: rows,
		cols: cols,
		ld:   rows,
		data: make([]float64, rows*cols),
	}
}

// NewSquareMatrix allocates a zero-initialized n x n matrix.
func NewSquareMatrix(n int) *Matrix {
	return NewMatrix(n, n)
}

// NrRows returns the number of rows.
func (m *Matrix) NrRows() int {
	return m.rows
}

// NrCols returns the number of columns.
func (m *Matrix) NrCols() int {
	return m.cols
}

// LeadingDimension returns the stride between consecutive columns.
func (m *Matrix) LeadingDimension() int {
	return m.ld
}

// Data exposes the backing storage. Element (i, j) lives at
// index i + j*LeadingDimension().
func (m *Matrix) Data() []float64 {
	return m.data
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	m.boundsCheck(i, j)
	return m.data[i+j*m.ld]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.boundsCheck(i, j)
	m.data[i+j*m.ld] = v
}

// AddAt adds v to the element at row i, column j.
func (m *Matrix) AddAt(i, j int, v float64) {
	m.boundsCheck(i, j)
	m.data[i+j*m.ld] += v
}

// Clear sets every element to zero.
func (m *Matrix) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Scale multiplies every element by alpha.
func (m *Matrix) Scale(alpha float64) {
	for i := range m.data {
		m.data[i] *= alpha
	}
}

// Add accumulates other into m element-wise. The two matrices must
// have the same size.
func (m *Matrix) Add(other *Matrix) {
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Sprintf("linalg: size mismatch %dx%d += %dx%d",
			m.rows, m.cols, other.rows, other.cols))
	}

	for j := 0; j < m.cols; j++ {
		for i := 0; i < m.rows; i++ {
			m.data[i+j*m.ld] += other.data[i+j*other.ld]
		}
	}
}

func (m *Matrix) boundsCheck(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("linalg: index (%d, %d) out of range %d x %d",
			i, j, m.rows, m.cols))
	}
}
