package linalg

import "fmt"

// MatrixView is a non-owning window into a Matrix. Reads and writes
// through the view alias the parent storage. The view keeps the
// parent's leading dimension, so a block that skips rows still walks
// columns with the original stride.
type MatrixView struct {
	rows int
	cols int
	ld   int
	data []float64
}

// View returns a view covering the whole of m.
func View(m *Matrix) MatrixView {
	return MatrixView{
		rows: m.rows,
		cols: m.cols,
		ld:   m.ld,
		data: m.data,
	}
}

// ViewFrom returns a view of m starting at row deltaI, column deltaJ
// and extending to the bottom-right corner. Offsets equal to the
// matrix size yield an empty view.
func ViewFrom(m *Matrix, deltaI, deltaJ int) MatrixView {
	if deltaI < 0 || deltaI > m.rows || deltaJ < 0 || deltaJ > m.cols {
		panic(fmt.Sprintf("linalg: view offset (%d, %d) out of range %d x %d",
			deltaI, deltaJ, m.rows, m.cols))
	}

	return MatrixView{
		rows: m.rows - deltaI,
		cols: m.cols - deltaJ,
		ld:   m.ld,
		data: m.data[deltaI+deltaJ*m.ld:],
	}
}

// ViewBlock returns a view of the ni x nj block of m whose top-left
// element is (deltaI, deltaJ).
func ViewBlock(m *Matrix, deltaI, deltaJ, ni, nj int) MatrixView {
	if ni < 0 || nj < 0 || deltaI < 0 || deltaJ < 0 ||
		deltaI+ni > m.rows || deltaJ+nj > m.cols {
		panic(fmt.Sprintf(
			"linalg: block (%d, %d)+%dx%d out of range %d x %d",
			deltaI, deltaJ, ni, nj, m.rows, m.cols))
	}

	return MatrixView{
		rows: ni,
		cols: nj,
		ld:   m.ld,
		data: m.data[deltaI+deltaJ*m.ld:],
	}
}

// Block returns a sub-view of v with the same aliasing rules as
// ViewBlock.
func (v MatrixView) Block(deltaI, deltaJ, ni, nj int) MatrixView {
	if ni < 0 || nj < 0 || deltaI < 0 || deltaJ < 0 ||
		deltaI+ni > v.rows || deltaJ+nj > v.cols {
		panic(fmt.Sprintf(
			"linalg: block (%d, %d)+%dx%d out of range %d x %d",
			deltaI, deltaJ, ni, nj, v.rows, v.cols))
	}

	return MatrixView{
		rows: ni,
		cols: nj,
		ld:   v.ld,
		data: v.data[deltaI+deltaJ*v.ld:],
	}
}

// NrRows returns the number of rows covered by the view.
func (v MatrixView) NrRows() int {
	return v.rows
}

// NrCols returns the number of columns covered by the view.
func (v MatrixView) NrCols() int {
	return v.cols
}

// LeadingDimension returns the column stride of the parent storage.
func (v MatrixView) LeadingDimension() int {
	return v.ld
}

// Data exposes the storage window starting at the view's origin.
func (v MatrixView) Data() []float64 {
	return v.data
}

// At returns the element at row i, column j of the view.
func (v MatrixView) At(i, j int) float64 {
	v.boundsCheck(i, j)
	return v.data[i+j*v.ld]
}

// Set stores x at row i, column j of the view, writing through to the
// parent matrix.
func (v MatrixView) Set(i, j int, x float64) {
	v.boundsCheck(i, j)
	v.data[i+j*v.ld] = x
}

func (v MatrixView) boundsCheck(i, j int) {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		panic(fmt.Sprintf("linalg: index (%d, %d) out of range %d x %d",
			i, j, v.rows, v.cols))
	}
}
