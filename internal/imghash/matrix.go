package imghash

import "fmt"

// matrix is a dense row-major grid of float64 samples. A single flat buffer
// with explicit index arithmetic keeps the transform loops on contiguous
// memory instead of chasing per-row slices.
type matrix struct {
	cols, rows int
	data       []float64
}

func newMatrix(cols, rows int) matrix {
	return matrix{cols: cols, rows: rows, data: make([]float64, cols*rows)}
}

// newMatrixFromBytes widens a row-major intensity buffer into a float64
// matrix, one sample per byte, no scaling. The buffer length must be exactly
// cols*rows: anything else is a bug in the caller, not a runtime condition.
func newMatrixFromBytes(buf []uint8, cols, rows int) matrix {
	if len(buf) != cols*rows {
		panic(fmt.Sprintf("imghash: intensity buffer has %d samples, want %d (%dx%d)",
			len(buf), cols*rows, cols, rows))
	}
	m := newMatrix(cols, rows)
	for i, v := range buf {
		m.data[i] = float64(v)
	}
	return m
}

func (m matrix) at(row, col int) float64 {
	return m.data[row*m.cols+col]
}

func (m matrix) set(row, col int, v float64) {
	m.data[row*m.cols+col] = v
}

// crop returns the top-left rows×cols sub-block as a new matrix,
// preserving row and column order.
func (m matrix) crop(cols, rows int) matrix {
	out := newMatrix(cols, rows)
	for r := 0; r < rows; r++ {
		copy(out.data[r*cols:(r+1)*cols], m.data[r*m.cols:r*m.cols+cols])
	}
	return out
}
