package imghash

import "math"

// cosTable precomputes cos(π/N · (n+0.5) · k) for a length-N DCT-II.
// table[k][n] is the basis value for output coefficient k and input sample n.
func cosTable(n int) [][]float64 {
	table := make([][]float64, n)
	for k := 0; k < n; k++ {
		table[k] = make([]float64, n)
		for i := 0; i < n; i++ {
			table[k][i] = math.Cos(math.Pi / float64(n) * (float64(i) + 0.5) * float64(k))
		}
	}
	return table
}

// dct1D computes the unnormalized type-II discrete cosine transform
//
//	y_k = Σ x_n · cos(π/N · (n+0.5) · k)
//
// No √(2/N) scaling is applied: only the ordering of coefficients relative
// to their median matters downstream, not absolute magnitude.
func dct1D(x []float64, table [][]float64) []float64 {
	y := make([]float64, len(x))
	for k := range x {
		var sum float64
		row := table[k]
		for n, v := range x {
			sum += v * row[n]
		}
		y[k] = sum
	}
	return y
}

// dct2D applies the 1D DCT-II separably: every column first, then every row
// of the intermediate. The order is part of the hash contract. Floating-point
// addition is not associative, so swapping it would perturb low-order bits
// and with them the fingerprint.
func dct2D(m matrix) matrix {
	colTable := cosTable(m.rows)
	inter := newMatrix(m.cols, m.rows)
	col := make([]float64, m.rows)
	for c := 0; c < m.cols; c++ {
		for r := 0; r < m.rows; r++ {
			col[r] = m.at(r, c)
		}
		for r, v := range dct1D(col, colTable) {
			inter.set(r, c, v)
		}
	}

	rowTable := cosTable(m.cols)
	out := newMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		row := inter.data[r*m.cols : (r+1)*m.cols]
		copy(out.data[r*m.cols:(r+1)*m.cols], dct1D(row, rowTable))
	}
	return out
}
