package main

// Mat is a dense 2D matrix of float64 cells. The voxel grid fixes its
// random heights in one of these at layout time, so the per-frame update
// only reads.
type Mat struct {
	cells []float64
	cols  int
	rows  int
}

func NewMat(cols int, rows int) Mat {
	m := Mat{}
	m.cols = cols
	m.rows = rows
	m.cells = make([]float64, cols*rows)
	return m
}

func (m *Mat) Set(x int, y int, val float64) {
	m.cells[y*m.cols+x] = val
}

func (m *Mat) Get(x int, y int) float64 {
	return m.cells[y*m.cols+x]
}

func (m *Mat) InBounds(x int, y int) bool {
	return x >= 0 && y >= 0 && x < m.cols && y < m.rows
}

func (m *Mat) Size() (cols int, rows int) {
	return m.cols, m.rows
}
