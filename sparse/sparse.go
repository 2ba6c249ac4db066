/*
Package sparse implements a simple type for sparse count matrices.
It is mainly used for lexical rule counts (pre-terminal × word), where only
a tiny fraction of all combinations is ever observed.

Rows are dense, i.e. a matrix is created for a fixed number of rows, which
is known once the symbol indexer is frozen. Every row holds its non-null
entries sorted by column, a row-wise variant of the COO algorithm (a.k.a.
triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// CountMatrix is a type for a sparse matrix of int64 counts. Construct with
//
//     M := NewCountMatrix(10, 100)
//
// Now
//
//     M.Add(2, 3, 1)                 // count an occurence at (2,3)
//     M.Add(2, 3, 4)                 // and 4 more
//     v := M.Value(2, 3)             // returns 5
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(9, 99)             // returns 0
//
// Counts cannot be decremented. CountMatrix is not safe for concurrent use.
type CountMatrix struct {
	rows   [][]cell
	colcnt int
	count  int
}

// Cells of a row, sorted by column
type cell struct {
	col   int
	value int64
}

// NewCountMatrix creates a new matrix for counts, size m x n.
func NewCountMatrix(m, n int) *CountMatrix {
	return &CountMatrix{
		rows:   make([][]cell, m),
		colcnt: n,
	}
}

// M returns the row count.
func (m *CountMatrix) M() int {
	return len(m.rows)
}

// N returns the column count.
func (m *CountMatrix) N() int {
	return m.colcnt
}

// ValueCount returns the number of non-null values in the matrix.
func (m *CountMatrix) ValueCount() int {
	return m.count
}

// Value returns the count at position (i,j).
func (m *CountMatrix) Value(i, j int) int64 {
	m.checkBounds(i, j)
	row := m.rows[i]
	if k := search(row, j); k < len(row) && row[k].col == j {
		return row[k].value
	}
	return 0
}

// Add adds n to the count at position (i,j).
func (m *CountMatrix) Add(i, j int, n int64) *CountMatrix {
	m.checkBounds(i, j)
	if n < 0 {
		panic(fmt.Sprintf("sparse.CountMatrix.Add() with negative count: %d", n))
	}
	row := m.rows[i]
	k := search(row, j)
	if k < len(row) && row[k].col == j { // value already present
		row[k].value += n
		return m
	}
	// the following 3 lines have to work for k being the right edge of the row or not
	row = append(row, cell{}) // make room
	copy(row[k+1:], row[k:])  // copy remainder values one index to right
	row[k] = cell{col: j, value: n}
	m.rows[i] = row
	m.count++
	return m
}

// RowSum returns the sum of all counts in row i.
func (m *CountMatrix) RowSum(i int) int64 {
	var sum int64
	for _, c := range m.rows[i] {
		sum += c.value
	}
	return sum
}

// EachInRow calls f for every non-null value of row i, in ascending column order.
func (m *CountMatrix) EachInRow(i int, f func(j int, value int64)) {
	for _, c := range m.rows[i] {
		f(c.col, c.value)
	}
}

// Each calls f for every non-null value of the matrix, row by row.
func (m *CountMatrix) Each(f func(i, j int, value int64)) {
	for i, row := range m.rows {
		for _, c := range row {
			f(i, c.col, c.value)
		}
	}
}

// Merge adds all the counts of other to m. Both matrices must have equal size.
func (m *CountMatrix) Merge(other *CountMatrix) *CountMatrix {
	if other.M() != m.M() || other.N() != m.N() {
		panic(fmt.Sprintf("sparse.CountMatrix.Merge() with different sizes: %dx%d vs %dx%d",
			m.M(), m.N(), other.M(), other.N()))
	}
	other.Each(func(i, j int, value int64) {
		m.Add(i, j, value)
	})
	return m
}

func (m *CountMatrix) checkBounds(i, j int) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.CountMatrix index out of range: (%d,%d) not in %dx%d",
			i, j, len(m.rows), m.colcnt))
	}
}

func search(row []cell, j int) int {
	return sort.Search(len(row), func(k int) bool {
		return row[k].col >= j
	})
}
