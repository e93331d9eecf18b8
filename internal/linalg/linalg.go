// Package linalg holds small gonum helpers shared by the taxonomy, the
// expression compiler and the CLI.
package linalg

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Eye returns the n by n identity matrix.
func Eye(n int) *mat.DiagDense {
	data := make([]float64, n)
	for i := range data {
		data[i] = 1
	}
	return mat.NewDiagDense(n, data)
}

// IsZero reports whether every entry of v is zero.
func IsZero(v mat.Vector) bool {
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) != 0 {
			return false
		}
	}
	return true
}

// CloneVec returns a dense copy of v.
func CloneVec(v mat.Vector) *mat.VecDense {
	var res mat.VecDense
	res.CloneFromVec(v)
	return &res
}

// FromRows builds a dense matrix from equally long rows.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("linalg: empty matrix")
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("linalg: row %d has %d entries, want %d", i+1, len(row), c)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), c, data), nil
}

// ParseVector parses a comma separated list such as "1, 2.5, -3".
func ParseVector(s string) (*mat.VecDense, error) {
	fields := strings.Split(s, ",")
	data := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("linalg: %q is not a number", f)
		}
		data = append(data, v)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("linalg: empty vector")
	}
	return mat.NewVecDense(len(data), data), nil
}
