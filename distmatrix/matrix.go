// Package distmatrix provides a dense row-major distance/travel-time
// matrix — the one shared lookup every other package in this module reads
// from. Immutable once built, except through Set for callers constructing
// a matrix by hand (e.g. asymmetric travel times).
package distmatrix

import (
	"errors"
	"math"

	"github.com/katalvlaran/vrp/model"
)

// Errors returned by matrix construction and access.
var (
	// ErrNegativeSize is returned when a matrix is constructed with a
	// negative size.
	ErrNegativeSize = errors.New("distmatrix: size must be non-negative")
	// ErrDimensionMismatch is returned when FromData receives a data slice
	// whose length does not equal size*size.
	ErrDimensionMismatch = errors.New("distmatrix: data length must equal size*size")
	// ErrIndexOutOfRange is returned by Set, and is the value Get panics
	// with, when an index is outside [0, size).
	ErrIndexOutOfRange = errors.New("distmatrix: index out of range")
)

// symTol is the value exported as DefaultSymTol; IsSymmetric itself always
// takes its tolerance as an argument.
const symTol = 1e-9

// Matrix is a dense n×n row-major matrix of travel distances (or times).
// Get(i,i) is always 0 regardless of stored data, matching the convention
// that self-distance is always zero.
type Matrix struct {
	size int
	data []float64
}

// New returns a zero-filled n×n matrix. Fails if size is negative.
func New(size int) (Matrix, error) {
	if size < 0 {
		return Matrix{}, ErrNegativeSize
	}
	return Matrix{size: size, data: make([]float64, size*size)}, nil
}

// FromData wraps a pre-computed row-major slice. Fails if len(data) !=
// size*size.
func FromData(size int, data []float64) (Matrix, error) {
	if size < 0 {
		return Matrix{}, ErrNegativeSize
	}
	if len(data) != size*size {
		return Matrix{}, ErrDimensionMismatch
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return Matrix{size: size, data: cp}, nil
}

// FromCustomers builds a Euclidean distance matrix over customers, where
// index i in the matrix corresponds to customers[i]. The matrix is
// symmetric by construction (only the upper triangle is computed and then
// mirrored).
func FromCustomers(customers []model.Customer) Matrix {
	n := len(customers)
	m, _ := New(n) // n >= 0 by construction (len never negative)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := customers[i].DistanceTo(customers[j])
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}
	return m
}

// Size returns the matrix's dimension n.
func (m Matrix) Size() int { return m.size }

// Get returns the distance from i to j. Get(i,i) is always 0. Panics if i
// or j is out of range — callers are expected to index with values drawn
// from customer ids that were validated against this matrix's size at
// construction time; an out-of-range index here is a programmer error,
// not a runtime feasibility condition.
func (m Matrix) Get(i, j int) float64 {
	if i == j {
		return 0
	}
	if i < 0 || i >= m.size || j < 0 || j >= m.size {
		panic(ErrIndexOutOfRange)
	}
	return m.data[i*m.size+j]
}

// Set assigns the distance from i to j. Returns ErrIndexOutOfRange instead
// of panicking, since Set is typically called while a matrix is still
// being assembled by a caller who should be able to recover from a bad
// index.
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.size || j < 0 || j >= m.size {
		return ErrIndexOutOfRange
	}
	m.data[i*m.size+j] = v
	return nil
}

// IsSymmetric reports whether |Get(i,j) - Get(j,i)| <= tol for every pair.
func (m Matrix) IsSymmetric(tol float64) bool {
	for i := 0; i < m.size; i++ {
		for j := i + 1; j < m.size; j++ {
			if math.Abs(m.Get(i, j)-m.Get(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// DefaultSymTol is the tolerance used by tests and callers that do not
// have a domain-specific precision requirement.
const DefaultSymTol = symTol

// NearestNeighbor returns the candidate in candidates closest to from, or
// (-1, false) if candidates is empty.
func (m Matrix) NearestNeighbor(from int, candidates []int) (int, bool) {
	if len(candidates) == 0 {
		return -1, false
	}
	best := candidates[0]
	bestDist := m.Get(from, best)
	for _, c := range candidates[1:] {
		d := m.Get(from, c)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best, true
}
