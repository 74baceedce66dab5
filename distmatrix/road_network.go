package distmatrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/vrp/core"
	"github.com/katalvlaran/vrp/dijkstra"
)

// ErrVertexMapping is returned by FromRoadNetwork when vertexOf does not
// cover every matrix index.
var ErrVertexMapping = errors.New("distmatrix: vertexOf must map every index in [0, n)")

// FromRoadNetwork builds an n×n travel-distance matrix by running
// Dijkstra's algorithm from every customer's vertex over a weighted road
// network graph, instead of assuming straight-line travel. vertexOf maps
// matrix index i (a customer id) to the graph vertex ID it is located at;
// it must be defined for every i in [0, n). Unlike FromCustomers the
// resulting matrix is generally asymmetric (one-way streets, turn
// restrictions) and any pair with no path is left at math.Inf(1).
func FromRoadNetwork(g *core.Graph, n int, vertexOf func(i int) string) (Matrix, error) {
	m, err := New(n)
	if err != nil {
		return Matrix{}, err
	}

	vertices := make([]string, n)
	for i := 0; i < n; i++ {
		vertices[i] = vertexOf(i)
		if vertices[i] == "" {
			return Matrix{}, fmt.Errorf("%w: index %d", ErrVertexMapping, i)
		}
	}

	for i := 0; i < n; i++ {
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(vertices[i]))
		if err != nil {
			return Matrix{}, fmt.Errorf("distmatrix: shortest paths from %q: %w", vertices[i], err)
		}

		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d, ok := dist[vertices[j]]
			if !ok || d == math.MaxInt64 {
				m.data[i*n+j] = math.Inf(1)
				continue
			}
			m.data[i*n+j] = float64(d)
		}
	}

	return m, nil
}
