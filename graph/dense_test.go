package graph_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tspbrute/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDense_RoundTrip(t *testing.T) {
	g := graph.MustNew(triangle)

	d := g.Dense()
	require.NotNil(t, d)
	r, c := d.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	assert.Equal(t, 3.0, d.At(1, 2))

	back, err := graph.FromDense(d)
	require.NoError(t, err)
	assert.Equal(t, g.Rows(), back.Rows())
}

func TestDense_ZeroOrder(t *testing.T) {
	var g graph.Graph
	assert.Nil(t, g.Dense())
}

func TestFromDense_Rejects(t *testing.T) {
	tests := []struct {
		name string
		m    mat.Matrix
		want error
	}{
		{"nil", nil, graph.ErrEmpty},
		{"nonsquare", mat.NewDense(2, 3, []float64{0, 1, 1, 1, 0, 1}), graph.ErrNonSquare},
		{"fraction", mat.NewDense(2, 2, []float64{0, 1.5, 1, 0}), graph.ErrNonIntegral},
		{"nan", mat.NewDense(2, 2, []float64{0, math.NaN(), 1, 0}), graph.ErrNonIntegral},
		{"inf", mat.NewDense(2, 2, []float64{0, math.Inf(1), 1, 0}), graph.ErrNonIntegral},
		{"diagonal", mat.NewDense(2, 2, []float64{1, 1, 1, 0}), graph.ErrNonZeroDiagonal},
		{"negative", mat.NewDense(2, 2, []float64{0, -2, 1, 0}), graph.ErrNegativeWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.FromDense(tc.m)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, graph.ErrInvalidArgument)
		})
	}
}

func TestFromDense_Symmetric(t *testing.T) {
	s := mat.NewSymDense(3, []float64{
		0, 4, 9,
		4, 0, 2,
		9, 2, 0,
	})
	g, err := graph.FromDense(s)
	require.NoError(t, err)
	assert.True(t, g.IsSymmetric())
	assert.Equal(t, 9, g.At(2, 0))
}
