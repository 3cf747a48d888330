package stateindex_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trajinfer/stateindex"
)

func TestNew_BadClusterCount(t *testing.T) {
	for _, k := range []int{0, -3} {
		_, err := stateindex.New(k)
		assert.ErrorIs(t, err, stateindex.ErrBadClusterCount, "k=%d", k)
	}
}

// TestState_Bijection checks symmetry and that every slot in
// [0, K(K+1)/2) is hit exactly once, for a range of K.
func TestState_Bijection(t *testing.T) {
	for k := 1; k <= 12; k++ {
		t.Run(fmt.Sprintf("K=%d", k), func(t *testing.T) {
			idx, err := stateindex.New(k)
			require.NoError(t, err)
			require.Equal(t, k*(k+1)/2, idx.NumStates())

			seen := make(map[int]bool, idx.NumStates())
			for i := 0; i < k; i++ {
				for j := 0; j < k; j++ {
					s := idx.State(i, j)
					assert.Equal(t, s, idx.State(j, i))
					if i <= j {
						assert.False(t, seen[s], "slot %d reused by (%d,%d)", s, i, j)
						seen[s] = true
						p, err := idx.Pair(s)
						require.NoError(t, err)
						assert.Equal(t, stateindex.Pair{I: i, J: j}, p)
					}
				}
			}
			for s := 0; s < idx.NumStates(); s++ {
				assert.True(t, seen[s], "slot %d never assigned", s)
			}
		})
	}
}

func TestState_RowMajorLayout(t *testing.T) {
	idx, err := stateindex.New(3)
	require.NoError(t, err)

	want := [][]int{
		{0, 1, 2},
		{1, 3, 4},
		{2, 4, 5},
	}
	for i, row := range want {
		for j, s := range row {
			assert.Equal(t, s, idx.State(i, j), "(%d,%d)", i, j)
		}
	}
	assert.Equal(t, []int{1, 2, 4}, idx.EdgeStates())
}

func TestEdgeStates_PairsAreEdges(t *testing.T) {
	idx, _ := stateindex.New(4)
	states := idx.EdgeStates()
	require.Len(t, states, 6)
	for _, s := range states {
		p, err := idx.Pair(s)
		require.NoError(t, err)
		assert.True(t, p.IsEdge(), "state %d", s)
		assert.Less(t, p.I, p.J)
	}

	single, _ := stateindex.New(1)
	assert.Empty(t, single.EdgeStates())
}

func TestPair_OutOfRange(t *testing.T) {
	idx, _ := stateindex.New(3)

	for _, s := range []int{-1, 6} {
		_, err := idx.Pair(s)
		assert.ErrorIs(t, err, stateindex.ErrOutOfRange, "state %d", s)
	}
}
