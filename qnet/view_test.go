package qnet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qroute/qnet"
)

// diamond builds 0→1→3 and 0→2→3 with the given capacities in edge order
// (0→1, 1→3, 0→2, 2→3).
func diamond(t *testing.T, caps [4]float64) *qnet.Network {
	t.Helper()
	net, err := qnet.NewFromWeights(qnet.WeightVector{
		{From: 0, To: 1, Capacity: caps[0]},
		{From: 1, To: 3, Capacity: caps[1]},
		{From: 0, To: 2, Capacity: caps[2]},
		{From: 2, To: 3, Capacity: caps[3]},
	})
	require.NoError(t, err)

	return net
}

func targets(refs []qnet.EdgeRef) []qnet.NodeID {
	out := make([]qnet.NodeID, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.To)
	}

	return out
}

func TestView_OutEdges(t *testing.T) {
	net := diamond(t, [4]float64{1, 2, 3, 4})
	v := net.NewView()

	require.Equal(t, []qnet.NodeID{1, 2}, targets(v.OutEdges(0)))
	require.Empty(t, v.OutEdges(3), "sink has no outgoing edges")
	require.Empty(t, v.OutEdges(9), "unknown node yields nothing")
}

func TestView_DisableEdge(t *testing.T) {
	net := diamond(t, [4]float64{1, 2, 3, 4})
	v := net.NewView()

	refs := v.OutEdges(0)
	v.DisableEdge(refs[0].Index) // hide 0→1
	require.Equal(t, []qnet.NodeID{2}, targets(v.OutEdges(0)))

	// The network itself is untouched.
	require.Equal(t, 4, net.NumEdges())
	fresh := net.NewView()
	require.Len(t, fresh.OutEdges(0), 2)
}

func TestView_DisableNode(t *testing.T) {
	net := diamond(t, [4]float64{1, 2, 3, 4})
	v := net.NewView()

	v.DisableNode(1)
	require.False(t, v.NodeEnabled(1))
	require.Equal(t, []qnet.NodeID{2}, targets(v.OutEdges(0)), "edges into a disabled node are hidden")
	require.Empty(t, v.OutEdges(1), "edges out of a disabled node are hidden")
}

func TestView_Clone(t *testing.T) {
	net := diamond(t, [4]float64{1, 2, 3, 4})
	v := net.NewView()
	v.DisableNode(2)

	c := v.Clone()
	require.False(t, c.NodeEnabled(2), "clone inherits masks")

	c.DisableNode(1)
	require.True(t, v.NodeEnabled(1), "clone is independent of the original")
}

func TestView_CapacitiesStayLive(t *testing.T) {
	// Views must read residual capacities through to the live arena.
	net := diamond(t, [4]float64{5, 5, 5, 5})
	v := net.NewView()

	require.NoError(t, net.ReservePath(0, []qnet.NodeID{1, 3}, 2))
	refs := v.OutEdges(0)
	require.Equal(t, 3.0, refs[0].Capacity)
	require.Equal(t, 5.0, refs[1].Capacity)
}

func TestView_DisableMinCapacityEdge_FirstOccurrenceTie(t *testing.T) {
	// Capacities along 0→1→2→3 are [2, 1, 1]: both 1s tie, the earlier
	// edge along the path must be the one disabled.
	net, err := qnet.NewFromWeights(qnet.WeightVector{
		{From: 0, To: 1, Capacity: 2},
		{From: 1, To: 2, Capacity: 1},
		{From: 2, To: 3, Capacity: 1},
	})
	require.NoError(t, err)
	v := net.NewView()

	require.NoError(t, v.DisableMinCapacityEdge(0, []qnet.NodeID{1, 2, 3}))
	require.Empty(t, v.OutEdges(1), "1→2 is the first minimum along the path")
	require.Len(t, v.OutEdges(2), 1, "2→3 stays enabled")
}
