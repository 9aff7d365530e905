package alloc_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qroute/alloc"
	"github.com/katalvlaran/qroute/qnet"
)

// AllocSuite groups allocation scenarios for the deficit round-robin
// allocator.
type AllocSuite struct {
	suite.Suite
}

func (s *AllocSuite) net(ws qnet.WeightVector) *qnet.Network {
	net, err := qnet.NewFromWeights(ws)
	require.NoError(s.T(), err)

	return net
}

// diamond builds 0→1→3 and 0→2→3 with all capacities equal to cap.
func (s *AllocSuite) diamond(cap float64) *qnet.Network {
	return s.net(qnet.WeightVector{
		{From: 0, To: 1, Capacity: cap},
		{From: 1, To: 3, Capacity: cap},
		{From: 0, To: 2, Capacity: cap},
		{From: 2, To: 3, Capacity: cap},
	})
}

// ------------------------------------------------------------------------
// 1. Configuration and batch validation.
// ------------------------------------------------------------------------

func (s *AllocSuite) TestConfigValidation() {
	net := s.net(qnet.WeightVector{{From: 0, To: 1, Capacity: 1}})
	app := alloc.NewApp(0, []qnet.NodeID{1}, 1)
	apps := []*alloc.AppDescriptor{app}

	require.ErrorIs(s.T(), alloc.Allocate(nil, apps, 1, alloc.PolicyShortestPath), alloc.ErrNilNetwork)
	require.ErrorIs(s.T(), alloc.Allocate(net, apps, 0, alloc.PolicyShortestPath), alloc.ErrBadK)
	require.ErrorIs(s.T(), alloc.Allocate(net, apps, 1, alloc.Policy(99)), alloc.ErrUnknownPolicy)
	require.ErrorIs(s.T(), alloc.Allocate(net, apps, 1, alloc.PolicyRandom), alloc.ErrNeedRandSource)
}

func (s *AllocSuite) TestAppValidation() {
	net := s.net(qnet.WeightVector{{From: 0, To: 1, Capacity: 1}})

	cases := []*alloc.AppDescriptor{
		nil,
		alloc.NewApp(0, nil, 1),               // no peers
		alloc.NewApp(0, []qnet.NodeID{1}, 0),  // non-positive priority
		alloc.NewApp(0, []qnet.NodeID{1}, -3), // negative priority
		alloc.NewApp(7, []qnet.NodeID{1}, 1),  // unknown host
	}
	for _, a := range cases {
		err := alloc.Allocate(net, []*alloc.AppDescriptor{a}, 1, alloc.PolicyShortestPath)
		require.ErrorIs(s.T(), err, alloc.ErrInvalidApp)
	}
}

// TestBatchValidationIsAtomic: one bad descriptor rejects everything before
// any reservation.
func (s *AllocSuite) TestBatchValidationIsAtomic() {
	net := s.net(qnet.WeightVector{{From: 0, To: 1, Capacity: 10}})

	good := alloc.NewApp(0, []qnet.NodeID{1}, 1)
	bad := alloc.NewApp(0, nil, 1)
	err := alloc.Allocate(net, []*alloc.AppDescriptor{good, bad}, 1, alloc.PolicyShortestPath)
	require.ErrorIs(s.T(), err, alloc.ErrInvalidApp)

	require.False(s.T(), good.Allocated())
	require.Equal(s.T(), 0, good.YenCalls)
	require.Equal(s.T(), 10.0, net.Weights()[0].Capacity, "no state change on batch rejection")
}

func (s *AllocSuite) TestEmptyBatchIsNoOp() {
	net := s.net(qnet.WeightVector{{From: 0, To: 1, Capacity: 10}})

	require.NoError(s.T(), alloc.Allocate(net, nil, 1, alloc.PolicyShortestPath))
	require.Equal(s.T(), 10.0, net.Weights()[0].Capacity)
}

// ------------------------------------------------------------------------
// 2. Policy behavior.
// ------------------------------------------------------------------------

// TestLoadBalancingSplitsEvenly: two equal-priority apps on the diamond end
// up draining one branch each, leaving all residuals at zero.
func (s *AllocSuite) TestLoadBalancingSplitsEvenly() {
	net := s.diamond(4)

	a1 := alloc.NewApp(0, []qnet.NodeID{3}, 1)
	a2 := alloc.NewApp(0, []qnet.NodeID{3}, 1)
	require.NoError(s.T(), alloc.Allocate(net,
		[]*alloc.AppDescriptor{a1, a2}, 2, alloc.PolicyLoadBalancing))

	require.InDelta(s.T(), 4.0, a1.TotalGrossRate(), 1e-9)
	require.InDelta(s.T(), 4.0, a2.TotalGrossRate(), 1e-9)
	for _, w := range net.Weights() {
		require.InDelta(s.T(), 0.0, w.Capacity, 1e-9)
	}
	// Each app kept picking the branch the other left alone.
	require.Len(s.T(), a1.Paths, 1)
	require.Len(s.T(), a2.Paths, 1)
	require.NotEqual(s.T(), a1.Paths[0].Hops, a2.Paths[0].Hops)
}

// TestShortestPathPrefersFewerHops: the direct edge is exhausted before the
// detour sees any traffic.
func (s *AllocSuite) TestShortestPathPrefersFewerHops() {
	net := s.net(qnet.WeightVector{
		{From: 0, To: 3, Capacity: 2},
		{From: 0, To: 1, Capacity: 10},
		{From: 1, To: 3, Capacity: 10},
	})

	a := alloc.NewApp(0, []qnet.NodeID{3}, 1)
	require.NoError(s.T(), alloc.Allocate(net,
		[]*alloc.AppDescriptor{a}, 3, alloc.PolicyShortestPath))

	require.Len(s.T(), a.Paths, 2)
	require.Equal(s.T(), []qnet.NodeID{3}, a.Paths[0].Hops, "direct edge first")
	require.InDelta(s.T(), 2.0, a.Paths[0].GrossRate, 1e-9)
	require.Equal(s.T(), []qnet.NodeID{1, 3}, a.Paths[1].Hops)
	require.InDelta(s.T(), 10.0, a.Paths[1].GrossRate, 1e-9)
}

// TestRandomDrainsEverything: with a seeded source the picks vary, but the
// allocator still spends all capacity.
func (s *AllocSuite) TestRandomDrainsEverything() {
	net := s.diamond(4)

	a := alloc.NewApp(0, []qnet.NodeID{3}, 1)
	require.NoError(s.T(), alloc.Allocate(net,
		[]*alloc.AppDescriptor{a}, 2, alloc.PolicyRandom,
		alloc.WithRand(rand.New(rand.NewSource(42)))))

	require.InDelta(s.T(), 8.0, a.TotalGrossRate(), 1e-9)
	for _, w := range net.Weights() {
		require.InDelta(s.T(), 0.0, w.Capacity, 1e-9)
	}
}

// ------------------------------------------------------------------------
// 3. Deficit counters, priorities, and the quantum.
// ------------------------------------------------------------------------

// TestPrioritySharesProportional: 3:1 priorities on a single link split the
// capacity 3:1.
func (s *AllocSuite) TestPrioritySharesProportional() {
	net := s.net(qnet.WeightVector{{From: 0, To: 1, Capacity: 4}})

	hi := alloc.NewApp(0, []qnet.NodeID{1}, 3)
	lo := alloc.NewApp(0, []qnet.NodeID{1}, 1)
	require.NoError(s.T(), alloc.Allocate(net,
		[]*alloc.AppDescriptor{hi, lo}, 1, alloc.PolicyShortestPath))

	require.InDelta(s.T(), 3.0, hi.TotalGrossRate(), 1e-9)
	require.InDelta(s.T(), 1.0, lo.TotalGrossRate(), 1e-9)
	require.InDelta(s.T(), 0.0, net.Weights()[0].Capacity, 1e-9)
}

// TestQuantumCarriesDeficit: a share below the quantum is carried to the
// next round instead of being lost, so the 3:1 split still holds.
func (s *AllocSuite) TestQuantumCarriesDeficit() {
	net := s.net(qnet.WeightVector{{From: 0, To: 1, Capacity: 4}})

	hi := alloc.NewApp(0, []qnet.NodeID{1}, 3) // share 0.75 per round
	lo := alloc.NewApp(0, []qnet.NodeID{1}, 1) // share 0.25, below the quantum
	require.NoError(s.T(), alloc.Allocate(net,
		[]*alloc.AppDescriptor{hi, lo}, 1, alloc.PolicyShortestPath,
		alloc.WithQuantum(0.4)))

	require.InDelta(s.T(), 3.0, hi.TotalGrossRate(), 1e-9)
	require.InDelta(s.T(), 1.0, lo.TotalGrossRate(), 1e-9)
	require.Len(s.T(), lo.Paths, 1, "repeated admissions merge onto one entry")
}

// TestMaxRoundsCapsWork: the loop stops after the configured rounds even
// with capacity left over.
func (s *AllocSuite) TestMaxRoundsCapsWork() {
	net := s.net(qnet.WeightVector{{From: 0, To: 1, Capacity: 10}})

	a := alloc.NewApp(0, []qnet.NodeID{1}, 1)
	require.NoError(s.T(), alloc.Allocate(net,
		[]*alloc.AppDescriptor{a}, 1, alloc.PolicyShortestPath,
		alloc.WithMaxRounds(2)))

	require.InDelta(s.T(), 2.0, a.TotalGrossRate(), 1e-9)
	require.InDelta(s.T(), 8.0, net.Weights()[0].Capacity, 1e-9)
}

// ------------------------------------------------------------------------
// 4. Net/gross conversion and bookkeeping.
// ------------------------------------------------------------------------

// TestSwapLossConversion: over a two-hop path with μ=0.5 the delivered net
// rate is half the reserved gross rate.
func (s *AllocSuite) TestSwapLossConversion() {
	net := s.net(qnet.WeightVector{
		{From: 0, To: 1, Capacity: 8},
		{From: 1, To: 2, Capacity: 8},
	})
	require.NoError(s.T(), net.SetMeasurementProbability(0.5))

	a := alloc.NewApp(0, []qnet.NodeID{2}, 1)
	require.NoError(s.T(), alloc.Allocate(net,
		[]*alloc.AppDescriptor{a}, 1, alloc.PolicyShortestPath))

	require.Len(s.T(), a.Paths, 1)
	require.InDelta(s.T(), 8.0, a.TotalGrossRate(), 1e-9)
	require.InDelta(s.T(), 4.0, a.TotalNetRate(), 1e-9)
	for _, w := range net.Weights() {
		require.InDelta(s.T(), 0.0, w.Capacity, 1e-9)
	}
}

// TestUnservablePeers: unknown or self peers contribute no candidate paths;
// the app simply ends the first round unallocated.
func (s *AllocSuite) TestUnservablePeers() {
	net := s.net(qnet.WeightVector{{From: 0, To: 1, Capacity: 10}})

	a := alloc.NewApp(0, []qnet.NodeID{0, 9}, 1)
	require.NoError(s.T(), alloc.Allocate(net,
		[]*alloc.AppDescriptor{a}, 1, alloc.PolicyShortestPath))

	require.False(s.T(), a.Allocated())
	require.Equal(s.T(), 0, a.YenCalls)
	require.Equal(s.T(), 10.0, net.Weights()[0].Capacity)
}

// TestYenCallsPerReachablePeer: one k-shortest computation per usable
// (host, peer) pair.
func (s *AllocSuite) TestYenCallsPerReachablePeer() {
	net := s.net(qnet.WeightVector{
		{From: 0, To: 1, Capacity: 5},
		{From: 0, To: 2, Capacity: 5},
	})

	a := alloc.NewApp(0, []qnet.NodeID{1, 2, 0, 9}, 1)
	require.NoError(s.T(), alloc.Allocate(net,
		[]*alloc.AppDescriptor{a}, 2, alloc.PolicyShortestPath))

	require.Equal(s.T(), 2, a.YenCalls)
	require.InDelta(s.T(), 10.0, a.TotalGrossRate(), 1e-9)
}

func (s *AllocSuite) TestDescriptorString() {
	net := s.net(qnet.WeightVector{{From: 0, To: 1, Capacity: 2}})
	a := alloc.NewApp(0, []qnet.NodeID{1}, 1)
	require.NoError(s.T(), alloc.Allocate(net,
		[]*alloc.AppDescriptor{a}, 1, alloc.PolicyShortestPath))

	require.Contains(s.T(), a.String(), "app host 0")
	require.Contains(s.T(), a.String(), "1 path(s)")
}

func TestAllocSuite(t *testing.T) {
	suite.Run(t, new(AllocSuite))
}

// ------------------------------------------------------------------------
// Policy parsing (plain tests: no shared state).
// ------------------------------------------------------------------------

func TestParsePolicy(t *testing.T) {
	for _, p := range []alloc.Policy{
		alloc.PolicyRandom, alloc.PolicyShortestPath, alloc.PolicyLoadBalancing,
	} {
		got, err := alloc.ParsePolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}

func TestParsePolicy_Unknown(t *testing.T) {
	_, err := alloc.ParsePolicy("fastest")
	require.ErrorIs(t, err, alloc.ErrUnknownPolicy)
	require.Contains(t, err.Error(), "valid options are: random,shortestpath,loadbalancing")
}

func TestPolicyString_Unknown(t *testing.T) {
	require.Equal(t, "unknown", alloc.Policy(42).String())
}
