package mdp_test

import (
	"testing"

	"github.com/katalvlaran/mcsp/mdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLoop builds the one-state self-loop MDP used as scenario S1/S4 in the
// specification: a single state s0 with a self-loop action of weight 1.
func buildLoop(t *testing.T) *mdp.MDP {
	t.Helper()
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	a, err := b.AddAction("s0", "a")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a, "s0", 1.0))
	m, err := b.Build(9)
	require.NoError(t, err)
	return m
}

func TestBuilder_SelfLoop(t *testing.T) {
	m := buildLoop(t)
	assert.Equal(t, mdp.StateID("s0"), m.Initial())
	assert.ElementsMatch(t, []mdp.StateID{"s0"}, m.States())
	actions := m.OutActions("s0")
	require.Len(t, actions, 1)
	edges := m.OutEdges(actions[0])
	require.Len(t, edges, 1)
	assert.Equal(t, mdp.StateID("s0"), edges[0].To)
	assert.InDelta(t, 1.0, edges[0].Weight, 1e-12)
}

func TestBuilder_RejectsUnbalancedAction(t *testing.T) {
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	a, err := b.AddAction("s0", "bad")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a, "s0", 0.4))
	_, err = b.Build(9)
	require.Error(t, err)
}

func TestBuilder_TolerancePrecision(t *testing.T) {
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	a, err := b.AddAction("s0", "rounded")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a, "s0", 0.999))
	// Within 10^-2 tolerance but outside 10^-9.
	_, err = b.Build(2)
	require.NoError(t, err)
	_, err = b.Build(9)
	require.Error(t, err)
}

func TestAPMap_ValidateRejectsUnknownState(t *testing.T) {
	m := buildLoop(t)
	ap := mdp.NewAPMap(map[string][]mdp.StateID{"p": {"s1"}})
	require.Error(t, mdp.Validate(m, ap))

	ok := mdp.NewAPMap(map[string][]mdp.StateID{"p": {"s0"}})
	require.NoError(t, mdp.Validate(m, ok))
	assert.True(t, ok.Holds("p", "s0"))
}

func TestMDP_PreStates(t *testing.T) {
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	a0, err := b.AddAction("s0", "a0")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a0, "s1", 1.0))
	a1, err := b.AddAction("s1", "a1")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a1, "s1", 1.0))
	m, err := b.Build(9)
	require.NoError(t, err)

	assert.ElementsMatch(t, []mdp.StateID{"s0", "s1"}, m.PreStates("s1"))
	assert.Empty(t, m.PreStates("s0"))
}
