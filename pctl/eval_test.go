package pctl_test

import (
	"testing"

	"github.com/katalvlaran/mcsp/formula"
	"github.com/katalvlaran/mcsp/mdp"
	"github.com/katalvlaran/mcsp/pctl"
	"github.com/stretchr/testify/require"
)

// selfLoopMDP builds the single-state, self-looping action MDP used across
// the probabilistic-model-checking scenarios: one state s0 where p holds.
func selfLoopMDP(t *testing.T) (*mdp.MDP, mdp.APMap) {
	t.Helper()
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	a, err := b.AddAction("s0", "a")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a, "s0", 1.0))
	m, err := b.Build(9)
	require.NoError(t, err)
	ap := mdp.NewAPMap(map[string][]mdp.StateID{"p": {"s0"}})
	return m, ap
}

func TestEvaluate_BareProposition(t *testing.T) {
	m, ap := selfLoopMDP(t)
	eng, err := pctl.New(m, ap, 1e-6)
	require.NoError(t, err)
	res, err := eng.Evaluate(formula.PCTLProp{Name: "p"})
	require.NoError(t, err)
	require.True(t, res["s0"])
}

func TestEvaluate_UntilAlwaysTrue(t *testing.T) {
	m, ap := selfLoopMDP(t)
	eng, err := pctl.New(m, ap, 1e-6)
	require.NoError(t, err)
	f := formula.PCTLProb{
		Path:       formula.PCTLUntil{Left: formula.PCTLTrue{}, Right: formula.PCTLProp{Name: "p"}},
		Comparator: formula.Geq,
		Bound:      1.0,
	}
	res, err := eng.Evaluate(f)
	require.NoError(t, err)
	require.True(t, res["s0"])
}

func TestEvaluate_UntilNeverTrue(t *testing.T) {
	m, ap := selfLoopMDP(t)
	eng, err := pctl.New(m, ap, 1e-6)
	require.NoError(t, err)
	f := formula.PCTLProb{
		Path:       formula.PCTLUntil{Left: formula.PCTLTrue{}, Right: formula.PCTLProp{Name: "p"}},
		Comparator: formula.Leq,
		Bound:      0.0,
	}
	res, err := eng.Evaluate(f)
	require.NoError(t, err)
	require.False(t, res["s0"])
}

// twoStateChain builds s0 --a(1.0)--> s1 --a(1.0)--> s1 (s1 self-loops), with
// q holding only at s1, exercising a non-trivial reachability Until.
func twoStateChain(t *testing.T) (*mdp.MDP, mdp.APMap) {
	t.Helper()
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	a0, err := b.AddAction("s0", "go")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a0, "s1", 1.0))
	a1, err := b.AddAction("s1", "loop")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a1, "s1", 1.0))
	m, err := b.Build(9)
	require.NoError(t, err)
	ap := mdp.NewAPMap(map[string][]mdp.StateID{"q": {"s1"}})
	return m, ap
}

func TestEvaluate_UntilReachability(t *testing.T) {
	m, ap := twoStateChain(t)
	eng, err := pctl.New(m, ap, 1e-6)
	require.NoError(t, err)
	f := formula.PCTLProb{
		Path:       formula.PCTLUntil{Left: formula.PCTLTrue{}, Right: formula.PCTLProp{Name: "q"}},
		Comparator: formula.Geq,
		Bound:      1.0,
	}
	res, err := eng.Evaluate(f)
	require.NoError(t, err)
	require.True(t, res["s0"])
	require.True(t, res["s1"])
}

func TestEvaluate_UnknownPropositionErrors(t *testing.T) {
	m, ap := selfLoopMDP(t)
	eng, err := pctl.New(m, ap, 1e-6)
	require.NoError(t, err)
	_, err = eng.Evaluate(formula.PCTLProp{Name: "nope"})
	require.Error(t, err)
}

func TestNew_RejectsNonPositiveMaxError(t *testing.T) {
	m, ap := selfLoopMDP(t)
	_, err := pctl.New(m, ap, 0)
	require.Error(t, err)
}
