package checker_test

import (
	"testing"

	"github.com/katalvlaran/mcsp/checker"
	"github.com/katalvlaran/mcsp/mdp"
	"github.com/stretchr/testify/require"
)

// S1 — PCTL AP: one self-looping state, p holds at s0, PHI = p.
func TestS1_PCTLBareProposition(t *testing.T) {
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	a, err := b.AddAction("s0", "a")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a, "s0", 1.0))
	m, err := b.Build(9)
	require.NoError(t, err)
	ap := mdp.NewAPMap(map[string][]mdp.StateID{"p": {"s0"}})

	res, err := checker.Evaluate(checker.PCTLLogic, "PHI = p", m, ap, "s0", 1e-6, 9)
	require.NoError(t, err)
	require.True(t, res.Satisfied)
	require.True(t, res.States["s0"])
}

// S2 — PCTL Until, deterministic: s0 -> s1 (self-loop), p holds at s1.
func twoStateDeterministic(t *testing.T) (*mdp.MDP, mdp.APMap) {
	t.Helper()
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
	ap := mdp.NewAPMap(map[string][]mdp.StateID{"p": {"s1"}})
	return m, ap
}

func TestS2_PCTLUntilDeterministic(t *testing.T) {
	m, ap := twoStateDeterministic(t)
	res, err := checker.Evaluate(checker.PCTLLogic, "PHI = P((true) U (p), >= 1.0)", m, ap, "s0", 1e-6, 9)
	require.NoError(t, err)
	require.True(t, res.Satisfied)
	require.True(t, res.States["s0"])
	require.True(t, res.States["s1"])
}

// S3 — PCTL Until with non-determinism: s0 branches to a_good->s1, a_bad->s2.
func TestS3_PCTLUntilNonDeterministic(t *testing.T) {
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	good, err := b.AddAction("s0", "a_good")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(good, "s1", 1.0))
	bad, err := b.AddAction("s0", "a_bad")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(bad, "s2", 1.0))
	loop1, err := b.AddAction("s1", "loop1")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(loop1, "s1", 1.0))
	loop2, err := b.AddAction("s2", "loop2")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(loop2, "s2", 1.0))
	m, err := b.Build(9)
	require.NoError(t, err)
	ap := mdp.NewAPMap(map[string][]mdp.StateID{"p": {"s1"}})

	res, err := checker.Evaluate(checker.PCTLLogic, "PHI = P((true) U (p), >= 0.5)", m, ap, "s0", 1e-6, 9)
	require.NoError(t, err)
	require.True(t, res.Satisfied)
	require.True(t, res.States["s0"])
	require.True(t, res.States["s1"])
	require.False(t, res.States["s2"])
}

// S4 — LTL G(p) on a one-state self-loop.
func TestS4_LTLAlwaysOnSelfLoop(t *testing.T) {
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	a, err := b.AddAction("s0", "a")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a, "s0", 1.0))
	m, err := b.Build(9)
	require.NoError(t, err)
	ap := mdp.NewAPMap(map[string][]mdp.StateID{"p": {"s0"}})

	res, err := checker.Evaluate(checker.LTLLogic, "PHI = P(G(p), >= 1.0)", m, ap, "s0", 1e-6, 9)
	require.NoError(t, err)
	require.True(t, res.Satisfied)
}

// S5 — LTL F(p) that is unreachable from s0.
func TestS5_LTLEventuallyUnreachable(t *testing.T) {
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	loop, err := b.AddAction("s0", "loop")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(loop, "s0", 1.0))
	require.NoError(t, b.AddState("s1"))
	m, err := b.Build(9)
	require.NoError(t, err)
	ap := mdp.NewAPMap(map[string][]mdp.StateID{"p": {"s1"}})

	res, err := checker.Evaluate(checker.LTLLogic, "PHI = P(F(p), <= 0.0)", m, ap, "s0", 1e-6, 9)
	require.NoError(t, err)
	require.True(t, res.Satisfied)
}

// S6 — LTL U with branching: s0 splits 0.5/0.5 into s1 (p) and s2 (q).
func TestS6_LTLUntilBranching(t *testing.T) {
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	split, err := b.AddAction("s0", "split")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(split, "s1", 0.5))
	require.NoError(t, b.AddTransition(split, "s2", 0.5))
	loop1, err := b.AddAction("s1", "loop1")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(loop1, "s1", 1.0))
	loop2, err := b.AddAction("s2", "loop2")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(loop2, "s2", 1.0))
	m, err := b.Build(9)
	require.NoError(t, err)
	ap := mdp.NewAPMap(map[string][]mdp.StateID{
		"p": {"s1"},
		"q": {"s2"},
	})

	res, err := checker.Evaluate(checker.LTLLogic, "PHI = P((true) U (p), >= 0.5)", m, ap, "s0", 1e-6, 9)
	require.NoError(t, err)
	require.True(t, res.Satisfied)
}

func TestEvaluate_UnknownInitialState(t *testing.T) {
	b := mdp.NewBuilder()
	require.NoError(t, b.SetInitial("s0"))
	a, err := b.AddAction("s0", "a")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(a, "s0", 1.0))
	m, err := b.Build(9)
	require.NoError(t, err)
	ap := mdp.NewAPMap(map[string][]mdp.StateID{"p": {"s0"}})

	_, err = checker.Evaluate(checker.PCTLLogic, "PHI = p", m, ap, "missing", 1e-6, 9)
	require.Error(t, err)
}

func TestEvaluate_MissingSentinelErrors(t *testing.T) {
	m, ap := twoStateDeterministic(t)
	_, err := checker.Evaluate(checker.PCTLLogic, "p", m, ap, "s0", 1e-6, 9)
	require.Error(t, err)
}
