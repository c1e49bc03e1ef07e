package gba_test

import (
	"testing"

	"github.com/katalvlaran/mcsp/formula"
	"github.com/katalvlaran/mcsp/gba"
	"github.com/katalvlaran/mcsp/vwaa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_AlwaysP_NoFamilies(t *testing.T) {
	f := formula.Always(formula.LTLProp{Name: "p"})
	g := gba.Build(vwaa.Build(f))
	require.NotEmpty(t, g.States())
	require.NotEmpty(t, g.Initial)
	assert.Empty(t, g.Families())
}

func TestBuild_EventuallyP_OneFamily(t *testing.T) {
	f := formula.Eventually(formula.LTLProp{Name: "p"})
	g := gba.Build(vwaa.Build(f))
	require.Len(t, g.Families(), 1)
}

// TestBuild_EventuallyP_GoldenShape pins F(p)'s exact post-merge automaton:
// two states (the initial waiting state and the accepting "done" sink),
// the initial state's two transitions, and exactly two accepting
// transitions total (take p now; loop forever once done).
func TestBuild_EventuallyP_GoldenShape(t *testing.T) {
	f := formula.Eventually(formula.LTLProp{Name: "p"})
	g := gba.Build(vwaa.Build(f))

	require.Equal(t, []string{"g0", "g1"}, g.States())
	require.Len(t, g.Families(), 1)
	require.Equal(t, []string{"g0"}, g.Initial)
	require.Len(t, g.Transitions("g0"), 2)
	require.Len(t, g.Transitions("g1"), 1)

	accepting := 0
	for _, s := range g.States() {
		for _, tr := range g.Transitions(s) {
			if g.Accepting(0, s, tr.Label, tr.Target) {
				accepting++
			}
		}
	}
	assert.Equal(t, 2, accepting)
}
