package ba_test

import (
	"testing"

	"github.com/katalvlaran/mcsp/ba"
	"github.com/katalvlaran/mcsp/formula"
	"github.com/katalvlaran/mcsp/gba"
	"github.com/katalvlaran/mcsp/vwaa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBA(t *testing.T, f formula.LTLFormula) *ba.BA {
	t.Helper()
	v := vwaa.Build(f)
	g := gba.Build(v)
	return ba.Build(g)
}

func TestBuild_AlwaysP_AllStatesAccepting(t *testing.T) {
	b := buildBA(t, formula.Always(formula.LTLProp{Name: "p"}))
	require.NotEmpty(t, b.States())
	for _, s := range b.States() {
		assert.True(t, b.Final(s), "state %s should be accepting when there are no acceptance families", s)
	}
}

func TestBuild_EventuallyP_HasAcceptingState(t *testing.T) {
	b := buildBA(t, formula.Eventually(formula.LTLProp{Name: "p"}))
	require.NotEmpty(t, b.Initial)
	found := false
	for _, s := range b.States() {
		if b.Final(s) {
			found = true
			break
		}
	}
	assert.True(t, found)
}

// TestBuild_EventuallyP_GoldenShape pins F(p)'s exact post-merge BA: two
// states, a non-accepting start with a self-loop plus a p-labeled exit,
// and an accepting sink with only a self-loop.
func TestBuild_EventuallyP_GoldenShape(t *testing.T) {
	b := buildBA(t, formula.Eventually(formula.LTLProp{Name: "p"}))

	require.Equal(t, []string{"b0", "b1"}, b.States())
	require.Equal(t, []string{"b0"}, b.Initial)
	assert.False(t, b.Final("b0"))
	assert.True(t, b.Final("b1"))
	require.Len(t, b.Transitions("b0"), 2)
	require.Len(t, b.Transitions("b1"), 1)
}
