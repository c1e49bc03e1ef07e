package vwaa

import (
	"sort"
	"strings"

	"github.com/katalvlaran/mcsp/formula"
)

// Conjunction is a canonical (deduplicated, sorted) set of LTL subformulae,
// the unit VWAA states are built from (§3: "states are conjunctions").
type Conjunction []formula.LTLFormula

// Key returns a deterministic string identifying this conjunction, suitable
// as a map key and for equality/ordering comparisons.
func (c Conjunction) Key() string {
	parts := make([]string, len(c))
	for i, f := range c {
		parts[i] = f.String()
	}
	return strings.Join(parts, "")
}

// Normalize returns the canonical form of a raw member list: deduplicated,
// sorted, and with a redundant `true` dropped whenever another member is
// present (true ∧ φ = φ); the canonical representative of the always-true
// state is the singleton {true}.
func Normalize(members []formula.LTLFormula) Conjunction {
	seen := make(map[string]bool, len(members))
	out := make(Conjunction, 0, len(members))
	for _, m := range members {
		if _, isTrue := m.(formula.LTLTrue); isTrue {
			continue
		}
		k := m.String()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	if len(out) == 0 {
		return Conjunction{formula.LTLTrue{}}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Alphabet is a canonical set of LTL literals labeling a transition; an
// empty Alphabet denotes "true" — no constraint (§3).
type Alphabet []formula.LTLFormula

// Key returns a deterministic string for this alphabet.
func (a Alphabet) Key() string {
	parts := make([]string, len(a))
	for i, f := range a {
		parts[i] = f.String()
	}
	return strings.Join(parts, "")
}

func normalizeAlphabet(lits []formula.LTLFormula) Alphabet {
	return Alphabet(formula.SortLiterals(lits))
}

// hasComplementaryPair reports whether lits contains both some literal and
// its negation, which makes the combined alphabet unsatisfiable.
func hasComplementaryPair(lits []formula.LTLFormula) bool {
	present := make(map[string]bool, len(lits))
	for _, l := range lits {
		present[l.String()] = true
	}
	for _, l := range lits {
		if formula.IsLiteral(l) {
			if neg, ok := negationOf(l); ok && present[neg.String()] {
				return true
			}
		}
	}
	return false
}

func negationOf(l formula.LTLFormula) (formula.LTLFormula, bool) {
	switch v := l.(type) {
	case formula.LTLProp:
		return formula.LTLNot{Prop: v}, true
	case formula.LTLNot:
		return v.Prop, true
	default:
		return nil, false
	}
}

// Transition is a VWAA edge: label α, target conjunction.
type Transition struct {
	Label  Alphabet
	Target Conjunction
}

// transitionKey returns a deterministic key for deduplicating transition
// lists.
func transitionKey(t Transition) string {
	return t.Label.Key() + "" + t.Target.Key()
}

// dedupTransitions removes duplicate (label, target) pairs, preserving the
// first occurrence's order, then sorts for determinism.
func dedupTransitions(ts []Transition) []Transition {
	seen := make(map[string]bool, len(ts))
	out := make([]Transition, 0, len(ts))
	for _, t := range ts {
		k := transitionKey(t)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return transitionKey(out[i]) < transitionKey(out[j]) })
	return out
}

// VWAA is the immutable very-weak alternating automaton built by Build.
type VWAA struct {
	Initial []Conjunction
	states  map[string]Conjunction
	trans   map[string][]Transition
	order   []string
	// Finals holds every distinct Until subformula encountered while
	// building the automaton; package gba turns each into an acceptance
	// family.
	Finals []formula.LTLFormula
}

// States returns the discovered conjunction states in discovery order.
func (v *VWAA) States() []Conjunction {
	out := make([]Conjunction, len(v.order))
	for i, k := range v.order {
		out[i] = v.states[k]
	}
	return out
}

// Transitions returns the outgoing transitions of conjunction c.
func (v *VWAA) Transitions(c Conjunction) []Transition {
	return v.trans[c.Key()]
}
