package gba

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/mcsp/formula"
	"github.com/katalvlaran/mcsp/vwaa"
)

// Transition is a GBA edge: label α, target state id.
type Transition struct {
	Label  vwaa.Alphabet
	Target string
}

// GBA is the immutable generalized Büchi automaton produced by Build.
type GBA struct {
	Initial  []string
	order    []string
	trans    map[string][]Transition
	families []formula.LTLFormula
	// accept[i] is the set of accepting-transition keys for families[i],
	// keyed by sourceID+label+targetID.
	accept []map[string]bool
}

// States returns the GBA's state ids in deterministic order.
func (g *GBA) States() []string { return append([]string{}, g.order...) }

// Transitions returns the outgoing transitions of state id.
func (g *GBA) Transitions(id string) []Transition { return g.trans[id] }

// Families returns the acceptance families in their fixed order (index i
// corresponds to Accepting(i, ...)).
func (g *GBA) Families() []formula.LTLFormula { return g.families }

// Accepting reports whether the transition id--label-->target is accepting
// for acceptance family i.
func (g *GBA) Accepting(i int, id string, label vwaa.Alphabet, target string) bool {
	return g.accept[i][transKey(id, label, target)]
}

func transKey(id string, label vwaa.Alphabet, target string) string {
	return id + "\x00" + label.Key() + "\x00" + target
}

func containsFormula(c vwaa.Conjunction, f formula.LTLFormula) bool {
	key := f.String()
	for _, m := range c {
		if m.String() == key {
			return true
		}
	}
	return false
}

func alphabetSubset(a, b vwaa.Alphabet) bool {
	set := make(map[string]bool, len(b))
	for _, l := range b {
		set[l.String()] = true
	}
	for _, l := range a {
		if !set[l.String()] {
			return false
		}
	}
	return true
}

func conjunctionSubset(a, b vwaa.Conjunction) bool {
	set := make(map[string]bool, len(b))
	for _, m := range b {
		set[m.String()] = true
	}
	for _, m := range a {
		if !set[m.String()] {
			return false
		}
	}
	return true
}

// pruneDominated drops, among transitions sharing a source state, any
// transition dominated by another: one whose label and target are both
// supersets of the other's, with at least one strict (§4.4) — the other
// transition fires on every symbol this one does with no more obligations,
// so it already subsumes it.
func pruneDominated(ts []vwaa.Transition) []vwaa.Transition {
	keep := make([]bool, len(ts))
	for i := range ts {
		keep[i] = true
	}
	for i, a := range ts {
		for j, b := range ts {
			if i == j || !keep[i] || !keep[j] {
				continue
			}
			if dominatedBy(a, b) {
				keep[i] = false
			}
		}
	}
	out := make([]vwaa.Transition, 0, len(ts))
	for i, t := range ts {
		if keep[i] {
			out = append(out, t)
		}
	}
	return out
}

func dominatedBy(a, b vwaa.Transition) bool {
	if !alphabetSubset(b.Label, a.Label) || !conjunctionSubset(b.Target, a.Target) {
		return false
	}
	return len(b.Label) < len(a.Label) || len(b.Target) < len(a.Target)
}

// Build constructs a GBA from v's discovered state space (§4.4).
func Build(v *vwaa.VWAA) *GBA {
	rawStates := v.States()
	rawTrans := make(map[string][]vwaa.Transition, len(rawStates))
	byKey := make(map[string]vwaa.Conjunction, len(rawStates))
	for _, c := range rawStates {
		rawTrans[c.Key()] = v.Transitions(c)
		byKey[c.Key()] = c
	}

	families := append([]formula.LTLFormula{}, v.Finals...)

	rawAccept := make([]map[string]bool, len(families))
	for i, until := range families {
		acc := make(map[string]bool)
		for _, c := range rawStates {
			for _, t := range rawTrans[c.Key()] {
				if !containsFormula(t.Target, until) {
					acc[transKey(c.Key(), t.Label, t.Target.Key())] = true
					continue
				}
				for _, t2 := range rawTrans[t.Target.Key()] {
					if alphabetSubset(t2.Label, t.Label) &&
						conjunctionSubset(t2.Target, t.Target) &&
						!containsFormula(t2.Target, until) {
						acc[transKey(c.Key(), t.Label, t.Target.Key())] = true
						break
					}
				}
			}
		}
		rawAccept[i] = acc
	}

	// Prune dominated transitions: among transitions from the same source,
	// drop one whose label and target are both supersets of another's, with
	// at least one strict — the more permissive transition subsumes it.
	// Computed after rawAccept so the "now-or-later" witness search above
	// still sees the full transition set.
	for key, ts := range rawTrans {
		rawTrans[key] = pruneDominated(ts)
	}

	// Merge states with an identical outgoing-transition signature
	// (including per-family acceptance), a single-pass structural merge
	// (duplicate-elimination rather than full bisimulation refinement —
	// recorded in DESIGN.md).
	sigOf := func(key string) string {
		ts := rawTrans[key]
		sorted := append([]vwaa.Transition{}, ts...)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Label.Key()+sorted[i].Target.Key() < sorted[j].Label.Key()+sorted[j].Target.Key()
		})
		var b strings.Builder
		for _, t := range sorted {
			b.WriteString(t.Label.Key())
			b.WriteByte('>')
			b.WriteString(t.Target.Key())
			for i := range families {
				if rawAccept[i][transKey(key, t.Label, t.Target.Key())] {
					fmt.Fprintf(&b, ",f%d", i)
				}
			}
			b.WriteByte(';')
		}
		return b.String()
	}

	repOf := make(map[string]string) // raw key -> representative raw key
	sigToRep := make(map[string]string)
	rawKeys := make([]string, len(rawStates))
	for i, c := range rawStates {
		rawKeys[i] = c.Key()
	}
	sort.Strings(rawKeys)
	for _, key := range rawKeys {
		sig := sigOf(key)
		rep, ok := sigToRep[sig]
		if !ok {
			sigToRep[sig] = key
			rep = key
		}
		repOf[key] = rep
	}

	reps := make([]string, 0)
	seenRep := make(map[string]bool)
	for _, key := range rawKeys {
		r := repOf[key]
		if !seenRep[r] {
			seenRep[r] = true
			reps = append(reps, r)
		}
	}
	sort.Strings(reps)

	newID := make(map[string]string, len(reps))
	order := make([]string, len(reps))
	for i, r := range reps {
		id := fmt.Sprintf("g%d", i)
		newID[r] = id
		order[i] = id
	}

	trans := make(map[string][]Transition, len(reps))
	accept := make([]map[string]bool, len(families))
	for i := range families {
		accept[i] = make(map[string]bool)
	}
	for _, r := range reps {
		id := newID[r]
		for _, t := range rawTrans[r] {
			targetID := newID[repOf[t.Target.Key()]]
			trans[id] = append(trans[id], Transition{Label: t.Label, Target: targetID})
			for i := range families {
				if rawAccept[i][transKey(r, t.Label, t.Target.Key())] {
					accept[i][transKey(id, t.Label, targetID)] = true
				}
			}
		}
	}

	initSeen := make(map[string]bool)
	var initial []string
	for _, c := range v.Initial {
		id := newID[repOf[c.Key()]]
		if !initSeen[id] {
			initSeen[id] = true
			initial = append(initial, id)
		}
	}
	sort.Strings(initial)

	return &GBA{
		Initial:  initial,
		order:    order,
		trans:    trans,
		families: families,
		accept:   accept,
	}
}
