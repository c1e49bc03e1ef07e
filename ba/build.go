package ba

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/mcsp/gba"
	"github.com/katalvlaran/mcsp/vwaa"
)

// Transition is a BA edge: label α, target state id.
type Transition struct {
	Label  vwaa.Alphabet
	Target string
}

// BA is the immutable Büchi automaton produced by Build.
type BA struct {
	Initial []string
	order   []string
	trans   map[string][]Transition
	final   map[string]bool
}

// States returns the BA's state ids in deterministic order.
func (b *BA) States() []string { return append([]string{}, b.order...) }

// Transitions returns the outgoing transitions of state id.
func (b *BA) Transitions(id string) []Transition { return b.trans[id] }

// Final reports whether id is an accepting state.
func (b *BA) Final(id string) bool { return b.final[id] }

func rawKey(gstate string, j int) string {
	return gstate + "#" + strconv.Itoa(j)
}

// Build constructs a BA from g (§4.5).
func Build(g *gba.GBA) *BA {
	families := g.Families()
	r := len(families)

	// Order families by descending accepting-transition count so the
	// counter advances as fast as the automaton structure allows.
	famOrder := make([]int, r)
	for i := range famOrder {
		famOrder[i] = i
	}
	count := make([]int, r)
	for i := range famOrder {
		for _, s := range g.States() {
			for _, t := range g.Transitions(s) {
				if g.Accepting(i, s, t.Label, t.Target) {
					count[i]++
				}
			}
		}
	}
	sort.Slice(famOrder, func(a, b int) bool { return count[famOrder[a]] > count[famOrder[b]] })

	chainOK := func(famIdx int, s string, label vwaa.Alphabet, target string) bool {
		return g.Accepting(famOrder[famIdx], s, label, target)
	}

	rawTrans := make(map[string][]Transition)
	rawFinal := make(map[string]bool)
	visited := make(map[string]bool)
	var worklist []string

	for _, s := range g.Initial {
		k := rawKey(s, 0)
		if !visited[k] {
			visited[k] = true
			worklist = append(worklist, k)
		}
	}

	for len(worklist) > 0 {
		k := worklist[0]
		worklist = worklist[1:]
		idx := strings.LastIndex(k, "#")
		gstate := k[:idx]
		j, _ := strconv.Atoi(k[idx+1:])

		j0 := j
		if j == r {
			j0 = 0
		}
		rawFinal[k] = j == r

		for _, t := range g.Transitions(gstate) {
			jprime := j0
			for i := j0; i < r; i++ {
				if chainOK(i, gstate, t.Label, t.Target) {
					jprime = i + 1
				} else {
					break
				}
			}
			targetKey := rawKey(t.Target, jprime)
			rawTrans[k] = append(rawTrans[k], Transition{Label: t.Label, Target: targetKey})
			if !visited[targetKey] {
				visited[targetKey] = true
				worklist = append(worklist, targetKey)
			}
		}
	}
	for k := range visited {
		idx := strings.LastIndex(k, "#")
		j, _ := strconv.Atoi(k[idx+1:])
		rawFinal[k] = j == r
	}

	// Prune dominated transitions: among transitions from the same source
	// to the same target, drop one whose label is a strict superset of
	// another's (the other label has fewer literals, so it fires on every
	// symbol this one fires on and already subsumes it).
	for k, ts := range rawTrans {
		rawTrans[k] = pruneDominated(ts)
	}

	// Merge states with identical (outgoing signature, final status).
	sigOf := func(k string) string {
		ts := append([]Transition{}, rawTrans[k]...)
		sort.Slice(ts, func(i, j int) bool {
			return ts[i].Label.Key()+ts[i].Target < ts[j].Label.Key()+ts[j].Target
		})
		var sb strings.Builder
		if rawFinal[k] {
			sb.WriteString("F;")
		}
		for _, t := range ts {
			sb.WriteString(t.Label.Key())
			sb.WriteByte('>')
			sb.WriteString(t.Target)
			sb.WriteByte(';')
		}
		return sb.String()
	}

	rawKeys := make([]string, 0, len(visited))
	for k := range visited {
		rawKeys = append(rawKeys, k)
	}
	sort.Strings(rawKeys)

	repOf := make(map[string]string)
	sigToRep := make(map[string]string)
	for _, k := range rawKeys {
		sig := sigOf(k)
		rep, ok := sigToRep[sig]
		if !ok {
			sigToRep[sig] = k
			rep = k
		}
		repOf[k] = rep
	}

	var reps []string
	seen := make(map[string]bool)
	for _, k := range rawKeys {
		rp := repOf[k]
		if !seen[rp] {
			seen[rp] = true
			reps = append(reps, rp)
		}
	}
	sort.Strings(reps)

	newID := make(map[string]string, len(reps))
	order := make([]string, len(reps))
	for i, rp := range reps {
		id := fmt.Sprintf("b%d", i)
		newID[rp] = id
		order[i] = id
	}

	trans := make(map[string][]Transition, len(reps))
	final := make(map[string]bool, len(reps))
	for _, rp := range reps {
		id := newID[rp]
		final[id] = rawFinal[rp]
		for _, t := range rawTrans[rp] {
			trans[id] = append(trans[id], Transition{Label: t.Label, Target: newID[repOf[t.Target]]})
		}
	}

	initSeen := make(map[string]bool)
	var initial []string
	for _, s := range g.Initial {
		id := newID[repOf[rawKey(s, 0)]]
		if !initSeen[id] {
			initSeen[id] = true
			initial = append(initial, id)
		}
	}
	sort.Strings(initial)

	return &BA{Initial: initial, order: order, trans: trans, final: final}
}

func pruneDominated(ts []Transition) []Transition {
	keep := make([]bool, len(ts))
	for i := range ts {
		keep[i] = true
	}
	for i, a := range ts {
		for j, b := range ts {
			if i == j || a.Target != b.Target || !keep[i] || !keep[j] {
				continue
			}
			if strictSubset(b.Label, a.Label) {
				keep[i] = false
			}
		}
	}
	out := make([]Transition, 0, len(ts))
	for i, t := range ts {
		if keep[i] {
			out = append(out, t)
		}
	}
	return out
}

func strictSubset(a, b vwaa.Alphabet) bool {
	if len(a) >= len(b) {
		return false
	}
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
