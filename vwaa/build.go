package vwaa

import "github.com/katalvlaran/mcsp/formula"

// Bar lifts φ into a set of canonical conjunctions: disjunctive
// normalisation over ∨, a set-product over ∧, and a singleton otherwise
// (§4.3).
func Bar(f formula.LTLFormula) []Conjunction {
	switch v := f.(type) {
	case formula.LTLOr:
		return append(Bar(v.Left), Bar(v.Right)...)
	case formula.LTLAnd:
		left := Bar(v.Left)
		right := Bar(v.Right)
		out := make([]Conjunction, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				out = append(out, Normalize(append(append([]formula.LTLFormula{}, l...), r...)))
			}
		}
		return out
	default:
		return []Conjunction{Normalize([]formula.LTLFormula{f})}
	}
}

// builder accumulates the Finals set (distinct Until subformulae) while
// bigDelta/smallDelta are computed.
type builder struct {
	finals map[string]formula.LTLFormula
}

func newBuilder() *builder {
	return &builder{finals: make(map[string]formula.LTLFormula)}
}

func (b *builder) noteUntil(u formula.LTLUntil) {
	b.finals[u.String()] = u
}

// smallDelta computes the transitions contributed by a single temporal
// node φ (§4.3).
func (b *builder) smallDelta(f formula.LTLFormula) []Transition {
	switch v := f.(type) {
	case formula.LTLFalse:
		return nil
	case formula.LTLTrue:
		return []Transition{{Label: nil, Target: Conjunction{formula.LTLTrue{}}}}
	case formula.LTLProp:
		return []Transition{{Label: Alphabet{v}, Target: Conjunction{formula.LTLTrue{}}}}
	case formula.LTLNot:
		return []Transition{{Label: Alphabet{v}, Target: Conjunction{formula.LTLTrue{}}}}
	case formula.LTLUntil:
		b.noteUntil(v)
		loop := product(b.bigDelta(v.Left), []Transition{{Label: nil, Target: Conjunction{v}}})
		return append(b.bigDelta(v.Right), loop...)
	case formula.LTLNext:
		out := make([]Transition, 0)
		for _, c := range Bar(v.Sub) {
			out = append(out, Transition{Label: nil, Target: c})
		}
		return out
	case formula.LTLRelease:
		left := append([]Transition{{Label: nil, Target: Conjunction{v}}}, b.bigDelta(v.Left)...)
		return product(left, b.bigDelta(v.Right))
	default:
		panic("vwaa: smallDelta: unhandled LTL node")
	}
}

// bigDelta passes temporal nodes through smallDelta and distributes over ∧
// (product) and ∨ (union) (§4.3).
func (b *builder) bigDelta(f formula.LTLFormula) []Transition {
	switch v := f.(type) {
	case formula.LTLAnd:
		return product(b.bigDelta(v.Left), b.bigDelta(v.Right))
	case formula.LTLOr:
		return append(b.bigDelta(v.Left), b.bigDelta(v.Right)...)
	default:
		return b.smallDelta(f)
	}
}

// product combines two transition lists pairwise: the combined label is the
// union of both labels' literals (dropped if that union contains a literal
// and its negation), and the combined target conjoins both targets (§4.3).
func product(a, b []Transition) []Transition {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]Transition, 0, len(a)*len(b))
	for _, ta := range a {
		for _, tb := range b {
			lits := append(append([]formula.LTLFormula{}, ta.Label...), tb.Label...)
			if hasComplementaryPair(lits) {
				continue
			}
			target := Normalize(append(append([]formula.LTLFormula{}, ta.Target...), tb.Target...))
			out = append(out, Transition{Label: normalizeAlphabet(lits), Target: target})
		}
	}
	return out
}

// Build discovers the reachable VWAA state space by worklist closure from
// the canonical expansion of root (§4.3).
func Build(root formula.LTLFormula) *VWAA {
	b := newBuilder()
	v := &VWAA{
		states: make(map[string]Conjunction),
		trans:  make(map[string][]Transition),
	}

	v.Initial = Bar(root)
	var worklist []Conjunction
	for _, c := range v.Initial {
		if _, ok := v.states[c.Key()]; !ok {
			v.states[c.Key()] = c
			v.order = append(v.order, c.Key())
			worklist = append(worklist, c)
		}
	}

	for len(worklist) > 0 {
		c := worklist[0]
		worklist = worklist[1:]

		acc := []Transition{{Label: nil, Target: Conjunction{formula.LTLTrue{}}}}
		for _, member := range c {
			acc = product(acc, b.bigDelta(member))
		}
		acc = dedupTransitions(acc)
		v.trans[c.Key()] = acc

		for _, t := range acc {
			if _, ok := v.states[t.Target.Key()]; !ok {
				v.states[t.Target.Key()] = t.Target
				v.order = append(v.order, t.Target.Key())
				worklist = append(worklist, t.Target)
			}
		}
	}

	v.Finals = make([]formula.LTLFormula, 0, len(b.finals))
	for _, u := range b.finals {
		v.Finals = append(v.Finals, u)
	}
	sortFinals(v.Finals)
	return v
}

func sortFinals(fs []formula.LTLFormula) {
	for i := 1; i < len(fs); i++ {
		for j := i; j > 0 && fs[j-1].String() > fs[j].String(); j-- {
			fs[j-1], fs[j] = fs[j], fs[j-1]
		}
	}
}
