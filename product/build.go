package product

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mcsp/dra"
	"github.com/katalvlaran/mcsp/formula"
	"github.com/katalvlaran/mcsp/mdp"
	"github.com/katalvlaran/mcsp/vwaa"
)

// StateID identifies a product state "mdpState|draState".
type StateID string

func stateID(m mdp.StateID, d string) StateID {
	return StateID(fmt.Sprintf("%s|%s", m, d))
}

// Product is the immutable MDP × DRA product automaton built by Build.
type Product struct {
	Initial     StateID
	order       []StateID
	mdpOf       map[StateID]mdp.StateID
	draOf       map[StateID]string
	actions     map[StateID][]string
	actionOwner map[string]StateID
	actionEdges map[string][]mdp.Edge // Edge.To here is a product StateID string reused through mdp.StateID
}

// States returns the product's discovered states in deterministic order.
func (p *Product) States() []StateID { return append([]StateID{}, p.order...) }

// DRAComponent returns the DRA state component of a product state.
func (p *Product) DRAComponent(s StateID) string { return p.draOf[s] }

// MDPState returns the underlying MDP state component of a product state.
func (p *Product) MDPState(s StateID) mdp.StateID { return p.mdpOf[s] }

// Actions returns the action ids owned by product state s.
func (p *Product) Actions(s StateID) []string { return p.actions[s] }

// Owner returns the product state owning action a.
func (p *Product) Owner(a string) StateID { return p.actionOwner[a] }

// Successors returns the (target, weight) pairs of action a.
func (p *Product) Successors(a string) []mdp.Edge { return p.actionEdges[a] }

// labelOf returns the propositional valuation at MDP state s, one literal
// per known proposition name, positive if it holds and negated otherwise —
// the alphabet a DRA transition is checked against (§4.7).
func labelOf(ap mdp.APMap, names []string, s mdp.StateID) vwaa.Alphabet {
	lits := make([]formula.LTLFormula, 0, len(names))
	for _, name := range names {
		if ap.Holds(name, s) {
			lits = append(lits, formula.LTLProp{Name: name})
		} else {
			lits = append(lits, formula.LTLNot{Prop: formula.LTLProp{Name: name}})
		}
	}
	return vwaa.Alphabet(lits)
}

// Build constructs the product automaton by worklist closure from
// (initial MDP state, initial DRA state) (§4.7).
func Build(m *mdp.MDP, ap mdp.APMap, d *dra.DRA, initial mdp.StateID) *Product {
	names := make([]string, 0)
	for name := range ap {
		names = append(names, name)
	}
	sort.Strings(names)

	p := &Product{
		mdpOf:       make(map[StateID]mdp.StateID),
		draOf:       make(map[StateID]string),
		actions:     make(map[StateID][]string),
		actionOwner: make(map[string]StateID),
		actionEdges: make(map[string][]mdp.Edge),
	}

	p.Initial = stateID(initial, d.Initial)
	seen := make(map[StateID]bool)
	seen[p.Initial] = true
	p.order = append(p.order, p.Initial)
	p.mdpOf[p.Initial] = initial
	p.draOf[p.Initial] = d.Initial
	worklist := []StateID{p.Initial}

	var nextAction uint64
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		mstate := p.mdpOf[cur]
		dstate := p.draOf[cur]
		label := labelOf(ap, names, mstate)
		nextDRA := d.Delta(dstate, label)

		for _, a := range m.OutActions(mstate) {
			nextAction++
			aid := fmt.Sprintf("pa%d", nextAction)
			p.actions[cur] = append(p.actions[cur], aid)
			p.actionOwner[aid] = cur

			for _, e := range m.OutEdges(a) {
				target := stateID(e.To, nextDRA)
				if !seen[target] {
					seen[target] = true
					p.order = append(p.order, target)
					p.mdpOf[target] = e.To
					p.draOf[target] = nextDRA
					worklist = append(worklist, target)
				}
				p.actionEdges[aid] = append(p.actionEdges[aid], mdp.Edge{To: mdp.StateID(target), Weight: e.Weight})
			}
		}
	}

	return p
}
