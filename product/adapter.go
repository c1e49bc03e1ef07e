package product

import (
	"fmt"

	"github.com/katalvlaran/mcsp/mdp"
)

// Adapter renames the product's states to dense integer ids and builds the
// reachability-query MDP together with the "aec" atomic proposition
// (§4.7's Reduction step). The returned map lets a caller project a result
// over adapter states back onto the underlying original MDP states.
func (p *Product) Adapter(aec map[StateID]bool, precision int) (*mdp.MDP, mdp.APMap, mdp.StateID, map[StateID]mdp.StateID, error) {
	newID := make(map[StateID]mdp.StateID, len(p.order))
	for i, s := range p.order {
		newID[s] = mdp.StateID(fmt.Sprintf("q%d", i))
	}

	b := mdp.NewBuilder()
	initial := newID[p.Initial]
	if err := b.SetInitial(initial); err != nil {
		return nil, nil, "", nil, err
	}
	for _, s := range p.order {
		if err := b.AddState(newID[s]); err != nil {
			return nil, nil, "", nil, err
		}
		for _, a := range p.actions[s] {
			aid, err := b.AddAction(newID[s], a)
			if err != nil {
				return nil, nil, "", nil, err
			}
			for _, e := range p.actionEdges[a] {
				if err := b.AddTransition(aid, newID[StateID(e.To)], e.Weight); err != nil {
					return nil, nil, "", nil, err
				}
			}
		}
	}
	m, err := b.Build(precision)
	if err != nil {
		return nil, nil, "", nil, err
	}

	aecIDs := make([]mdp.StateID, 0, len(aec))
	for s := range aec {
		aecIDs = append(aecIDs, newID[s])
	}
	ap := mdp.NewAPMap(map[string][]mdp.StateID{"aec": aecIDs})

	return m, ap, initial, newID, nil
}
