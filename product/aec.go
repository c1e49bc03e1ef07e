package product

import (
	"sort"

	"github.com/katalvlaran/mcsp/dra"
)

const stateTag, actionTag = "s:", "a:"

// AEC returns the union, over every Rabin pair, of the states belonging to
// an accepting end component for that pair (§4.7).
func (p *Product) AEC(pairs []dra.RabinPair) map[StateID]bool {
	result := make(map[StateID]bool)
	for _, pair := range pairs {
		for _, s := range p.accForPair(pair) {
			result[s] = true
		}
	}
	return result
}

// accForPair removes every product state whose DRA component is in
// pair.L, iteratively prunes dangling actions and deadlocked states to a
// fixpoint, computes the strongly connected components of what remains,
// and returns the state nodes of every component with at least two
// bipartite nodes that touches pair.K.
func (p *Product) accForPair(pair dra.RabinPair) []StateID {
	liveStates := make(map[StateID]bool, len(p.order))
	for _, s := range p.order {
		if !pair.L[p.draOf[s]] {
			liveStates[s] = true
		}
	}
	liveActions := make(map[string]bool)
	for a, owner := range p.actionOwner {
		if liveStates[owner] {
			liveActions[a] = true
		}
	}

	for changed := true; changed; {
		changed = false
		for a := range liveActions {
			owner := p.actionOwner[a]
			if !liveStates[owner] {
				delete(liveActions, a)
				changed = true
				continue
			}
			allLive := len(p.actionEdges[a]) > 0
			for _, e := range p.actionEdges[a] {
				if !liveStates[StateID(e.To)] {
					allLive = false
					break
				}
			}
			if !allLive {
				delete(liveActions, a)
				changed = true
			}
		}
		for s := range liveStates {
			hasAction := false
			for _, a := range p.actions[s] {
				if liveActions[a] {
					hasAction = true
					break
				}
			}
			if !hasAction {
				delete(liveStates, s)
				changed = true
			}
		}
	}

	if len(liveStates) == 0 {
		return nil
	}

	var nodes []string
	for s := range liveStates {
		nodes = append(nodes, stateTag+string(s))
	}
	for a := range liveActions {
		nodes = append(nodes, actionTag+a)
	}
	sort.Strings(nodes)

	edges := func(v string) []string {
		switch {
		case len(v) > len(stateTag) && v[:len(stateTag)] == stateTag:
			s := StateID(v[len(stateTag):])
			var out []string
			for _, a := range p.actions[s] {
				if liveActions[a] {
					out = append(out, actionTag+a)
				}
			}
			return out
		default:
			a := v[len(actionTag):]
			var out []string
			for _, e := range p.actionEdges[a] {
				t := StateID(e.To)
				if liveStates[t] {
					out = append(out, stateTag+string(t))
				}
			}
			return out
		}
	}

	sccs := tarjan(nodes, edges)
	var result []StateID
	for _, comp := range sccs {
		if len(comp) < 2 {
			continue
		}
		var stateNodes []StateID
		hasK := false
		for _, v := range comp {
			if len(v) > len(stateTag) && v[:len(stateTag)] == stateTag {
				s := StateID(v[len(stateTag):])
				stateNodes = append(stateNodes, s)
				if pair.K[p.draOf[s]] {
					hasK = true
				}
			}
		}
		if hasK {
			result = append(result, stateNodes...)
		}
	}
	return result
}
