package mdp

import "github.com/katalvlaran/mcsp/mcerr"

// APMap maps a proposition name to the set of states where it holds.
type APMap map[string]map[StateID]struct{}

// NewAPMap builds an APMap from plain string-slice input, the shape a
// producer collaborator is expected to hand in.
func NewAPMap(raw map[string][]StateID) APMap {
	out := make(APMap, len(raw))
	for name, states := range raw {
		set := make(map[StateID]struct{}, len(states))
		for _, s := range states {
			set[s] = struct{}{}
		}
		out[name] = set
	}
	return out
}

// Validate checks that every state referenced by ap is a state node of m, as
// required by the AP-map invariant (§3).
func Validate(m *MDP, ap APMap) error {
	for name, states := range ap {
		for s := range states {
			if !m.HasState(s) {
				return mcerr.New(mcerr.GraphInvariantViolation,
					"AP %q references state %q absent from the MDP", name, s)
			}
		}
	}
	return nil
}

// Holds reports whether proposition name holds at state s. Absent
// propositions hold nowhere (callers that must distinguish "unknown
// proposition" from "holds nowhere" should check Lookup instead).
func (ap APMap) Holds(name string, s StateID) bool {
	set, ok := ap[name]
	if !ok {
		return false
	}
	_, ok = set[s]
	return ok
}

// Lookup returns the state set for name and whether name is known at all.
func (ap APMap) Lookup(name string) (map[StateID]struct{}, bool) {
	set, ok := ap[name]
	return set, ok
}
