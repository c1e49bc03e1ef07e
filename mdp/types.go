package mdp

import "github.com/katalvlaran/mcsp/mcerr"

// StateID is an opaque state identifier, supplied by the reachability-graph
// producer. The model checker never interprets its contents.
type StateID string

// ActionID is the internal identity of an action node. Unlike StateID it is
// assigned by this package (AddAction); several action nodes may carry the
// same human-readable Label without being the same node.
type ActionID string

// Action is a node reached by exactly one state (its owner) and leading, via
// weighted edges, to zero or more successor states.
type Action struct {
	ID    ActionID
	Label string // traceability / LTL-product bookkeeping, not an identity
}

// Edge is an action→state edge carrying the probability of that outcome.
type Edge struct {
	To     StateID
	Weight float64
}

// Sentinel errors surfaced by Builder.
var (
	errEmptyState  = mcerr.New(mcerr.GraphInvariantViolation, "state id is empty")
	errEmptyAction = mcerr.New(mcerr.GraphInvariantViolation, "action id is empty")
)

// MDP is the finite, immutable Markov decision process produced by Builder.
//
// All maps are populated once at construction time and never mutated
// afterwards, so concurrent readers need no synchronization (§5: no shared
// mutable state, single-threaded cooperative evaluation).
type MDP struct {
	initial StateID

	states  map[StateID]struct{}
	actions map[ActionID]*Action

	// stateOut[s] lists the actions owned by state s (s→a edges, weight 1).
	stateOut map[StateID][]ActionID
	// actionOwner[a] is the unique state owning action a.
	actionOwner map[ActionID]StateID
	// actionOut[a] lists the a→state edges with their probabilities.
	actionOut map[ActionID][]Edge
	// statePre[s] lists the actions with an edge into s (a→s).
	statePre map[StateID][]ActionID

	// stateOrder preserves insertion order for deterministic iteration.
	stateOrder  []StateID
	actionOrder []ActionID
}

// Initial returns the distinguished initial state.
func (m *MDP) Initial() StateID { return m.initial }

// HasState reports whether id names a state node of this MDP.
func (m *MDP) HasState(id StateID) bool {
	_, ok := m.states[id]
	return ok
}

// States returns all state nodes in deterministic (insertion) order.
func (m *MDP) States() []StateID {
	out := make([]StateID, len(m.stateOrder))
	copy(out, m.stateOrder)
	return out
}

// Actions returns all action nodes in deterministic (insertion) order.
func (m *MDP) Actions() []ActionID {
	out := make([]ActionID, len(m.actionOrder))
	copy(out, m.actionOrder)
	return out
}

// ActionLabel returns the traceability label of an action node.
func (m *MDP) ActionLabel(a ActionID) string {
	act, ok := m.actions[a]
	if !ok {
		return ""
	}
	return act.Label
}

// OutActions returns the actions owned by state s, in deterministic order.
func (m *MDP) OutActions(s StateID) []ActionID {
	return m.stateOut[s]
}

// OutEdges returns the a→state edges of action a, in deterministic order.
func (m *MDP) OutEdges(a ActionID) []Edge {
	return m.actionOut[a]
}

// Owner returns the unique state that owns action a (the source of the
// implicit weight-1 state→action edge).
func (m *MDP) Owner(a ActionID) StateID {
	return m.actionOwner[a]
}

// PreActions returns the actions with an edge into state s (a→s), i.e. the
// one-hop predecessor actions of s.
func (m *MDP) PreActions(s StateID) []ActionID {
	return m.statePre[s]
}

// PreStates returns the two-hop predecessor states of s: states that own at
// least one action with an edge into s. Duplicates are removed but order is
// not otherwise meaningful.
func (m *MDP) PreStates(s StateID) []StateID {
	seen := make(map[StateID]struct{})
	var out []StateID
	for _, a := range m.statePre[s] {
		owner := m.actionOwner[a]
		if _, ok := seen[owner]; !ok {
			seen[owner] = struct{}{}
			out = append(out, owner)
		}
	}
	return out
}
