package mdp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mcsp/mcerr"
)

// Builder accumulates states, actions, and weighted edges, then produces an
// immutable *MDP. It mirrors the construct-then-freeze discipline used
// throughout this module (§5: automata and the MDP are built once from
// fresh inputs and never mutated afterwards).
type Builder struct {
	initial     StateID
	haveInitial bool

	states      map[StateID]struct{}
	stateOrder  []StateID
	actions     map[ActionID]*Action
	actionOrder []ActionID

	stateOut    map[StateID][]ActionID
	actionOwner map[ActionID]StateID
	actionOut   map[ActionID][]Edge
	statePre    map[StateID][]ActionID

	nextAction uint64
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		states:      make(map[StateID]struct{}),
		actions:     make(map[ActionID]*Action),
		stateOut:    make(map[StateID][]ActionID),
		actionOwner: make(map[ActionID]StateID),
		actionOut:   make(map[ActionID][]Edge),
		statePre:    make(map[StateID][]ActionID),
	}
}

// AddState registers a state node. Adding the same id twice is a no-op.
func (b *Builder) AddState(id StateID) error {
	if id == "" {
		return errEmptyState
	}
	if _, ok := b.states[id]; ok {
		return nil
	}
	b.states[id] = struct{}{}
	b.stateOrder = append(b.stateOrder, id)
	return nil
}

// SetInitial designates id as the initial state, adding it if necessary.
func (b *Builder) SetInitial(id StateID) error {
	if err := b.AddState(id); err != nil {
		return err
	}
	b.initial = id
	b.haveInitial = true
	return nil
}

// AddAction creates a fresh action node owned by state owner, with the given
// traceability label, and returns its freshly assigned id. owner must
// already have been added via AddState or SetInitial.
func (b *Builder) AddAction(owner StateID, label string) (ActionID, error) {
	if _, ok := b.states[owner]; !ok {
		return "", mcerr.New(mcerr.GraphInvariantViolation, "action owner %q is not a known state", owner)
	}
	b.nextAction++
	id := ActionID(fmt.Sprintf("a%d", b.nextAction))
	if id == "" {
		return "", errEmptyAction
	}
	b.actions[id] = &Action{ID: id, Label: label}
	b.actionOrder = append(b.actionOrder, id)
	b.actionOwner[id] = owner
	b.stateOut[owner] = append(b.stateOut[owner], id)
	return id, nil
}

// AddTransition adds the action→state edge a→to with probability weight,
// adding `to` as a state if it is not already known.
func (b *Builder) AddTransition(a ActionID, to StateID, weight float64) error {
	if _, ok := b.actions[a]; !ok {
		return mcerr.New(mcerr.GraphInvariantViolation, "unknown action %q", a)
	}
	if err := b.AddState(to); err != nil {
		return err
	}
	b.actionOut[a] = append(b.actionOut[a], Edge{To: to, Weight: weight})
	b.statePre[to] = append(b.statePre[to], a)
	return nil
}

// Build validates the sum-to-one invariant for every action node (with
// tolerance 10^-precision, per the producer's rounding precision digits) and
// returns the frozen *MDP. A violation outside tolerance is reported as
// mcerr.GraphInvariantViolation.
func (b *Builder) Build(precision int) (*MDP, error) {
	if !b.haveInitial {
		return nil, mcerr.New(mcerr.GraphInvariantViolation, "no initial state designated")
	}
	tol := tolerance(precision)
	for _, a := range b.actionOrder {
		var sum float64
		for _, e := range b.actionOut[a] {
			sum += e.Weight
		}
		if math.Abs(sum-1.0) > tol {
			return nil, mcerr.New(mcerr.GraphInvariantViolation,
				"action %q (label %q) outgoing weights sum to %v, want 1±%v", a, b.actions[a].Label, sum, tol)
		}
	}

	m := &MDP{
		initial:     b.initial,
		states:      b.states,
		actions:     b.actions,
		stateOut:    b.stateOut,
		actionOwner: b.actionOwner,
		actionOut:   b.actionOut,
		statePre:    b.statePre,
		stateOrder:  b.stateOrder,
		actionOrder: b.actionOrder,
	}
	return m, nil
}

// tolerance converts a precision-digits count into an absolute slack bound,
// floored at 1e-9 so a large precision still tolerates ordinary
// floating-point error.
func tolerance(precision int) float64 {
	t := math.Pow(10, -float64(precision))
	const floor = 1e-9
	if t < floor {
		return floor
	}
	return t
}
