package pctl

import (
	"math"

	"github.com/katalvlaran/mcsp/formula"
	"github.com/katalvlaran/mcsp/mcerr"
	"github.com/katalvlaran/mcsp/mdp"
)

// maxIterations bounds the value-iteration loop in evalUntil. The sequence
// is a contraction on the "unknown" states (every path out of them
// eventually reaches an absorbing probability of 0 or 1), so it converges
// for any finite maxError; this is a defensive backstop against a
// misconfigured (non-positive) maxError rather than an expected code path.
const maxIterations = 1_000_000

// Engine evaluates PCTL state formulae against a fixed MDP, AP map, and
// value-iteration error tolerance (§4.2).
type Engine struct {
	M        *mdp.MDP
	AP       mdp.APMap
	MaxError float64
}

// New builds an Engine. maxError must be positive; it is the termination
// threshold for the Until operator's value iteration.
func New(m *mdp.MDP, ap mdp.APMap, maxError float64) (*Engine, error) {
	if maxError <= 0 {
		return nil, mcerr.New(mcerr.InvalidMaxError, "max error %v must be positive", maxError)
	}
	return &Engine{M: m, AP: ap, MaxError: maxError}, nil
}

// Evaluate returns the set of states satisfying f.
func (e *Engine) Evaluate(f formula.StateFormula) (map[mdp.StateID]bool, error) {
	set, err := e.eval(f)
	if err != nil {
		return nil, err
	}
	out := make(map[mdp.StateID]bool, len(set))
	for s := range e.allStates() {
		out[s] = set.has(s)
	}
	return out, nil
}

func (e *Engine) allStates() stateSet {
	return newSet(e.M.States()...)
}

func (e *Engine) eval(f formula.StateFormula) (stateSet, error) {
	switch v := f.(type) {
	case formula.PCTLTrue:
		return e.allStates(), nil
	case formula.PCTLProp:
		states, ok := e.AP.Lookup(v.Name)
		if !ok {
			return nil, mcerr.New(mcerr.UnknownProposition, "unknown proposition %q", v.Name)
		}
		out := make(stateSet, len(states))
		for s := range states {
			out[s] = struct{}{}
		}
		return out, nil
	case formula.PCTLNot:
		sub, err := e.eval(v.Sub)
		if err != nil {
			return nil, err
		}
		return diff(e.allStates(), sub), nil
	case formula.PCTLAnd:
		l, err := e.eval(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := e.eval(v.Right)
		if err != nil {
			return nil, err
		}
		return intersect(l, r), nil
	case formula.PCTLProb:
		if v.Bound < 0 || v.Bound > 1 {
			return nil, mcerr.New(mcerr.InvalidProbabilityBound, "probability bound %v outside [0,1]", v.Bound)
		}
		return e.evalProb(v)
	default:
		return nil, mcerr.New(mcerr.GraphInvariantViolation, "unhandled PCTL node %T", f)
	}
}

func (e *Engine) evalProb(p formula.PCTLProb) (stateSet, error) {
	switch path := p.Path.(type) {
	case formula.PCTLNext:
		return e.evalNext(path, p.Comparator, p.Bound)
	case formula.PCTLUntil:
		return e.evalUntil(path, p.Comparator, p.Bound)
	default:
		return nil, mcerr.New(mcerr.GraphInvariantViolation, "unhandled path formula %T", p.Path)
	}
}

func (e *Engine) edgeWeight(a mdp.ActionID, to mdp.StateID) float64 {
	var w float64
	for _, edge := range e.M.OutEdges(a) {
		if edge.To == to {
			w += edge.Weight
		}
	}
	return w
}

// evalNext evaluates X(phi) under comp/bound: the per-state probability of
// stepping into a phi-state is the max or min (by comp's polarity) over the
// state's own actions of that action's probability mass landing in phi.
func (e *Engine) evalNext(path formula.PCTLNext, comp formula.Comparator, bound float64) (stateSet, error) {
	phi, err := e.eval(path.Sub)
	if err != nil {
		return nil, err
	}

	actionProb := make(map[mdp.ActionID]float64)
	for phiState := range phi {
		for _, a := range e.M.PreActions(phiState) {
			actionProb[a] += e.edgeWeight(a, phiState)
		}
	}

	stateProb := make(map[mdp.StateID]float64)
	haveProb := make(map[mdp.StateID]bool)
	for _, owner := range e.M.States() {
		for _, a := range e.M.OutActions(owner) {
			p := actionProb[a]
			if !haveProb[owner] {
				stateProb[owner] = p
				haveProb[owner] = true
				continue
			}
			if comp.IsUpperBound() {
				stateProb[owner] = math.Max(stateProb[owner], p)
			} else {
				stateProb[owner] = math.Min(stateProb[owner], p)
			}
		}
	}

	result := make(stateSet)
	for _, s := range e.M.States() {
		if comp.Evaluate(stateProb[s], bound) {
			result[s] = struct{}{}
		}
	}
	return result, nil
}

// evalUntil evaluates phi U psi under comp/bound via the qualitative
// fixpoints S0/S1 followed by value iteration on the remaining states,
// mirroring the reference tool's algorithm exactly (§4.2, §9).
func (e *Engine) evalUntil(path formula.PCTLUntil, comp formula.Comparator, bound float64) (stateSet, error) {
	all := e.allStates()

	if comp == formula.Geq && bound == 0.0 {
		return all, nil
	}
	if comp == formula.Leq && bound == 1.0 {
		return all, nil
	}

	leftPhi, err := e.eval(path.Left)
	if err != nil {
		return nil, err
	}
	rightPhi, err := e.eval(path.Right)
	if err != nil {
		return nil, err
	}

	notLeft := diff(all, leftPhi)
	notRight := diff(all, rightPhi)
	notLeftAndNotRight := intersect(notLeft, notRight)

	s0 := e.wOp(notRight, notLeftAndNotRight, all)
	s1 := e.uOp(leftPhi, rightPhi, all)
	sq := diff(all, union(s0, s1))

	probMap := make(map[mdp.StateID]float64, len(all))
	for s := range s0 {
		probMap[s] = 0.0
	}
	for s := range s1 {
		probMap[s] = 1.0
	}
	for s := range sq {
		probMap[s] = 0.0
	}

	for iter := 0; len(sq) > 0; iter++ {
		if iter >= maxIterations {
			return nil, mcerr.New(mcerr.GraphInvariantViolation, "value iteration failed to converge within %d iterations", maxIterations)
		}
		var maxErr float64
		for s := range sq {
			var best *float64
			for _, a := range e.M.OutActions(s) {
				var toSQ, toS1 float64
				for _, edge := range e.M.OutEdges(a) {
					if sq.has(edge.To) {
						toSQ += edge.Weight * probMap[edge.To]
					}
					if s1.has(edge.To) {
						toS1 += edge.Weight
					}
				}
				candidate := toSQ + toS1
				if best == nil {
					v := candidate
					best = &v
				} else if comp.IsUpperBound() {
					v := math.Max(*best, candidate)
					best = &v
				} else {
					v := math.Min(*best, candidate)
					best = &v
				}
			}
			var next float64
			if best != nil {
				next = *best
			}
			maxErr = math.Max(maxErr, math.Abs(probMap[s]-next))
			probMap[s] = next
		}
		if maxErr < e.MaxError {
			break
		}
	}

	result := make(stateSet)
	for s, p := range probMap {
		if comp.Evaluate(p, bound) {
			result[s] = struct{}{}
		}
	}
	return result, nil
}

// wOp computes the greatest fixpoint T = rightTsi ∪ (leftTsi ∩ {s : every
// action of s has every successor in T}), starting from T=all. It
// characterizes S0, the states from which phi U psi holds under no
// scheduler whatsoever (so its probability is exactly zero for both the
// maximizing and minimizing objective).
func (e *Engine) wOp(leftTsi, rightTsi, all stateSet) stateSet {
	newSet := all.clone()
	for {
		notNew := diff(all, newSet)
		tmp2 := make(stateSet)
		for s := range notNew {
			for _, a := range e.M.PreActions(s) {
				tmp2[e.M.Owner(a)] = struct{}{}
			}
		}
		tmp3 := diff(all, tmp2)
		tmp4 := intersect(leftTsi, tmp3)
		tmp5 := union(rightTsi, tmp4)
		tmp6 := intersect(newSet, tmp5)
		if equalSets(tmp6, newSet) {
			return tmp6
		}
		newSet = tmp6
	}
}

// uOp computes the least fixpoint T = rightPhi ∪ (leftPhi ∩ onlyPre ∩
// {s : every action of s has every successor in T}), starting from
// T=rightPhi. It characterizes S1, the states from which phi U psi holds
// under every scheduler (probability exactly one regardless of objective).
func (e *Engine) uOp(leftPhi, rightPhi, all stateSet) stateSet {
	onlyPre := make(stateSet)
	for s := range all {
		if len(e.M.OutActions(s)) > 0 {
			onlyPre[s] = struct{}{}
		}
	}

	newSet := rightPhi.clone()
	for {
		notNew := diff(all, newSet)
		tmp2 := make(stateSet)
		for s := range notNew {
			for _, a := range e.M.PreActions(s) {
				tmp2[e.M.Owner(a)] = struct{}{}
			}
		}
		tmp3 := diff(all, tmp2)
		tmp4 := intersect(leftPhi, tmp3)
		tmp5 := intersect(onlyPre, tmp4)
		tmp6 := union(newSet, tmp5)
		if equalSets(tmp6, newSet) {
			return tmp6
		}
		newSet = tmp6
	}
}
