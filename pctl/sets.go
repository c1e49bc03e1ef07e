package pctl

import "github.com/katalvlaran/mcsp/mdp"

type stateSet map[mdp.StateID]struct{}

func newSet(ids ...mdp.StateID) stateSet {
	s := make(stateSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s stateSet) clone() stateSet {
	out := make(stateSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func (s stateSet) has(id mdp.StateID) bool {
	_, ok := s[id]
	return ok
}

func diff(a, b stateSet) stateSet {
	out := make(stateSet)
	for k := range a {
		if !b.has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

func intersect(a, b stateSet) stateSet {
	out := make(stateSet)
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for k := range small {
		if big.has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

func union(a, b stateSet) stateSet {
	out := make(stateSet, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

func equalSets(a, b stateSet) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b.has(k) {
			return false
		}
	}
	return true
}
