// Package vwaa translates an LTL formula into a very-weak alternating
// automaton over conjunctions of its temporal subformulae (§4.3,
// Component C). States are canonical, deduplicated, sorted slices of LTL
// nodes ("conjunctions"); transitions carry an alphabet label — a
// canonical set of LTL literals, where the empty label denotes "true" — and
// a target conjunction. The automaton is discovered by a worklist closure
// starting from the canonicalised disjunctive expansion of the root
// formula, and records every distinct Until subformula encountered as a
// "final" marker: package gba turns each into its own acceptance family.
package vwaa
