// Package mcsp is a probabilistic model checker for stochastic Petri-net-like
// models.
//
// It reads a Markov decision process (MDP) built from a Petri net's
// reachability graph, together with an atomic-proposition map and an initial
// state, and decides whether a temporal-logic formula — PCTL (branching-time,
// probabilistic) or LTL (linear-time) — holds there.
//
// The Petri net grammar, reachability-graph construction, and command-line
// surface are outside this module; it starts from an already-built mdp.MDP.
//
// Pipeline:
//
//	formula/  — PCTL/LTL concrete syntax → typed formula tree
//	pctl/     — value iteration and fixpoints evaluating PCTL over an MDP
//	vwaa/     — LTL formula → very-weak alternating automaton
//	gba/      — VWAA → generalized Büchi automaton (transition-based acceptance)
//	ba/       — GBA → Büchi automaton (single acceptance set)
//	dra/      — Safra determinization: BA → deterministic Rabin automaton
//	product/  — MDP × DRA product and accepting-end-component analysis
//	checker/  — wires the above together and exposes Evaluate
//
// An LTL query is reduced to a PCTL reachability query: the product of the
// MDP and the formula's DRA is built, its accepting end components are
// located, and "reach an accepting end component" becomes a
// probability-bounded Until PCTL formula evaluated by the same engine that handles PCTL queries
// directly.
package mcsp
