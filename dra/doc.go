// Package dra determinizes a Büchi automaton into a deterministic Rabin
// automaton via Safra's construction (§4.6, Component F). DRA states are
// Safra trees: ordered trees whose nodes carry a unique integer id (the
// root is id 1), a label that is a set of underlying BA states, and a
// "marked" flag. Each step clears marks, grows a fresh final-state child
// per node, steps every label through the BA's transition relation for the
// symbol being consumed, merges siblings horizontally to keep labels
// disjoint, drops emptied nodes, and merges a node vertically into a leaf
// (marking it) once its label equals the union of its children's labels.
//
// The symbol alphabet is the set of alphabet labels actually occurring on
// BA transitions; a BA transition fires under a symbol when its own label
// is a subset of that symbol's literals (the empty label — "true" — always
// fires). Transitions for any valuation outside the observed alphabet fall
// back to the automaton's "Others" default, computed the same way using
// only the empty-label (epsilon) transitions, since an unobserved valuation
// is assumed to share no literals with any transition that demands one.
//
// The Rabin acceptance condition is derived once determinization closes:
// for every id i from 1 up to the largest node id appearing anywhere in the
// discovered state space, L_i collects the DRA states whose tree has no node with id i and K_i the
// states whose tree has a *marked* node with id i.
package dra
