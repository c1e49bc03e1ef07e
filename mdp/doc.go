// Package mdp defines the Markov decision process the model checker
// evaluates formulae over, plus the atomic-proposition map that associates
// proposition names with the states where they hold.
//
// An MDP is a finite directed bipartite-like graph with two kinds of nodes:
// state nodes and action nodes. Every outgoing edge from a state leads to an
// action (weight 1, implicit); every outgoing edge from an action leads to a
// state and carries a probability in [0,1]. For any action node, the sum of
// its outgoing probabilities must equal 1 within the tolerance implied by the
// producer's rounding precision.
//
// Construction goes through Builder so the sum-to-one invariant is checked
// once, at Build time; the resulting *MDP is immutable and read-only from
// then on, consulted freely by pctl and product without further validation.
package mdp
