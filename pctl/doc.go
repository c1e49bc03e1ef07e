// Package pctl evaluates PCTL state formulae against an MDP (§4.2,
// Component B). Conjunction, negation, and atomic propositions are
// evaluated directly against the MDP's state set; the probability operator
// P(path, comp bound) is evaluated by first deciding, for Until, the
// qualitative fixpoints S0 (states from which the probability of satisfying
// the path formula is exactly zero under every scheduler) and S1 (states
// from which every path, under every scheduler, satisfies the path formula,
// so its probability is one), and then running value iteration restricted
// to the remaining "unknown" states until two consecutive iterates differ
// by less than the caller-supplied maxError. States whose probability is
// one only in the limit are not in S1; value iteration approximates them.
//
// Whether maximum or minimum probability over schedulers is computed is
// determined by the comparator's polarity (§4.2, §9): an upper-bound
// comparator (< or <=) is checked against the maximum probability, a
// lower-bound comparator (> or >=) against the minimum.
package pctl
