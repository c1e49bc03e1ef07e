// Package checker drives the full pipeline (Component H): PCTL formulae are
// evaluated directly against the PCTL engine; LTL formulae are compiled
// through the automata chain VWAA→GBA→BA→DRA, composed with the input MDP
// into a product, reduced to an accepting-end-component reachability query,
// and evaluated by the same PCTL engine against an adapter MDP. The
// comparator and probability bound attached to the original LTL query carry
// through unchanged into that adapter query (§4.8, §9).
//
// Callers designate which grammar a formula text uses via LogicType — the
// concrete syntax is ambiguous between the two at the lexical level (a bare
// proposition is valid PCTL but not a complete LTL query), so this mirrors
// how the reference tool's command line selects a mode before parsing.
package checker
