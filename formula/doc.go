// Package formula parses PCTL and LTL concrete syntax into typed formula
// trees (§4.1, Component A) and provides the comparator shared by both
// logics.
//
// Concrete syntax (this module's own notation, since the grammar is an
// external-parser concern the specification does not pin down):
//
//	state  := "true" | ident | "!" state | state ("&" state)*
//	        | "(" state ")" | "P(" path "," comp prob ")"
//	path   := "X(" state ")" | state "U" state
//	ltl    := ltlOr
//	ltlOr  := ltlAnd ("|" ltlAnd)*
//	ltlAnd := ltlUR  ("&" ltlUR)*
//	ltlUR  := ltlUnary (("U"|"R") ltlUnary)*
//	ltlUnary := "true" | "false" | "!" ident | ident
//	          | "G(" ltl ")" | "F(" ltl ")" | "X(" ltl ")" | "(" ltl ")"
//	comp   := "<" | "<=" | ">" | ">="
//
// A query is a single expression wrapped in a formula text: the sentinel
// "PHI" must occur exactly once, and everything after the first "=" that
// follows it is the formula, e.g. "PHI = P((true) U (p), >= 1.0)". A PCTL query is a bare
// state formula; an LTL query is always the top-level probability operator
// "P(ltl, comp prob)" — ltl itself never carries a probability bound, which
// is instead threaded through the LTL→PCTL reduction (see package product
// and package checker).
//
// PCTL's ¬ may negate any state formula; LTL's ¬, per the specification,
// is pushed to the leaves during construction so it appears only over
// atomic propositions — Negate implements the dual rewrites that keep that
// invariant (De Morgan, ¬(φUψ)=(¬φ)R(¬ψ), ¬(φRψ)=(¬φ)U(¬ψ)) and the idempotent
// simplifications tt∧φ=φ, ff∧φ=ff, tt∨φ=tt, ff∨φ=φ, φ∧φ=φ are applied by the
// And/Or smart constructors rather than as a separate rewrite pass.
package formula
