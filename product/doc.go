// Package product builds the MDP × DRA product automaton and reduces an
// LTL query to a PCTL reachability query over it (§4.7, Component G).
//
// A product state pairs an MDP state with a DRA state; a product state's
// outgoing actions mirror the underlying MDP state's actions one-for-one,
// each action's successor DRA component determined once per product state
// from the propositions holding at the MDP state. Accepting end component
// (AEC) detection follows the iterative-prune-then-SCC approach: for each
// Rabin pair, states whose DRA component must be avoided are deleted, the
// resulting dangling actions and deadlocked states are pruned to a
// fixpoint, and any surviving non-trivial strongly connected component
// that touches the pair's "infinitely often" set contributes its states to
// the overall AEC set. The union of every pair's contribution becomes the
// `aec` atomic proposition on an adapter MDP — the original product,
// renamed to dense state ids — against which package checker poses the
// reachability query `P[true U aec] ⋈ q`.
package product
