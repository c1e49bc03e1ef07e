// Package gba turns a very-weak alternating automaton into a generalized
// Büchi automaton with transition-based acceptance (§4.4, Component D).
// Each VWAA conjunction state becomes a GBA state with the same outgoing
// transitions (a VWAA conjunction's transition function already is the
// cross-product of its members' small_delta, so package vwaa's discovery
// pass doubles as this step's transition relation). Every distinct Until
// subformula recorded by vwaa.Build becomes its own acceptance family: a
// transition is accepting for family U when its target has already
// "discharged" U, directly or via a reachable transition that does.
// Structurally-identical states are then merged and the survivors renamed
// to small dense string ids.
package gba
