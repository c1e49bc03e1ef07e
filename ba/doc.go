// Package ba turns a generalized Büchi automaton into an ordinary Büchi
// automaton with a single acceptance set (§4.5, Component E). A state is a
// pair (gba_state, j) tracking how many acceptance families in a row have
// been discharged by the run so far; reaching j = r (the family count)
// marks the state accepting and resets the counter to 0 on the next step.
// Families are ordered once, by descending accepting-transition count, so
// that the counter advances as quickly as the automaton's structure
// allows. Equivalent states (same outgoing transitions and same
// accepting/non-accepting status) are merged and the survivors renamed to
// small dense string ids.
package ba
