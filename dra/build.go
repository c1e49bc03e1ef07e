package dra

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mcsp/ba"
	"github.com/katalvlaran/mcsp/vwaa"
)

// RabinPair is one (L_i, K_i) entry of the Rabin acceptance condition
// (§3): a run is accepting iff some pair's L is visited finitely often and
// K infinitely often.
type RabinPair struct {
	L map[string]bool
	K map[string]bool
}

// DRA is the immutable deterministic Rabin automaton produced by Build.
type DRA struct {
	Initial string
	order   []string
	// trans[state][symbol.Key()] is the explicit successor for one of the
	// discrete symbols in symbols (the BA's own observed alphabet, §4.6);
	// others[state] is the successor for any symbol outside it.
	trans   map[string]map[string]string
	symbols []vwaa.Alphabet
	others  map[string]string
	Pairs   []RabinPair
}

// States returns the DRA's state ids in deterministic order.
func (d *DRA) States() []string { return append([]string{}, d.order...) }

// Delta returns the successor of state under symbol. The caller's symbol is
// typically a full propositional valuation (one literal per known
// proposition, §4.7's label_of), not literally one of the BA's sparse
// observed labels, so Delta does not look symbol up by exact key: it picks
// the most specific registered symbol that is a literal subset of (i.e.
// consistent with) the caller's symbol, falling back to the "Others"
// default only when none of the observed labels apply.
func (d *DRA) Delta(state string, symbol vwaa.Alphabet) string {
	best, bestLen := "", -1
	for _, sym := range d.symbols {
		if len(sym) <= bestLen || !subsetOf(sym, symbol) {
			continue
		}
		if next, ok := d.trans[state][sym.Key()]; ok {
			best, bestLen = next, len(sym)
		}
	}
	if bestLen >= 0 {
		return best
	}
	return d.others[state]
}

func subsetOf(label, symbol vwaa.Alphabet) bool {
	set := make(map[string]bool, len(symbol))
	for _, l := range symbol {
		set[l.String()] = true
	}
	for _, l := range label {
		if !set[l.String()] {
			return false
		}
	}
	return true
}

// Build determinizes b via Safra's construction (§4.6).
func Build(b *ba.BA) *DRA {
	finals := make(map[string]bool)
	for _, s := range b.States() {
		if b.Final(s) {
			finals[s] = true
		}
	}

	succFor := func(symbol vwaa.Alphabet, useSymbol bool) func(string) []string {
		return func(state string) []string {
			var out []string
			for _, t := range b.Transitions(state) {
				if useSymbol {
					if subsetOf(t.Label, symbol) {
						out = append(out, t.Target)
					}
				} else if len(t.Label) == 0 {
					out = append(out, t.Target)
				}
			}
			return out
		}
	}

	symbolSet := make(map[string]vwaa.Alphabet)
	for _, s := range b.States() {
		for _, t := range b.Transitions(s) {
			symbolSet[t.Label.Key()] = t.Label
		}
	}
	var symbols []vwaa.Alphabet
	for _, a := range symbolSet {
		symbols = append(symbols, a)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i].Key() < symbols[j].Key() })

	root := &node{id: 1, label: newLabel(b.Initial)}

	trans := make(map[string]map[string]string)
	others := make(map[string]string)
	discovered := make(map[string]*node)
	var order []string
	var worklist []*node

	reg := func(n *node) string {
		k := n.key()
		if _, ok := discovered[k]; !ok {
			discovered[k] = n
			order = append(order, k)
			worklist = append(worklist, n)
		}
		return k
	}

	initialKey := reg(root)

	step := func(t *node, succ func(string) []string) *node {
		w := t.clone()
		clearMarks(w)
		nextID := w.maxID()
		growFinalChildren(w, finals, &nextID)
		stepLabels(w, succ)
		horizontalMerge(w)
		dropEmpty(w)
		verticalMerge(w)
		return w
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		curKey := cur.key()
		trans[curKey] = make(map[string]string)

		for _, sym := range symbols {
			succ := step(cur, succFor(sym, true))
			trans[curKey][sym.Key()] = reg(succ)
		}
		others[curKey] = reg(step(cur, succFor(nil, false)))
	}

	// Canonical small-integer renaming.
	sort.Strings(order)
	newID := make(map[string]string, len(order))
	for i, k := range order {
		newID[k] = fmt.Sprintf("d%d", i)
	}

	finalTrans := make(map[string]map[string]string, len(order))
	finalOthers := make(map[string]string, len(order))
	for _, k := range order {
		id := newID[k]
		finalTrans[id] = make(map[string]string, len(trans[k]))
		for sym, tgt := range trans[k] {
			finalTrans[id][sym] = newID[tgt]
		}
		finalOthers[id] = newID[others[k]]
	}

	maxNodeID := 0
	for _, k := range order {
		if m := discovered[k].maxID(); m > maxNodeID {
			maxNodeID = m
		}
	}
	var pairs []RabinPair
	for i := 1; i <= maxNodeID; i++ {
		l := make(map[string]bool)
		kk := make(map[string]bool)
		for _, key := range order {
			id := newID[key]
			tree := discovered[key]
			if !tree.hasID(i) {
				l[id] = true
			}
			if tree.markedHasID(i) {
				kk[id] = true
			}
		}
		pairs = append(pairs, RabinPair{L: l, K: kk})
	}

	return &DRA{
		Initial: newID[initialKey],
		order:   renameOrder(order, newID),
		trans:   finalTrans,
		symbols: symbols,
		others:  finalOthers,
		Pairs:   pairs,
	}
}

func renameOrder(order []string, newID map[string]string) []string {
	out := make([]string, len(order))
	for i, k := range order {
		out[i] = newID[k]
	}
	return out
}
