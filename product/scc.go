package product

// tarjan computes the strongly connected components of the graph induced
// by edges(v) over the given nodes, using the standard index/lowlink
// marking — the same depth-first traversal discipline the teacher's cycle
// search uses, generalized from cycle enumeration to component discovery.
// Nodes are bipartite graph nodes (state or action ids, as opaque
// strings): the "≥2 nodes" AEC criterion (§4.7) is only meaningful when
// action nodes are counted alongside state nodes, since a single
// self-looping state forms a 2-node component (the state and its action).
func tarjan(nodes []string, edges func(string) []string) [][]string {
	index := make(map[string]int)
	lowlink := make(map[string]int)
	onStack := make(map[string]bool)
	var stack []string
	var sccs [][]string
	counter := 0

	var strongconnect func(v string)
	strongconnect = func(v string) {
		index[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range edges(v) {
			if _, ok := index[w]; !ok {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if index[w] < lowlink[v] {
					lowlink[v] = index[w]
				}
			}
		}

		if lowlink[v] == index[v] {
			var comp []string
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, comp)
		}
	}

	for _, s := range nodes {
		if _, ok := index[s]; !ok {
			strongconnect(s)
		}
	}
	return sccs
}
