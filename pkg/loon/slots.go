package loon

// AssignSlots numbers every node reachable from root with a type slot,
// pre-order, children left to right, and returns the number of distinct
// slots allocated. Var nodes share one slot per name: the first occurrence
// allocates it, later occurrences reuse it. The returned count seeds the
// two reserved base-type slots (count and count+1) and the union-find
// domain size (count+2).
func AssignSlots(root Node) int {
	counter := 0
	vars := map[string]int{}

	root.Walk(func(n Node) bool {
		if v, ok := n.(*Var); ok {
			s, seen := vars[v.Name]
			if !seen {
				s = counter
				counter++
				vars[v.Name] = s
			}
			v.setSlot(s)
			return true
		}
		n.setSlot(counter)
		counter++
		return true
	})

	return counter
}
