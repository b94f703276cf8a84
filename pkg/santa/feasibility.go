package santa

// Feasible reports whether at least one complete assignment exists, i.e. whether the
// bipartite graph of givers and recipients, minus self and forbidden edges, has a
// perfect matching. Uses augmenting paths, O(n^3) for n participants.
func Feasible(participants []Participant, forbidden *Forbidden) bool {
	n := len(participants)
	if n < 2 {
		return false
	}

	allowed := func(giver, recipient int) bool {
		return giver != recipient &&
			!forbidden.Forbids(participants[giver].Name, participants[recipient].Name)
	}

	// giverOf[r] is the giver currently matched to recipient r, or -1.
	giverOf := make([]int, n)
	for i := range giverOf {
		giverOf[i] = -1
	}

	var augment func(giver int, visited []bool) bool
	augment = func(giver int, visited []bool) bool {
		for r := range n {
			if visited[r] || !allowed(giver, r) {
				continue
			}
			visited[r] = true
			if giverOf[r] < 0 || augment(giverOf[r], visited) {
				giverOf[r] = giver
				return true
			}
		}
		return false
	}

	for g := range n {
		if !augment(g, make([]bool, n)) {
			return false
		}
	}
	return true
}
