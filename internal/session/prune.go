package session

import "slices"

// Prune rewrites every goal in the tree so that at most one transf or
// proof child survives. The canonical child is the first transf child in
// document order; scanning stops there. When a goal has no transf child
// the canonical child resolves to none and every transf/proof child is
// removed — goals discharged only by direct prover calls lose their
// attempts. Children of other kinds are never touched.
//
// Pruning is idempotent: a second run leaves the tree unchanged.
func Prune(root *Node) {
	// Snapshot the goals first; pruning detaches subtrees and the
	// iteration order must reflect the tree as parsed.
	for _, goal := range slices.Collect(root.Descendants(KindGoal)) {
		pruneGoal(goal)
	}
}

func pruneGoal(goal *Node) {
	var keep *Node
	for _, c := range goal.Children {
		if c.Kind == KindTransf {
			keep = c
			break
		}
	}
	kept := goal.Children[:0]
	for _, c := range goal.Children {
		if c == keep || (c.Kind != KindTransf && c.Kind != KindProof) {
			kept = append(kept, c)
		}
	}
	// Release the tail so detached children are not pinned.
	for i := len(kept); i < len(goal.Children); i++ {
		goal.Children[i] = nil
	}
	goal.Children = kept
}
