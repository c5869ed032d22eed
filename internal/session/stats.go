package session

import "strconv"

// StepsByProver collects the steps count of every proof result in the
// tree, grouped by the prover that produced it. A proof contributes the
// first result child it holds; a missing or malformed steps attribute
// counts as 0.
func StepsByProver(root *Node) map[string][]int {
	steps := make(map[string][]int)
	for proof := range root.Descendants(KindProof) {
		prover := proof.Attr("prover")
		for _, c := range proof.Children {
			if c.Kind == KindResult {
				n, err := strconv.Atoi(c.Attr("steps"))
				if err != nil {
					n = 0
				}
				steps[prover] = append(steps[prover], n)
				break
			}
		}
	}
	return steps
}
