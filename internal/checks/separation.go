package checks

import (
	"fmt"
	"strings"

	"github.com/why3tools/prooflint/internal/mlw"
	"github.com/why3tools/prooflint/internal/types"
)

const (
	// RulePlacement flags lemma/axiom declarations outside Lemmas/Spec
	// modules.
	RulePlacement = "lemma-placement"
	// RulePairing flags Lemmas modules with no matching Proofs module.
	RulePairing = "proof-pairing"
)

const (
	lemmasSuffix = "Lemmas"
	proofsSuffix = "Proofs"
	specSuffix   = "Spec"
)

// Separation runs both statement/proof separation checks over one WhyML
// source file and returns every violation found.
func Separation(filename, src string) []types.Issue {
	events := mlw.Scan(src)
	issues := checkPlacement(filename, events)
	return append(issues, checkPairing(filename, events)...)
}

// checkPlacement verifies that "val lemma" and "axiom" declarations only
// appear inside modules whose name ends in Lemmas or Spec. Declarations
// at file scope, before any module, are left alone.
func checkPlacement(filename string, events []mlw.Event) []types.Issue {
	var issues []types.Issue
	for _, ev := range events {
		if ev.Kind != mlw.EventLemmaDecl && ev.Kind != mlw.EventAxiomDecl {
			continue
		}
		m := ev.Enclosing
		if m == "" || strings.HasSuffix(m, lemmasSuffix) || strings.HasSuffix(m, specSuffix) {
			continue
		}
		issues = append(issues, types.Issue{
			Rule:     RulePlacement,
			Filename: filename,
			Line:     ev.Pos.Line,
			Column:   ev.Pos.Column,
			Message:  fmt.Sprintf("'val lemma' or 'axiom' found in non-Lemmas module '%s'", m),
		})
	}
	return issues
}

// checkPairing verifies that every module XLemmas is implemented by a
// module declared as "module XProofs : XLemmas" in the same file.
func checkPairing(filename string, events []mlw.Event) []types.Issue {
	ascribed := make(map[string]string) // Proofs module -> Lemmas module it implements
	for _, ev := range events {
		if ev.Kind == mlw.EventModule &&
			strings.HasSuffix(ev.Name, proofsSuffix) &&
			strings.HasSuffix(ev.Ascribed, lemmasSuffix) {
			ascribed[ev.Name] = ev.Ascribed
		}
	}

	var issues []types.Issue
	for _, ev := range events {
		if ev.Kind != mlw.EventModule || !strings.HasSuffix(ev.Name, lemmasSuffix) {
			continue
		}
		proofs := strings.TrimSuffix(ev.Name, lemmasSuffix) + proofsSuffix
		if ascribed[proofs] != ev.Name {
			issues = append(issues, types.Issue{
				Rule:     RulePairing,
				Filename: filename,
				Line:     ev.Pos.Line,
				Column:   ev.Pos.Column,
				Message:  fmt.Sprintf("no corresponding Proofs module for Lemmas module '%s'", ev.Name),
			})
		}
	}
	return issues
}
