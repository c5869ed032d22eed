// Package formatter renders audit outcomes for the terminal.
package formatter

import (
	"strings"

	"github.com/fatih/color"

	"github.com/why3tools/prooflint/internal/checks"
	"github.com/why3tools/prooflint/internal/types"
)

var (
	passStyle    = color.New(color.FgGreen, color.Bold)
	failStyle    = color.New(color.FgRed, color.Bold)
	headingStyle = color.New(color.FgYellow)
	fileStyle    = color.New(color.FgCyan)
)

// FormatCoverage renders the proof-coverage audit result: a PASS banner,
// or a FAIL banner followed by the non-empty mismatch lists.
func FormatCoverage(result checks.CoverageResult, exempt []string) string {
	var b strings.Builder
	if result.Pass() {
		b.WriteString(passStyle.Sprint("Proof availability check PASSED:"))
		b.WriteString("\n")
		if len(exempt) > 0 {
			b.WriteString("Apart from " + strings.Join(exempt, ", ") + ", all *.mlw files in the directory have a proof in the proof tree and vice versa.\n")
		} else {
			b.WriteString("All *.mlw files in the directory have a proof in the proof tree and vice versa.\n")
		}
		return b.String()
	}

	b.WriteString(failStyle.Sprint("Proof availability check FAILED:"))
	b.WriteString("\n")
	if len(result.MissingOnDisk) > 0 {
		b.WriteString(headingStyle.Sprint("*.mlw files in proof tree but not in directory:"))
		b.WriteString("\n")
		for _, f := range result.MissingOnDisk {
			b.WriteString(fileStyle.Sprint(f))
			b.WriteString("\n")
		}
	}
	if len(result.MissingInSession) > 0 {
		b.WriteString(headingStyle.Sprint("*.mlw files in directory but not in proof tree:"))
		b.WriteString("\n")
		for _, f := range result.MissingInSession {
			b.WriteString(fileStyle.Sprint(f))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatSeparation renders the statement/proof separation audit result.
func FormatSeparation(issues []types.Issue) string {
	var b strings.Builder
	if len(issues) == 0 {
		b.WriteString(passStyle.Sprint("Statement-proof-separation check PASSED:"))
		b.WriteString("\n")
		b.WriteString("All declared lemmas have proofs in their corresponding -Proofs modules.\n")
		return b.String()
	}

	b.WriteString(failStyle.Sprint("Statement-proof-separation check FAILED:"))
	b.WriteString("\n")
	b.WriteString("Errors found:\n")
	for _, issue := range issues {
		b.WriteString(fileStyle.Sprint(issue.Filename))
		if issue.Line > 0 {
			b.WriteString(fileStyle.Sprintf(":%d", issue.Line))
		}
		b.WriteString(": " + issue.Message + "\n")
	}
	return b.String()
}
