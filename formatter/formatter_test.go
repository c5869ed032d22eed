package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/why3tools/prooflint/internal/checks"
	"github.com/why3tools/prooflint/internal/types"
)

func init() {
	color.NoColor = true
}

func TestFormatCoverage_Pass(t *testing.T) {
	out := FormatCoverage(checks.CoverageResult{}, []string{"twoHonestParties.mlw"})
	assert.Contains(t, out, "Proof availability check PASSED:")
	assert.Contains(t, out, "Apart from twoHonestParties.mlw, all *.mlw files in the directory have a proof in the proof tree and vice versa.")
}

func TestFormatCoverage_Fail(t *testing.T) {
	result := checks.CoverageResult{
		MissingInSession: []string{"C.mlw"},
	}
	out := FormatCoverage(result, nil)
	assert.Contains(t, out, "Proof availability check FAILED:")
	assert.Contains(t, out, "*.mlw files in directory but not in proof tree:\nC.mlw\n")
	// the empty sub-list is not printed
	assert.NotContains(t, out, "*.mlw files in proof tree but not in directory:")
}

func TestFormatCoverage_FailBothSides(t *testing.T) {
	result := checks.CoverageResult{
		MissingOnDisk:    []string{"gone.mlw"},
		MissingInSession: []string{"C.mlw"},
	}
	out := FormatCoverage(result, nil)
	assert.Contains(t, out, "*.mlw files in proof tree but not in directory:\ngone.mlw\n")
	assert.Contains(t, out, "*.mlw files in directory but not in proof tree:\nC.mlw\n")
}

func TestFormatSeparation_Pass(t *testing.T) {
	out := FormatSeparation(nil)
	assert.Contains(t, out, "Statement-proof-separation check PASSED:")
	assert.Contains(t, out, "All declared lemmas have proofs in their corresponding -Proofs modules.")
}

func TestFormatSeparation_Fail(t *testing.T) {
	issues := []types.Issue{
		{
			Rule:     checks.RulePlacement,
			Filename: "channel.mlw",
			Line:     2,
			Message:  "'val lemma' or 'axiom' found in non-Lemmas module 'Foo'",
		},
	}
	out := FormatSeparation(issues)
	assert.Contains(t, out, "Statement-proof-separation check FAILED:")
	assert.Contains(t, out, "channel.mlw:2: 'val lemma' or 'axiom' found in non-Lemmas module 'Foo'")
}
