package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsByProver(t *testing.T) {
	root, err := Parse([]byte(sampleSession))
	require.NoError(t, err)

	steps := StepsByProver(root)
	assert.Equal(t, map[string][]int{"0": {1500, 700}}, steps)
}

func TestStepsByProver_Defaults(t *testing.T) {
	root := NewOther("why3session").Append(
		goalWith(
			// no steps attribute
			New(KindProof, Attr{"prover", "2"}).Append(New(KindResult, Attr{"status", "valid"})),
			// no result child at all; contributes nothing
			New(KindProof, Attr{"prover", "3"}),
		),
	)
	steps := StepsByProver(root)
	assert.Equal(t, map[string][]int{"2": {0}}, steps)
}
