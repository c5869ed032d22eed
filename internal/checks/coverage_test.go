package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverage(t *testing.T) {
	exempt := []string{"twoHonestParties.mlw"}

	tests := []struct {
		name             string
		session          []string
		dir              []string
		wantPass         bool
		wantMissingDisk  []string
		wantMissingEntry []string
	}{
		{
			name:     "exempt file needs no proof entry",
			session:  []string{"A.mlw", "B.mlw"},
			dir:      []string{"A.mlw", "B.mlw", "twoHonestParties.mlw"},
			wantPass: true,
		},
		{
			name:             "file on disk without proof entry",
			session:          []string{"A.mlw"},
			dir:              []string{"A.mlw", "C.mlw"},
			wantPass:         false,
			wantMissingEntry: []string{"C.mlw"},
		},
		{
			name:            "session references a missing file",
			session:         []string{"A.mlw", "gone.mlw"},
			dir:             []string{"A.mlw"},
			wantPass:        false,
			wantMissingDisk: []string{"gone.mlw"},
		},
		{
			name:             "mismatch on both sides",
			session:          []string{"A.mlw", "gone.mlw"},
			dir:              []string{"A.mlw", "C.mlw", "B.mlw"},
			wantPass:         false,
			wantMissingDisk:  []string{"gone.mlw"},
			wantMissingEntry: []string{"B.mlw", "C.mlw"},
		},
		{
			name:     "empty on both sides",
			wantPass: true,
		},
		{
			name:            "exempt file in session still counts as session-side",
			session:         []string{"A.mlw", "twoHonestParties.mlw"},
			dir:             []string{"A.mlw", "twoHonestParties.mlw"},
			wantPass:        false,
			wantMissingDisk: []string{"twoHonestParties.mlw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coverage(tt.session, tt.dir, exempt)
			assert.Equal(t, tt.wantPass, got.Pass())
			assert.Equal(t, tt.wantMissingDisk, got.MissingOnDisk)
			assert.Equal(t, tt.wantMissingEntry, got.MissingInSession)
		})
	}
}
