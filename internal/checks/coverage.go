// Package checks implements prooflint's audit logic: the proof-coverage
// comparison and the statement/proof separation conventions. Both are
// pure — they report findings and leave exit-code policy to the caller.
package checks

import "sort"

// CoverageResult is the outcome of the proof-coverage audit. Both sides
// of the mismatch are reported; either may be empty, and on a failing
// audit at least one is not.
type CoverageResult struct {
	// MissingOnDisk are files referenced by the proof session that do
	// not exist in the source directory.
	MissingOnDisk []string
	// MissingInSession are source files with no entry in the proof
	// session.
	MissingInSession []string
}

// Pass reports whether the two sets matched exactly.
func (r CoverageResult) Pass() bool {
	return len(r.MissingOnDisk) == 0 && len(r.MissingInSession) == 0
}

// Coverage compares the source files referenced by a proof session
// against the files found in the source directory. Exempt files are
// removed from the directory side before the comparison: they need no
// proof entry. Both mismatch lists come back sorted.
func Coverage(sessionFiles, dirFiles, exempt []string) CoverageResult {
	exempted := make(map[string]bool, len(exempt))
	for _, f := range exempt {
		exempted[f] = true
	}

	inSession := make(map[string]bool, len(sessionFiles))
	for _, f := range sessionFiles {
		inSession[f] = true
	}
	onDisk := make(map[string]bool, len(dirFiles))
	for _, f := range dirFiles {
		if !exempted[f] {
			onDisk[f] = true
		}
	}

	var result CoverageResult
	for f := range inSession {
		if !onDisk[f] {
			result.MissingOnDisk = append(result.MissingOnDisk, f)
		}
	}
	for f := range onDisk {
		if !inSession[f] {
			result.MissingInSession = append(result.MissingInSession, f)
		}
	}
	sort.Strings(result.MissingOnDisk)
	sort.Strings(result.MissingInSession)
	return result
}
