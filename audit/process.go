package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/why3tools/prooflint/internal/checks"
	"github.com/why3tools/prooflint/internal/session"
	"github.com/why3tools/prooflint/internal/types"
)

// ListSources returns the names of the *.mlw files directly inside dir,
// sorted. Subdirectories are not entered.
func ListSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing sources in %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), session.SourceExt) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// RunCoverage loads the proof session and compares the source files it
// references against the source directory, minus the exempt files.
func RunCoverage(cfg Config) (checks.CoverageResult, error) {
	root, err := session.Load(cfg.Session)
	if err != nil {
		return checks.CoverageResult{}, err
	}
	files, err := ListSources(cfg.Source)
	if err != nil {
		return checks.CoverageResult{}, err
	}
	return checks.Coverage(session.SourceFiles(root), files, cfg.Exempt), nil
}

// RunSeparation runs the statement/proof separation checks over every
// source file in the configured directory and returns the accumulated
// violations. With progress enabled a bar tracks the scan.
func RunSeparation(cfg Config, progress bool) ([]types.Issue, error) {
	files, err := ListSources(cfg.Source)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(cfg.Source),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	var issues []types.Issue
	for _, name := range files {
		path := filepath.Join(cfg.Source, name)
		fileIssues, err := CheckFile(path)
		if err != nil {
			return nil, err
		}
		issues = append(issues, fileIssues...)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Println()
	}
	return issues, nil
}

// CheckFile runs the separation checks over a single source file.
func CheckFile(path string) ([]types.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", path, err)
	}
	return checks.Separation(path, string(data)), nil
}
