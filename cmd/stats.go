package cmd

import (
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/why3tools/prooflint/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats [session-file]",
	Short: "Summarize prover resource usage across the proof session",
	Run: func(cmd *cobra.Command, args []string) {
		path := loadConfig().Session
		if len(args) > 0 {
			path = args[0]
		}
		if err := runStats(path); err != nil {
			logger.Error("Failed to collect prover statistics", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
	},
}

func runStats(path string) error {
	root, err := session.Load(path)
	if err != nil {
		return err
	}
	steps := session.StepsByProver(root)

	provers := make([]string, 0, len(steps))
	for prover := range steps {
		provers = append(provers, prover)
	}
	sort.Strings(provers)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Prover", "Proofs", "Min steps", "Max steps", "Total steps"})
	for _, prover := range provers {
		counts := steps[prover]
		minSteps, maxSteps, total := counts[0], counts[0], 0
		for _, n := range counts {
			if n < minSteps {
				minSteps = n
			}
			if n > maxSteps {
				maxSteps = n
			}
			total += n
		}
		t.AppendRow(table.Row{prover, len(counts), minSteps, maxSteps, total})
	}
	t.Render()
	return nil
}
