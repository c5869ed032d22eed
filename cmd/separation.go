package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/why3tools/prooflint/audit"
	"github.com/why3tools/prooflint/formatter"
)

var (
	watchSources bool
	showProgress bool
)

var separationCmd = &cobra.Command{
	Use:   "separation",
	Short: "Check the statement/proof separation conventions in the sources",
	Long: `Checks every *.mlw file in the source directory: 'val lemma' and 'axiom'
declarations must live in modules ending in Lemmas or Spec, and every
XLemmas module needs a 'module XProofs : XLemmas' implementation.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		issues, err := audit.RunSeparation(cfg, showProgress)
		if err != nil {
			logger.Error("Failed to run separation audit", zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(formatter.FormatSeparation(issues))

		if watchSources {
			watchSeparation(cfg)
			return
		}
		if len(issues) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	separationCmd.Flags().BoolVar(&watchSources, "watch", false, "Re-run the check whenever a source file changes")
	separationCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar while scanning")
}

// watchSeparation blocks, re-checking each source file as it is written.
func watchSeparation(cfg audit.Config) {
	w := audit.NewWatcher(cfg.Source, func(path string) {
		issues, err := audit.CheckFile(path)
		if err != nil {
			logger.Error("Failed to re-check source", zap.String("path", path), zap.Error(err))
			return
		}
		if len(issues) == 0 {
			fmt.Printf("no violations in %s\n", path)
			return
		}
		for _, issue := range issues {
			fmt.Println(issue)
		}
	})
	if err := w.Start(); err != nil {
		logger.Error("Failed to start watcher", zap.String("dir", cfg.Source), zap.Error(err))
		os.Exit(1)
	}
	fmt.Printf("watching %s for changes\n", cfg.Source)
	select {}
}
