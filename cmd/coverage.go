package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/why3tools/prooflint/audit"
	"github.com/why3tools/prooflint/formatter"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Check that every source module has a proof entry and vice versa",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		result, err := audit.RunCoverage(cfg)
		if err != nil {
			logger.Error("Failed to run coverage audit", zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(formatter.FormatCoverage(result, cfg.Exempt))
		if !result.Pass() {
			os.Exit(1)
		}
	},
}
