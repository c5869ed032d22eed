package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/why3tools/prooflint/audit"
	"github.com/why3tools/prooflint/formatter"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the coverage and separation audits together",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		failed := false

		result, err := audit.RunCoverage(cfg)
		if err != nil {
			logger.Error("Failed to run coverage audit", zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(formatter.FormatCoverage(result, cfg.Exempt))
		failed = failed || !result.Pass()

		issues, err := audit.RunSeparation(cfg, false)
		if err != nil {
			logger.Error("Failed to run separation audit", zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(formatter.FormatSeparation(issues))
		failed = failed || len(issues) > 0

		if failed {
			os.Exit(1)
		}
	},
}
