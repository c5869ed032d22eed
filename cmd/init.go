package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/why3tools/prooflint/audit"
)

// initCmd: prooflint init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new prooflint configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = audit.DefaultConfigPath
		}
		if err := audit.WriteDefaultConfig(path); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}
