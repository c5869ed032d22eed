package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/why3tools/prooflint/audit"
)

var (
	cfgFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "prooflint",
	Short: "prooflint - maintenance checks for a Why3 proof repository",
	Long: `prooflint keeps a Why3-based proof repository tidy: it prunes redundant
proof attempts from the session tree and audits the WhyML sources for
proof coverage and statement/proof separation.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	logger = zap.Must(zap.NewProduction())

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(separationCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadConfig resolves the effective configuration: the --config file if
// given, otherwise .prooflint.yaml if present, otherwise defaults.
func loadConfig() audit.Config {
	if cfgFile != "" {
		cfg, err := audit.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load config file", zap.String("path", cfgFile), zap.Error(err))
		}
		return cfg
	}
	cfg, err := audit.LoadConfig(audit.DefaultConfigPath)
	if err != nil {
		return audit.DefaultConfig()
	}
	return cfg
}
