package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/why3tools/prooflint/internal/session"
)

var pruneCmd = &cobra.Command{
	Use:   "prune [session-file]",
	Short: "Keep only the canonical derivation for every goal in the proof session",
	Long: `Rewrites the proof session in place so that each goal keeps at most one
transf/proof child: the first transformation in document order. Removed
proof attempts are unrecoverable.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := loadConfig().Session
		if len(args) > 0 {
			path = args[0]
		}
		if err := runPrune(path); err != nil {
			logger.Error("Failed to prune proof session", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		fmt.Printf("Pruned proof session written: %s\n", path)
	},
}

func runPrune(path string) error {
	root, err := session.Load(path)
	if err != nil {
		return err
	}
	session.Prune(root)
	return session.Save(path, root)
}
