package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Console timed quiz with a persistent leaderboard",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(NewPlayCmd(&configPath))
	cmd.AddCommand(NewLeaderboardCmd(&configPath))
	cmd.AddCommand(NewStatsCmd(&configPath))
	cmd.AddCommand(NewReviewCmd(&configPath))
	return cmd
}
