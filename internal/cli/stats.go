package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quisqueya-quiz/internal/config"
	"quisqueya-quiz/internal/domain"
	"quisqueya-quiz/internal/ledger"
)

// NewStatsCmd builds the subcommand that prints one player's statistics.
func NewStatsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats PLAYER",
		Short: "Show a player's statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(*configPath, args[0])
		},
	}
}

func runStats(configPath, player string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	led, err := ledger.Load(cfg.Ledger.Path)
	if err != nil {
		return err
	}
	entry, ok := led.Query(player)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNoSessions, player)
	}
	fmt.Printf("Player:       %s\n", entry.Player)
	fmt.Printf("Sessions:     %d\n", entry.Sessions)
	fmt.Printf("Best score:   %d\n", entry.BestScore)
	fmt.Printf("Average:      %.1f\n", entry.AverageScore)
	fmt.Printf("Last played:  %s\n", entry.LastPlayed.Local().Format("2006-01-02 15:04"))
	return nil
}
