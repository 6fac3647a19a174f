package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quisqueya-quiz/internal/config"
	"quisqueya-quiz/internal/domain"
	"quisqueya-quiz/internal/ledger"
)

// NewLeaderboardCmd builds the subcommand that prints the ranking.
func NewLeaderboardCmd(configPath *string) *cobra.Command {
	var (
		top   int
		theme string
	)
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the ranked leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaderboard(*configPath, top, theme)
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of entries to show")
	cmd.Flags().StringVar(&theme, "theme", "", "rank only sessions of this theme")
	return cmd
}

func runLeaderboard(configPath string, top int, theme string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	led, err := ledger.Load(cfg.Ledger.Path)
	if err != nil {
		return err
	}
	if theme != "" {
		var filtered []domain.SessionResult
		for _, r := range led.Results() {
			if r.Theme == theme {
				filtered = append(filtered, r)
			}
		}
		led = ledger.New(filtered)
	}

	entries := led.TopN(top)
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("%-4s %-20s %6s %9s %8s  %s\n", "#", "Player", "Best", "Sessions", "Average", "Last played")
	for i, e := range entries {
		fmt.Printf("%-4d %-20s %6d %9d %8.1f  %s\n",
			i+1, e.Player, e.BestScore, e.Sessions, e.AverageScore,
			e.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
