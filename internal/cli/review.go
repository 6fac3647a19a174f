package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"quisqueya-quiz/internal/bank"
	"quisqueya-quiz/internal/config"
	"quisqueya-quiz/internal/domain"
	"quisqueya-quiz/internal/ledger"
)

// NewReviewCmd builds the subcommand that prints the attempt log of a
// player's most recent session.
func NewReviewCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "review PLAYER",
		Short: "Show the attempt log of a player's last session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(*configPath, args[0])
		},
		Args: cobra.ExactArgs(1),
	}
}

func runReview(configPath, player string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	led, err := ledger.Load(cfg.Ledger.Path)
	if err != nil {
		return err
	}
	result, ok := led.LastSession(player)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNoSessions, player)
	}

	// Question texts live in the bank, not the ledger; resolve what we can.
	byID := make(map[int]domain.Question)
	if questions, _, err := bank.LoadDir(cfg.Bank.Dir); err == nil {
		for _, q := range questions {
			byID[q.ID] = q
		}
	}

	fmt.Printf("%s — %s session on %s: %d/%d points\n\n",
		result.Player, result.Mode,
		result.PlayedAt.Local().Format("2006-01-02 15:04"),
		result.Score, result.MaxScore)
	for i, a := range result.Attempts {
		text := fmt.Sprintf("question #%d", a.QuestionID)
		if q, ok := byID[a.QuestionID]; ok {
			text = q.Text
		}
		fmt.Printf("%2d. %s\n", i+1, text)
		switch {
		case a.TimedOut:
			fmt.Printf("    timed out after %s\n", a.Elapsed.Round(time.Second))
		case a.Correct:
			fmt.Printf("    correct: %q in %s\n", a.Raw, a.Elapsed.Round(time.Second))
		default:
			fmt.Printf("    wrong: %q", a.Raw)
			if q, ok := byID[a.QuestionID]; ok {
				fmt.Printf(" (answer: %s)", correctText(q))
			}
			fmt.Println()
		}
	}
	return nil
}
