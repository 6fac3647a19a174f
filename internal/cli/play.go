package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quisqueya-quiz/internal/app"
	"quisqueya-quiz/internal/bank"
	"quisqueya-quiz/internal/config"
	"quisqueya-quiz/internal/domain"
	"quisqueya-quiz/internal/input"
	"quisqueya-quiz/internal/ledger"
)

// NewPlayCmd builds the subcommand that runs a quiz session.
func NewPlayCmd(configPath *string) *cobra.Command {
	var (
		player   string
		modeName string
		themes   []string
		levels   []string
		count    int
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, player, modeName, themes, levels, count)
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "player name (required)")
	cmd.Flags().StringVar(&modeName, "mode", "timed", "session mode: timed or practice")
	cmd.Flags().StringSliceVar(&themes, "theme", nil, "restrict questions to these themes")
	cmd.Flags().StringSliceVar(&levels, "level", nil, "restrict questions to these levels")
	cmd.Flags().IntVar(&count, "count", 0, "number of questions (default from config)")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

func runPlay(ctx context.Context, configPath, player, modeName string, themes, levels []string, count int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	collector := input.New(os.Stdin)
	prompter := NewConsolePrompter(os.Stdout)

	led, err := loadLedger(ctx, cfg.Ledger.Path, collector)
	if err != nil {
		return err
	}

	repo := bank.NewRepository(bank.DirLoader{}, time.Minute)
	questions, report, err := repo.GetBank(ctx, cfg.Bank.Dir)
	if err != nil {
		return err
	}
	if report.Malformed > 0 {
		log.Printf("excluded %d malformed question record(s)", report.Malformed)
	}

	pool := bank.Filter(questions, themes, levels)
	if len(pool) == 0 {
		return domain.ErrEmptyBank
	}
	if count <= 0 {
		count = cfg.Quiz.Questions
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selected := bank.Sample(pool, count, rng)

	mode, err := sessionMode(modeName, config.LimitDuration(cfg.Quiz.TimeLimit, 20*time.Second))
	if err != nil {
		return err
	}

	service := app.NewQuizService(collector, prompter, led)
	result, err := service.RunSession(ctx, player, selected, mode)
	if err != nil {
		return err
	}

	printSummary(result)
	if mode.Scored {
		if err := ledger.Save(cfg.Ledger.Path, led); err != nil {
			return err
		}
		if entry, ok := led.Query(player); ok {
			fmt.Printf("Best score: %d over %d session(s), average %.1f\n",
				entry.BestScore, entry.Sessions, entry.AverageScore)
		}
	}

	missed := app.MissedQuestions(result, selected)
	if len(missed) == 0 {
		return nil
	}
	if !confirm(ctx, collector, fmt.Sprintf("Review the %d missed question(s)? [y/N] ", len(missed))) {
		return nil
	}
	reviewResult, err := service.RunSession(ctx, player, missed, domain.ReviewMode())
	if err != nil {
		return err
	}
	fmt.Printf("\nReview done: %d/%d now correct (not scored).\n",
		reviewResult.CorrectCount(), len(reviewResult.Attempts))
	return nil
}

// loadLedger loads the score file, asking for explicit confirmation before
// abandoning a corrupt one. Declining aborts; history is never dropped silently.
func loadLedger(ctx context.Context, path string, collector *input.Collector) (*ledger.Ledger, error) {
	led, err := ledger.Load(path)
	if err == nil {
		return led, nil
	}
	if !errors.Is(err, domain.ErrLedgerCorrupt) {
		return nil, err
	}
	log.Printf("%v", err)
	if !confirm(ctx, collector, "Score file is unreadable. Start a fresh ledger? [y/N] ") {
		return nil, err
	}
	return ledger.New(nil), nil
}

func sessionMode(name string, limit time.Duration) (domain.Mode, error) {
	switch name {
	case "timed":
		return domain.TimedMode(limit), nil
	case "practice":
		return domain.PracticeMode(), nil
	default:
		return domain.Mode{}, fmt.Errorf("unknown mode %q (want timed or practice)", name)
	}
}

func printSummary(result domain.SessionResult) {
	timedOut := 0
	for _, a := range result.Attempts {
		if a.TimedOut {
			timedOut++
		}
	}
	fmt.Printf("\n%s finished: %d/%d points, %d correct, %d timed out, in %s\n",
		result.Player, result.Score, result.MaxScore,
		result.CorrectCount(), timedOut, result.Duration.Round(time.Second))
}

func confirm(ctx context.Context, collector *input.Collector, prompt string) bool {
	fmt.Print(prompt)
	answer, _, _, err := collector.Collect(ctx, 0)
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
