package cli

import (
	"fmt"
	"io"
	"time"

	"quisqueya-quiz/internal/domain"
)

// ConsolePrompter renders questions and outcomes to the terminal.
type ConsolePrompter struct {
	out io.Writer
}

func NewConsolePrompter(out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{out: out}
}

func (p *ConsolePrompter) AskQuestion(number, total int, q domain.Question, limit time.Duration) {
	fmt.Fprintf(p.out, "\nQuestion %d/%d [%s, %s]\n", number, total, q.Theme, q.Level)
	fmt.Fprintf(p.out, "%s\n", q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
	if limit > 0 {
		fmt.Fprintf(p.out, "You have %s.\n", limit)
	}
	fmt.Fprint(p.out, "> ")
}

func (p *ConsolePrompter) ShowOutcome(q domain.Question, attempt domain.AnswerAttempt) {
	switch {
	case attempt.TimedOut:
		fmt.Fprintf(p.out, "Time's up! The answer was: %s\n", correctText(q))
	case attempt.Correct:
		fmt.Fprintf(p.out, "Correct! (+%d)\n", q.PointValue())
	default:
		fmt.Fprintf(p.out, "Wrong. The answer was: %s\n", correctText(q))
	}
}

func correctText(q domain.Question) string {
	if q.FreeText() {
		if len(q.Answers) > 0 {
			return q.Answers[0]
		}
		return "unknown"
	}
	if q.CorrectOption >= 0 && q.CorrectOption < len(q.Options) {
		return q.Options[q.CorrectOption]
	}
	return "unknown"
}
