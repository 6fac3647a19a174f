// Package app holds the quiz session controller: it walks the question
// sequence, races each answer against the countdown, grades, and hands the
// finished result to the score ledger.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"quisqueya-quiz/internal/domain"
	"quisqueya-quiz/internal/grading"
)

// AnswerCollector captures one answer under a deadline. A timed-out collect
// returns an empty answer with timedOut=true; that is an outcome, not an error.
type AnswerCollector interface {
	Collect(ctx context.Context, limit time.Duration) (answer string, elapsed time.Duration, timedOut bool, err error)
}

// Prompter renders questions and per-question feedback. Kept as an interface
// so the controller never touches the terminal directly.
type Prompter interface {
	AskQuestion(number, total int, q domain.Question, limit time.Duration)
	ShowOutcome(q domain.Question, attempt domain.AnswerAttempt)
}

// ResultRecorder receives completed, scored session results.
type ResultRecorder interface {
	Record(result domain.SessionResult) []domain.LedgerEntry
}

// QuizService runs quiz sessions.
type QuizService struct {
	collector AnswerCollector
	prompter  Prompter
	recorder  ResultRecorder
	clock     func() time.Time
	newID     func() string
}

func NewQuizService(collector AnswerCollector, prompter Prompter, recorder ResultRecorder) *QuizService {
	return &QuizService{
		collector: collector,
		prompter:  prompter,
		recorder:  recorder,
		clock:     time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// WithClock is test-only for deterministic timestamps and ids.
func (s *QuizService) WithClock(now func() time.Time, newID func() string) *QuizService {
	s.clock = now
	s.newID = newID
	return s
}

// RunSession asks every question once, grades each answer and returns the
// immutable session result. Scored modes are also handed to the recorder.
// Zero questions yield an immediately-finalized empty result. A collector
// error (cancellation, closed input) aborts the whole session; nothing
// partial is recorded.
func (s *QuizService) RunSession(ctx context.Context, player string, questions []domain.Question, mode domain.Mode) (domain.SessionResult, error) {
	start := s.clock()
	result := domain.SessionResult{
		ID:       s.newID(),
		Player:   player,
		Mode:     mode.Name,
		Theme:    sessionTheme(questions),
		Attempts: []domain.AnswerAttempt{},
		PlayedAt: start,
	}

	asked := make(map[int]bool, len(questions))
	number := 0
	for _, q := range questions {
		if asked[q.ID] {
			continue
		}
		asked[q.ID] = true
		number++

		s.prompter.AskQuestion(number, len(questions), q, mode.TimeLimit)
		answer, elapsed, timedOut, err := s.collector.Collect(ctx, mode.TimeLimit)
		if err != nil {
			return domain.SessionResult{}, err
		}

		attempt := gradeAttempt(q, answer, elapsed, timedOut)
		result.Attempts = append(result.Attempts, attempt)
		result.MaxScore += q.PointValue()
		if attempt.Correct {
			result.Score += q.PointValue()
		}
		s.prompter.ShowOutcome(q, attempt)
	}

	result.Duration = s.clock().Sub(start)
	if mode.Scored && s.recorder != nil {
		s.recorder.Record(result)
	}
	return result, nil
}

// MissedQuestions returns the questions a previous session got wrong or timed
// out on, in attempt order, for review mode.
func MissedQuestions(result domain.SessionResult, pool []domain.Question) []domain.Question {
	byID := make(map[int]domain.Question, len(pool))
	for _, q := range pool {
		byID[q.ID] = q
	}
	var missed []domain.Question
	for _, a := range result.Attempts {
		if a.Correct {
			continue
		}
		if q, ok := byID[a.QuestionID]; ok {
			missed = append(missed, q)
		}
	}
	return missed
}

// gradeAttempt builds the immutable per-question record. Grading is the same
// for every mode: a timeout is always incorrect, everything else goes through
// the normalizer and matching rule.
func gradeAttempt(q domain.Question, answer string, elapsed time.Duration, timedOut bool) domain.AnswerAttempt {
	attempt := domain.AnswerAttempt{
		QuestionID: q.ID,
		Raw:        answer,
		Normalized: grading.Normalize(answer),
		Elapsed:    elapsed,
		TimedOut:   timedOut,
	}
	if !timedOut {
		attempt.Correct = grading.Grade(q, answer)
	}
	return attempt
}

func sessionTheme(questions []domain.Question) string {
	if len(questions) == 0 {
		return ""
	}
	theme := questions[0].Theme
	for _, q := range questions[1:] {
		if q.Theme != theme {
			return "mix"
		}
	}
	return theme
}
