package domain

import "time"

// FreeTextAnswer is the CorrectOption sentinel for questions answered by
// typing text rather than picking an option.
const FreeTextAnswer = -1

// Question is a single quiz question. Immutable once loaded from the bank.
type Question struct {
	ID            int      `json:"id"`
	Theme         string   `json:"theme"`
	Level         string   `json:"level"`
	Text          string   `json:"text"`
	Options       []string `json:"options,omitempty"`
	CorrectOption int      `json:"correctOption"`
	// Answers holds the accepted answers for free-text questions.
	Answers []string `json:"answers,omitempty"`
	Points  int      `json:"points,omitempty"` // defaults to 1 if zero
}

// PointValue returns the score awarded for answering the question correctly.
func (q Question) PointValue() int {
	if q.Points > 0 {
		return q.Points
	}
	return 1
}

// FreeText reports whether the question is graded by text instead of option index.
func (q Question) FreeText() bool {
	return len(q.Options) == 0
}

// AnswerAttempt records what happened on one question of a session.
type AnswerAttempt struct {
	QuestionID int           `json:"questionId"`
	Raw        string        `json:"raw"`
	Normalized string        `json:"normalized"`
	Elapsed    time.Duration `json:"elapsed"`
	Correct    bool          `json:"correct"`
	TimedOut   bool          `json:"timedOut"`
}

// SessionResult is the complete record of one player's quiz run.
// Never mutated after the session finishes.
type SessionResult struct {
	ID       string          `json:"id"`
	Player   string          `json:"player"`
	Mode     string          `json:"mode"`
	Theme    string          `json:"theme"`
	Attempts []AnswerAttempt `json:"attempts"`
	Score    int             `json:"score"`
	MaxScore int             `json:"maxScore"`
	Duration time.Duration   `json:"duration"`
	PlayedAt time.Time       `json:"playedAt"`
}

// CorrectCount returns how many attempts in the session were graded correct.
func (r SessionResult) CorrectCount() int {
	n := 0
	for _, a := range r.Attempts {
		if a.Correct {
			n++
		}
	}
	return n
}

// LedgerEntry is the derived per-player summary used for ranking.
// Always recomputed from the full session history, never stored on its own.
type LedgerEntry struct {
	Player       string    `json:"player"`
	BestScore    int       `json:"bestScore"`
	Sessions     int       `json:"sessions"`
	AverageScore float64   `json:"averageScore"`
	LastPlayed   time.Time `json:"lastPlayed"`
}

// Mode configures how a session runs. Grading is identical across modes;
// only the time limit and whether the result reaches the ledger differ.
type Mode struct {
	Name      string
	TimeLimit time.Duration // <= 0 means no limit
	Scored    bool
}

// TimedMode runs with a fixed per-question limit and records to the ledger.
func TimedMode(limit time.Duration) Mode {
	return Mode{Name: "timed", TimeLimit: limit, Scored: true}
}

// PracticeMode removes the time limit but still records results.
func PracticeMode() Mode {
	return Mode{Name: "practice", Scored: true}
}

// ReviewMode re-presents missed questions without a limit and without scoring.
func ReviewMode() Mode {
	return Mode{Name: "review", Scored: false}
}
