// Package bank loads and selects quiz questions from JSON files.
package bank

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"quisqueya-quiz/internal/domain"
)

// Report summarizes a bank load: how many records were playable and how many
// were excluded as malformed.
type Report struct {
	Loaded    int
	Malformed int
}

type record struct {
	ID            *int     `json:"id"`
	Theme         string   `json:"theme"`
	Level         string   `json:"level"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption *int     `json:"correctOption"`
	Answers       []string `json:"answers"`
	Points        int      `json:"points"`
}

// LoadDir reads every *.json file under dir in sorted order and returns the
// playable questions. Malformed records are excluded and counted, never fatal;
// an unreadable file or directory is.
func LoadDir(dir string) ([]domain.Question, Report, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, Report{}, fmt.Errorf("scan bank dir: %w", err)
	}
	sort.Strings(paths)

	var questions []domain.Question
	var report Report
	for _, path := range paths {
		qs, r, err := Load(path)
		if err != nil {
			return nil, Report{}, err
		}
		questions = append(questions, qs...)
		report.Loaded += r.Loaded
		report.Malformed += r.Malformed
	}
	return questions, report, nil
}

// Load reads a single bank file holding a JSON array of question records.
func Load(path string) ([]domain.Question, Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("read bank file: %w", err)
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, Report{}, fmt.Errorf("parse bank file %s: %w", path, err)
	}

	questions := make([]domain.Question, 0, len(records))
	var report Report
	for _, rec := range records {
		q, ok := validate(rec)
		if !ok {
			report.Malformed++
			continue
		}
		questions = append(questions, q)
		report.Loaded++
	}
	return questions, report, nil
}

// validate enforces the Question invariants: required fields present and the
// correct-option index inside the options, or accepted answers on free-text
// questions.
func validate(rec record) (domain.Question, bool) {
	if rec.ID == nil || rec.Text == "" || rec.Theme == "" {
		return domain.Question{}, false
	}
	q := domain.Question{
		ID:      *rec.ID,
		Theme:   rec.Theme,
		Level:   rec.Level,
		Text:    rec.Text,
		Options: rec.Options,
		Answers: rec.Answers,
		Points:  rec.Points,
	}
	if len(rec.Options) == 0 {
		if len(rec.Answers) == 0 {
			return domain.Question{}, false
		}
		q.CorrectOption = domain.FreeTextAnswer
		return q, true
	}
	if rec.CorrectOption == nil || *rec.CorrectOption < 0 || *rec.CorrectOption >= len(rec.Options) {
		return domain.Question{}, false
	}
	q.CorrectOption = *rec.CorrectOption
	return q, true
}

// Themes returns the distinct themes present, sorted.
func Themes(questions []domain.Question) []string {
	seen := make(map[string]struct{})
	for _, q := range questions {
		seen[q.Theme] = struct{}{}
	}
	themes := make([]string, 0, len(seen))
	for t := range seen {
		themes = append(themes, t)
	}
	sort.Strings(themes)
	return themes
}

// Filter keeps questions matching any of the given themes and any of the
// given levels. An empty slice leaves that dimension unfiltered.
func Filter(questions []domain.Question, themes, levels []string) []domain.Question {
	out := questions
	if len(themes) > 0 {
		out = keep(out, func(q domain.Question) bool { return contains(themes, q.Theme) })
	}
	if len(levels) > 0 {
		out = keep(out, func(q domain.Question) bool { return contains(levels, q.Level) })
	}
	return out
}

// Sample returns up to n questions in shuffled order without repetition.
func Sample(questions []domain.Question, n int, rng *rand.Rand) []domain.Question {
	if n > len(questions) {
		n = len(questions)
	}
	if n <= 0 {
		return nil
	}
	out := make([]domain.Question, 0, n)
	for _, i := range rng.Perm(len(questions))[:n] {
		out = append(out, questions[i])
	}
	return out
}

func keep(questions []domain.Question, pred func(domain.Question) bool) []domain.Question {
	out := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if pred(q) {
			out = append(out, q)
		}
	}
	return out
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
