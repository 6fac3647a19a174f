package bank

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"quisqueya-quiz/internal/domain"
)

func TestLoadDirExcludesMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "histoire.json", `[
		{"id": 1, "theme": "histoire", "level": "facile", "text": "Capital of Haiti?",
		 "options": ["Port-au-Prince", "Cap-Haïtien"], "correctOption": 0},
		{"id": 2, "theme": "histoire", "level": "facile", "text": "Missing the answer index",
		 "options": ["A", "B"]},
		{"id": 3, "theme": "histoire", "level": "moyen", "text": "Index out of range",
		 "options": ["A"], "correctOption": 4},
		{"id": 4, "theme": "histoire", "level": "moyen", "text": "Free text, no accepted answers"}
	]`)

	questions, report, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(questions) != 1 || questions[0].ID != 1 {
		t.Fatalf("expected only the valid record, got %+v", questions)
	}
	if report.Malformed != 3 || report.Loaded != 1 {
		t.Fatalf("expected 1 loaded / 3 malformed, got %+v", report)
	}
}

func TestLoadFreeTextQuestion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "geo.json", `[
		{"id": 10, "theme": "geo", "level": "facile", "text": "Name the island",
		 "answers": ["Quisqueya", "Hispaniola"]}
	]`)

	questions, _, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectOption != domain.FreeTextAnswer || !questions[0].FreeText() {
		t.Fatalf("expected free-text sentinel, got %d", questions[0].CorrectOption)
	}
}

func TestLoadDirReadsFilesInSortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `[{"id": 2, "theme": "b", "level": "x", "text": "second", "options": ["y"], "correctOption": 0}]`)
	writeFile(t, dir, "a.json", `[{"id": 1, "theme": "a", "level": "x", "text": "first", "options": ["y"], "correctOption": 0}]`)

	questions, _, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(questions) != 2 || questions[0].ID != 1 || questions[1].ID != 2 {
		t.Fatalf("expected sorted file order, got %+v", questions)
	}
}

func TestLoadRejectsUnparsableFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"not": "an array"`)

	if _, _, err := LoadDir(dir); err == nil {
		t.Fatalf("expected error for unparsable bank file")
	}
}

func TestFilterAndThemes(t *testing.T) {
	questions := []domain.Question{
		{ID: 1, Theme: "histoire", Level: "facile"},
		{ID: 2, Theme: "geo", Level: "moyen"},
		{ID: 3, Theme: "histoire", Level: "moyen"},
	}

	got := Filter(questions, []string{"histoire"}, nil)
	if len(got) != 2 {
		t.Fatalf("theme filter: expected 2, got %d", len(got))
	}
	got = Filter(questions, []string{"histoire"}, []string{"moyen"})
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("combined filter: got %+v", got)
	}

	themes := Themes(questions)
	if len(themes) != 2 || themes[0] != "geo" || themes[1] != "histoire" {
		t.Fatalf("expected sorted distinct themes, got %v", themes)
	}
}

func TestSampleBounds(t *testing.T) {
	questions := []domain.Question{{ID: 1}, {ID: 2}, {ID: 3}}
	rng := rand.New(rand.NewSource(1))

	if got := Sample(questions, 10, rng); len(got) != 3 {
		t.Fatalf("sample larger than pool should return the pool, got %d", len(got))
	}
	got := Sample(questions, 2, rng)
	if len(got) != 2 {
		t.Fatalf("expected 2 sampled questions, got %d", len(got))
	}
	if got[0].ID == got[1].ID {
		t.Fatalf("sample must not repeat questions")
	}
	if Sample(nil, 5, rng) != nil {
		t.Fatalf("empty pool should sample nothing")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
