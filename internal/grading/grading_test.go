package grading

import (
	"testing"

	"quisqueya-quiz/internal/domain"
)

func TestNormalizeFoldsAccentsCaseAndWhitespace(t *testing.T) {
	for _, raw := range []string{"Café", "cafe", "CAFÉ ", "  caFE"} {
		if got := Normalize(raw); got != "cafe" {
			t.Fatalf("Normalize(%q) = %q, want %q", raw, got, "cafe")
		}
	}
	if got := Normalize("  Port   au\tPrince "); got != "port au prince" {
		t.Fatalf("expected collapsed whitespace, got %q", got)
	}
	if got := Normalize(""); got != "" {
		t.Fatalf("empty input should yield empty token, got %q", got)
	}
}

func TestGradeOptionQuestion(t *testing.T) {
	q := domain.Question{
		ID:            1,
		Options:       []string{"A", "B", "C"},
		CorrectOption: 1,
	}

	for _, raw := range []string{"2", " 2 ", "b", "B"} {
		if !Grade(q, raw) {
			t.Fatalf("expected %q to grade correct", raw)
		}
	}
	for _, raw := range []string{"1", "3", "a", "C", "4", "", "two"} {
		if Grade(q, raw) {
			t.Fatalf("expected %q to grade incorrect", raw)
		}
	}
}

func TestGradeIndexFirstPrecedence(t *testing.T) {
	// Option text "2" sits at index 0, but numeric input always means an
	// index: "2" selects the second option, never the text "2".
	q := domain.Question{
		ID:            2,
		Options:       []string{"2", "10"},
		CorrectOption: 0,
	}
	if Grade(q, "2") {
		t.Fatalf("numeric input must resolve as index, not as option text")
	}
	if !Grade(q, "1") {
		t.Fatalf("index 1 should select the correct first option")
	}
}

func TestGradeFreeText(t *testing.T) {
	q := domain.Question{
		ID:            3,
		CorrectOption: domain.FreeTextAnswer,
		Answers:       []string{"Pétion-Ville", "Petionville"},
	}
	if !Grade(q, "petion-ville") {
		t.Fatalf("accent-insensitive free-text match failed")
	}
	if !Grade(q, "PETIONVILLE") {
		t.Fatalf("alternate accepted answer failed")
	}
	if Grade(q, "jacmel") {
		t.Fatalf("unexpected free-text match")
	}
}

func TestGradeOutOfRangeCorrectOption(t *testing.T) {
	q := domain.Question{ID: 4, Options: []string{"A"}, CorrectOption: 5}
	if Grade(q, "a") {
		t.Fatalf("broken question must never grade correct by text")
	}
}
