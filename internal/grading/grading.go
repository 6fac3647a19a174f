package grading

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"quisqueya-quiz/internal/domain"
)

// stripMarks decomposes accented letters and drops the combining marks,
// so "é" compares equal to "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes raw user input for comparison: trimmed,
// lower-cased, accents folded to their base letter, internal whitespace
// collapsed to single spaces. Total: any input yields a token, empty included.
func Normalize(raw string) string {
	folded, _, err := transform.String(stripMarks, raw)
	if err != nil {
		folded = raw
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Grade reports whether raw is a correct answer to q.
//
// For questions with options, input that parses as an integer is interpreted
// only as a 1-based option index; it is never re-interpreted as option text.
// Non-numeric input matches by normalized equality with the correct option's
// text. Free-text questions match by normalized equality with any accepted
// answer. Never fails; anything unrecognized grades incorrect.
func Grade(q domain.Question, raw string) bool {
	token := Normalize(raw)
	if token == "" {
		return false
	}

	if q.FreeText() {
		for _, accepted := range q.Answers {
			if token == Normalize(accepted) {
				return true
			}
		}
		return false
	}

	if n, err := strconv.Atoi(token); err == nil {
		return n-1 == q.CorrectOption
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return false
	}
	return token == Normalize(q.Options[q.CorrectOption])
}
