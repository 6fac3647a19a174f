// Package ledger keeps the cross-session score history and rankings.
package ledger

import (
	"sort"
	"strings"
	"time"

	"quisqueya-quiz/internal/domain"
)

// Ledger is the append-only collection of completed session results.
// Entries and rankings are always recomputed from the history, so the
// aggregates can never drift from the raw sessions.
type Ledger struct {
	results []domain.SessionResult
}

// New builds a ledger over an existing history (possibly nil).
func New(results []domain.SessionResult) *Ledger {
	return &Ledger{results: results}
}

// Record appends a completed session and returns the updated ranking.
func (l *Ledger) Record(result domain.SessionResult) []domain.LedgerEntry {
	l.results = append(l.results, result)
	return l.Ranking()
}

// Results returns the full session history in insertion order.
func (l *Ledger) Results() []domain.SessionResult {
	return l.results
}

// Query returns the derived entry for a player, matched case-insensitively.
func (l *Ledger) Query(player string) (domain.LedgerEntry, bool) {
	for _, entry := range l.Ranking() {
		if strings.EqualFold(entry.Player, player) {
			return entry, true
		}
	}
	return domain.LedgerEntry{}, false
}

// TopN returns the first n entries of the ranking.
func (l *Ledger) TopN(n int) []domain.LedgerEntry {
	ranking := l.Ranking()
	if n < len(ranking) {
		ranking = ranking[:n]
	}
	return ranking
}

// LastSession returns the player's most recent session result.
func (l *Ledger) LastSession(player string) (domain.SessionResult, bool) {
	var last domain.SessionResult
	found := false
	for _, r := range l.results {
		if !strings.EqualFold(r.Player, player) {
			continue
		}
		if !found || r.PlayedAt.After(last.PlayedAt) {
			last = r
			found = true
		}
	}
	return last, found
}

// Ranking recomputes every player's entry from the history and orders them:
// best score descending, ties by earlier last-played timestamp (consistency
// beats recency), then by name. The aggregation is commutative, so any
// permutation of the same history ranks identically.
func (l *Ledger) Ranking() []domain.LedgerEntry {
	type accum struct {
		display    string
		displayAt  time.Time
		best       int
		sessions   int
		totalScore int
		lastPlayed time.Time
	}

	byPlayer := make(map[string]*accum)
	for _, r := range l.results {
		key := strings.ToLower(r.Player)
		a, ok := byPlayer[key]
		if !ok {
			a = &accum{}
			byPlayer[key] = a
		}
		if a.sessions == 0 || r.PlayedAt.After(a.displayAt) {
			a.display = r.Player
			a.displayAt = r.PlayedAt
		}
		if r.Score > a.best {
			a.best = r.Score
		}
		a.sessions++
		a.totalScore += r.Score
		if r.PlayedAt.After(a.lastPlayed) {
			a.lastPlayed = r.PlayedAt
		}
	}

	entries := make([]domain.LedgerEntry, 0, len(byPlayer))
	for _, a := range byPlayer {
		entries = append(entries, domain.LedgerEntry{
			Player:       a.display,
			BestScore:    a.best,
			Sessions:     a.sessions,
			AverageScore: float64(a.totalScore) / float64(a.sessions),
			LastPlayed:   a.lastPlayed,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].BestScore != entries[j].BestScore {
			return entries[i].BestScore > entries[j].BestScore
		}
		if !entries[i].LastPlayed.Equal(entries[j].LastPlayed) {
			return entries[i].LastPlayed.Before(entries[j].LastPlayed)
		}
		return entries[i].Player < entries[j].Player
	})
	return entries
}
