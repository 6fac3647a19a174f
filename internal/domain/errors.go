package domain

import "errors"

var (
	// ErrEmptyBank is returned when no playable questions are available.
	ErrEmptyBank = errors.New("question bank is empty")
	// ErrLedgerCorrupt indicates the score file exists but cannot be parsed.
	ErrLedgerCorrupt = errors.New("score ledger is corrupt")
	// ErrNoSessions is returned when a player has no recorded sessions.
	ErrNoSessions = errors.New("no sessions recorded for player")
	// ErrInputClosed indicates the input stream ended mid-session.
	ErrInputClosed = errors.New("input stream closed")
)
