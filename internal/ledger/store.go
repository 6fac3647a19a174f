package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"quisqueya-quiz/internal/domain"
)

// Load reads the ledger file. An absent file is an empty ledger; a file that
// exists but cannot be parsed fails closed with domain.ErrLedgerCorrupt so
// history is never silently discarded.
func Load(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("read ledger %s: %w", path, err)
	}
	var results []domain.SessionResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLedgerCorrupt, path, err)
	}
	return New(results), nil
}

// Save writes the full session history, replacing the file atomically so a
// crash mid-write cannot truncate existing history.
func Save(path string, l *Ledger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create ledger dir: %w", err)
		}
	}
	results := l.Results()
	if results == nil {
		results = []domain.SessionResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}
