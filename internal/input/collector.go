// Package input implements the timed answer collector: a countdown racing
// blocking line capture, where exactly one of the two outcomes wins.
package input

import (
	"bufio"
	"context"
	"io"
	"time"

	"quisqueya-quiz/internal/domain"
)

type line struct {
	text string
	err  error
}

// Collector reads answers line by line and enforces per-question deadlines.
//
// A blocking read on a terminal cannot be cancelled, so a single long-lived
// goroutine owns the reader and feeds lines into a channel. When a question
// times out, the line the player eventually submits for it is marked stale and
// discarded instead of leaking into the next question's capture.
type Collector struct {
	lines chan line
	stale int // pending lines that belong to timed-out prompts; Collect-only
	clock func() time.Time
}

// New starts the reader goroutine over r. The goroutine exits when r reaches
// EOF or fails, after which every Collect reports domain.ErrInputClosed.
func New(r io.Reader) *Collector {
	c := &Collector{
		lines: make(chan line),
		clock: time.Now,
	}
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			c.lines <- line{text: scanner.Text()}
		}
		err := scanner.Err()
		if err == nil {
			err = domain.ErrInputClosed
		}
		c.lines <- line{err: err}
		close(c.lines)
	}()
	return c
}

// Collect waits for the next answer line or the deadline, whichever comes
// first. On timeout the answer is empty, elapsed equals the limit exactly and
// timedOut is true. A limit <= 0 waits indefinitely. When ctx is cancelled the
// countdown is stopped before returning ctx.Err().
func (c *Collector) Collect(ctx context.Context, limit time.Duration) (answer string, elapsed time.Duration, timedOut bool, err error) {
	start := c.clock()

	var deadline <-chan time.Time
	if limit > 0 {
		timer := time.NewTimer(limit)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return "", c.clock().Sub(start), false, ctx.Err()
		case <-deadline:
			// The answer for this prompt, if it ever comes, is now stale.
			c.stale++
			return "", limit, true, nil
		case l, ok := <-c.lines:
			if !ok {
				return "", c.clock().Sub(start), false, domain.ErrInputClosed
			}
			if l.err != nil {
				return "", c.clock().Sub(start), false, l.err
			}
			if c.stale > 0 {
				// Leftover from a previous timed-out prompt; drop it.
				c.stale--
				continue
			}
			// Ties resolve in favor of the deadline: a line racing an
			// already-fired timer still counts as a timeout.
			select {
			case <-deadline:
				return "", limit, true, nil
			default:
			}
			return l.text, c.clock().Sub(start), false, nil
		}
	}
}
