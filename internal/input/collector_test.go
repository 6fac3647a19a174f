package input

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"quisqueya-quiz/internal/domain"
)

func TestCollectReturnsAnswerBeforeDeadline(t *testing.T) {
	c := New(strings.NewReader("four\n"))

	answer, elapsed, timedOut, err := c.Collect(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if timedOut {
		t.Fatalf("expected answer, got timeout")
	}
	if answer != "four" {
		t.Fatalf("expected %q, got %q", "four", answer)
	}
	if elapsed >= time.Second {
		t.Fatalf("elapsed %v should be under the limit", elapsed)
	}
}

func TestCollectTimesOutWithoutAnswer(t *testing.T) {
	pr, _ := io.Pipe()
	defer pr.Close()
	c := New(pr)

	limit := 100 * time.Millisecond
	start := time.Now()
	answer, elapsed, timedOut, err := c.Collect(context.Background(), limit)
	wall := time.Since(start)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !timedOut {
		t.Fatalf("expected timeout")
	}
	if answer != "" {
		t.Fatalf("timeout must not also capture an answer, got %q", answer)
	}
	if elapsed != limit {
		t.Fatalf("timeout elapsed should equal the limit, got %v", elapsed)
	}
	if wall < limit || wall > limit+500*time.Millisecond {
		t.Fatalf("deadline fired at %v, want about %v", wall, limit)
	}
}

func TestStaleLineDoesNotLeakIntoNextCollect(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	c := New(pr)

	// First prompt times out before any input.
	_, _, timedOut, err := c.Collect(context.Background(), 50*time.Millisecond)
	if err != nil || !timedOut {
		t.Fatalf("expected timeout, got timedOut=%v err=%v", timedOut, err)
	}

	// The player answers the stale prompt, then the next one.
	go func() {
		io.WriteString(pw, "late\n")
		io.WriteString(pw, "fresh\n")
	}()

	answer, _, timedOut, err := c.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if timedOut {
		t.Fatalf("unexpected timeout")
	}
	if answer != "fresh" {
		t.Fatalf("stale answer leaked: got %q, want %q", answer, "fresh")
	}
}

func TestCollectWithoutLimitBlocksUntilAnswer(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	c := New(pr)

	go func() {
		time.Sleep(30 * time.Millisecond)
		io.WriteString(pw, "whenever\n")
	}()

	answer, _, timedOut, err := c.Collect(context.Background(), 0)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if timedOut || answer != "whenever" {
		t.Fatalf("expected unlimited collect to wait for %q, got %q timedOut=%v", "whenever", answer, timedOut)
	}
}

func TestCollectStopsOnContextCancel(t *testing.T) {
	pr, _ := io.Pipe()
	defer pr.Close()
	c := New(pr)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, _, timedOut, err := c.Collect(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if timedOut {
		t.Fatalf("cancellation is not a timeout")
	}
}

func TestCollectReportsClosedInput(t *testing.T) {
	c := New(strings.NewReader(""))

	_, _, _, err := c.Collect(context.Background(), time.Second)
	if !errors.Is(err, domain.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}
