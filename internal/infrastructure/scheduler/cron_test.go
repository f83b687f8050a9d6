package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestStartRejectsInvalidExpression(t *testing.T) {
	t.Parallel()

	s := NewCronScheduler("not a cron spec", time.UTC)
	err := s.Start(context.Background(), func(time.Time) {})
	if err == nil {
		t.Fatal("expected error for invalid expression")
	}
}

func TestStartAndStop(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	s := NewCronScheduler("* * * * *", time.UTC)

	if err := s.Start(context.Background(), func(time.Time) { runs.Add(1) }); err != nil {
		t.Fatalf("start: %v", err)
	}
	// Second Start while running is a no-op.
	if err := s.Start(context.Background(), func(time.Time) { runs.Add(100) }); err != nil {
		t.Fatalf("second start: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("stop after stop: %v", err)
	}
}

func TestStopWithoutStart(t *testing.T) {
	t.Parallel()

	s := NewCronScheduler("0 7 * * *", time.UTC)
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("stop without start: %v", err)
	}
}
