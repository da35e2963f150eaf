package scheduler

import (
	"context"
	"errors"
	"testing"
)

func TestStart_RequiresReminderFunction(t *testing.T) {
	s := New()
	defer s.Stop()
	if err := s.Start(""); err == nil {
		t.Fatalf("expected error without reminder function")
	}
	if s.IsRunning() {
		t.Fatalf("scheduler should not run without a job")
	}
}

func TestStart_InvalidSpec(t *testing.T) {
	s := New()
	defer s.Stop()
	s.SetReminderFunction(func(ctx context.Context) error { return nil })
	if err := s.Start("not a cron spec"); err == nil {
		t.Fatalf("expected invalid spec error")
	}
}

func TestStart_RegistersJobAndFires(t *testing.T) {
	s := New()
	calls := 0
	s.SetReminderFunction(func(ctx context.Context) error {
		calls++
		if ctx == nil {
			t.Fatalf("nil context passed to reminder")
		}
		return errors.New("logged, not fatal")
	})
	if err := s.Start(""); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.IsRunning() {
		t.Fatalf("expected registered job")
	}
	s.fire()
	s.Stop()
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
}
