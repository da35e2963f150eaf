package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule fires every evening at 21:00 UTC.
const DefaultSchedule = "0 21 * * *"

// Scheduler fires the journaling reminder on a cron schedule.
type Scheduler struct {
	cron       *cron.Cron
	ctx        context.Context
	cancel     context.CancelFunc
	remindFunc func(ctx context.Context) error
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) SetReminderFunction(f func(ctx context.Context) error) {
	s.remindFunc = f
}

// Start registers the reminder under spec and starts the cron loop. An
// empty spec means DefaultSchedule.
func (s *Scheduler) Start(spec string) error {
	if s.remindFunc == nil {
		return errors.New("reminder function not set")
	}
	if spec == "" {
		spec = DefaultSchedule
	}

	_, err := s.cron.AddFunc(spec, func() { s.fire() })
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("📅 Scheduler started - journaling reminders on %q (UTC)", spec)
	return nil
}

func (s *Scheduler) fire() {
	log.Println("🕘 Triggered journaling reminder")
	if err := s.remindFunc(s.ctx); err != nil {
		log.Printf("❌ Reminder failed: %v", err)
	}
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("📅 Scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
