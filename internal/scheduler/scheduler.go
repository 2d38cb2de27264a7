package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	"github.com/KirkDiggler/hydroflow/internal/services/reminder"
)

// DefaultSchedule runs the reminder evaluator once a minute
const DefaultSchedule = "@every 1m"

var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilProfileRepo = errors.New("profile repository cannot be nil")
	ErrNilReminders   = errors.New("reminder service cannot be nil")
)

// Config holds the dependencies of the scheduler
type Config struct {
	ProfileRepo profileRepo.Repository
	Reminders   reminder.Service

	// Schedule is a cron spec, DefaultSchedule when empty
	Schedule string

	// Location is the timezone cron specs are read in
	Location *time.Location

	// TickTimeout bounds one pass over every profile
	TickTimeout time.Duration

	Logger *zap.Logger
}

// Scheduler walks every registered profile on each tick and lets the reminder
// service decide whether to fire
type Scheduler struct {
	cron        *cron.Cron
	profiles    profileRepo.Repository
	reminders   reminder.Service
	tickTimeout time.Duration
	log         *zap.Logger

	// running guards against overlapping ticks when one pass runs long
	running sync.Mutex
}

// New creates a scheduler; Start begins ticking
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	if cfg.Reminders == nil {
		return nil, ErrNilReminders
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	schedule := cfg.Schedule
	if schedule == "" {
		schedule = DefaultSchedule
	}

	tickTimeout := cfg.TickTimeout
	if tickTimeout <= 0 {
		tickTimeout = 50 * time.Second
	}

	s := &Scheduler{
		cron:        cron.New(cron.WithLocation(loc)),
		profiles:    cfg.ProfileRepo,
		reminders:   cfg.Reminders,
		tickTimeout: tickTimeout,
		log:         log,
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start begins ticking in the background
func (s *Scheduler) Start() {
	s.log.Info("reminder scheduler started")
	s.cron.Start()
}

// Stop stops ticking; the returned context is done when a running tick finishes
func (s *Scheduler) Stop() context.Context {
	s.log.Info("reminder scheduler stopping")
	return s.cron.Stop()
}

func (s *Scheduler) run() {
	if !s.running.TryLock() {
		s.log.Warn("previous reminder tick still running, skipping")
		return
	}
	defer s.running.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.tickTimeout)
	defer cancel()

	if _, err := s.Tick(ctx); err != nil {
		s.log.Error("reminder tick failed", zap.Error(err))
	}
}

// Tick evaluates every registered profile once and returns how many reminders fired.
// A failing profile is logged and does not stop the others
func (s *Scheduler) Tick(ctx context.Context) (int, error) {
	out, err := s.profiles.ListProfiles(ctx, &profileRepo.ListProfilesInput{})
	if err != nil {
		return 0, fmt.Errorf("failed to list profiles: %w", err)
	}

	fired := 0
	for _, identity := range out.Profiles {
		if ctx.Err() != nil {
			return fired, ctx.Err()
		}

		result, err := s.reminders.CheckReminders(ctx, &reminder.CheckRemindersInput{
			ProfileID: identity.ProfileID,
		})
		if err != nil {
			s.log.Warn("reminder check failed",
				zap.String("profile_id", identity.ProfileID), zap.Error(err))
			continue
		}

		if result.Fired {
			fired++
		}
	}

	return fired, nil
}
