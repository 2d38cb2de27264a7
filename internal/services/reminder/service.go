package reminder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	"github.com/KirkDiggler/hydroflow/internal/models"
	dailyStatsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/daily_stats"
	settingsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/settings"
	"github.com/KirkDiggler/hydroflow/internal/services/messaging"
	"github.com/KirkDiggler/hydroflow/internal/services/notification"
)

// markers is the per profile memory of what already fired
type markers struct {
	// lastMinute is "<date> HH:MM" of the last reminder
	lastMinute string

	// lastMorning is the date the morning reminder last fired
	lastMorning string
}

type service struct {
	settingsRepo   settingsRepo.Repository
	dailyStatsRepo dailyStatsRepo.Repository
	notifier       notification.Service
	messages       messaging.Service
	clock          clock.Clock
	log            *zap.Logger

	mu      sync.Mutex
	markers map[string]*markers
}

// New creates a new reminder service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.DailyStatsRepo == nil {
		return nil, ErrNilDailyStatsRepo
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Messages == nil {
		return nil, ErrNilMessages
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		settingsRepo:   cfg.SettingsRepo,
		dailyStatsRepo: cfg.DailyStatsRepo,
		notifier:       cfg.Notifier,
		messages:       cfg.Messages,
		clock:          cfg.Clock,
		log:            log,
		markers:        make(map[string]*markers),
	}, nil
}

// CheckReminders evaluates one tick for a profile
func (s *service) CheckReminders(ctx context.Context, input *CheckRemindersInput) (*CheckRemindersOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, ErrEmptyProfileID
	}

	settings, err := s.loadSettings(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}

	if !settings.NotificationsEnabled {
		return &CheckRemindersOutput{}, nil
	}

	now := s.clock.Now()
	minuteKey := clock.DateKey(now) + " " + clock.HourMinute(now)

	state := s.snapshot(input.ProfileID)
	if state.lastMinute == minuteKey {
		return &CheckRemindersOutput{}, nil
	}

	var kind messaging.ReminderKind
	switch settings.ReminderType {
	case models.ReminderTypeSpecific:
		if settings.HasSpecificTime(clock.HourMinute(now)) {
			kind = messaging.ReminderKindScheduled
		}
	default:
		kind, err = s.intervalKind(ctx, input.ProfileID, settings, state, now)
		if err != nil {
			return nil, err
		}
	}

	if kind == "" {
		return &CheckRemindersOutput{}, nil
	}

	// Claim the minute before delivering so a concurrent tick cannot double fire
	if !s.claim(input.ProfileID, minuteKey, kind, now) {
		return &CheckRemindersOutput{}, nil
	}

	msg, err := s.messages.GetReminderMessage(ctx, &messaging.GetReminderMessageInput{Kind: kind})
	if err != nil {
		return nil, fmt.Errorf("failed to build reminder message: %w", err)
	}

	out, err := s.notifier.Notify(ctx, &notification.NotifyInput{
		ProfileID: input.ProfileID,
		Title:     msg.Title,
		Body:      msg.Message,
		Actions:   models.ReminderActions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deliver reminder: %w", err)
	}

	s.log.Debug("reminder fired",
		zap.String("profile_id", input.ProfileID),
		zap.String("kind", string(kind)),
		zap.String("delivery", string(out.Delivery)))

	return &CheckRemindersOutput{
		Fired:    true,
		Kind:     kind,
		Delivery: out.Delivery,
	}, nil
}

// Forget drops the markers of a profile
func (s *service) Forget(profileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.markers, profileID)
}

// intervalKind applies the interval mode rules. Both the morning reminder and the
// interval reminders only fire between wake up and bed time, so nothing fires
// overnight. With drinks today it fires on every new minute once the interval
// elapsed since the newest drink. Without drinks it fires the morning reminder
// once per day
func (s *service) intervalKind(ctx context.Context, profileID string, settings *models.UserSettings, state markers, now time.Time) (messaging.ReminderKind, error) {
	if !s.inWindow(settings, now) {
		return "", nil
	}

	today := clock.DateKey(now)
	stats, err := s.dailyStatsRepo.GetDailyStats(ctx, &dailyStatsRepo.GetDailyStatsInput{
		ProfileID: profileID,
		Date:      today,
	})
	if err != nil {
		switch {
		case errors.Is(err, dailyStatsRepo.ErrDailyStatsNotFound):
			stats = models.NewDailyStats(today, settings.DailyGoal)
		case errors.Is(err, dailyStatsRepo.ErrMalformedDailyStats):
			s.log.Warn("unreadable daily stats, treating day as empty",
				zap.String("profile_id", profileID), zap.String("date", today))
			stats = models.NewDailyStats(today, settings.DailyGoal)
		default:
			return "", fmt.Errorf("failed to load daily stats: %w", err)
		}
	}

	latest := stats.Latest()
	if latest == nil {
		if state.lastMorning == today {
			return "", nil
		}
		return messaging.ReminderKindMorning, nil
	}

	if settings.ReminderIntervalMinutes <= 0 {
		return "", nil
	}

	if now.Sub(latest.Timestamp) >= time.Duration(settings.ReminderIntervalMinutes)*time.Minute {
		return messaging.ReminderKindInterval, nil
	}
	return "", nil
}

// inWindow reports whether now lies between wake and bed time. A bed time earlier
// than the wake time spans midnight. Unparseable bounds do not restrict
func (s *service) inWindow(settings *models.UserSettings, now time.Time) bool {
	wake, err := clock.ParseHourMinute(settings.WakeUpTime)
	if err != nil {
		s.log.Warn("invalid wake up time, ignoring bounds", zap.String("value", settings.WakeUpTime))
		return true
	}

	bed, err := clock.ParseHourMinute(settings.BedTime)
	if err != nil {
		s.log.Warn("invalid bed time, ignoring bounds", zap.String("value", settings.BedTime))
		return true
	}

	minute := clock.MinuteOfDay(now)
	if wake <= bed {
		return minute >= wake && minute < bed
	}
	return minute >= wake || minute < bed
}

func (s *service) loadSettings(ctx context.Context, profileID string) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{ProfileID: profileID})
	if err == nil {
		return settings, nil
	}

	switch {
	case errors.Is(err, settingsRepo.ErrSettingsNotFound):
		return models.DefaultSettings(), nil
	case errors.Is(err, settingsRepo.ErrMalformedSettings):
		s.log.Warn("unreadable settings, using defaults", zap.String("profile_id", profileID))
		return models.DefaultSettings(), nil
	default:
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
}

func (s *service) snapshot(profileID string) markers {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.markers[profileID]; ok {
		return *m
	}
	return markers{}
}

// claim records the firing and returns false when the minute was already taken
func (s *service) claim(profileID, minuteKey string, kind messaging.ReminderKind, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.markers[profileID]
	if !ok {
		m = &markers{}
		s.markers[profileID] = m
	}

	if m.lastMinute == minuteKey {
		return false
	}

	m.lastMinute = minuteKey
	if kind == messaging.ReminderKindMorning {
		m.lastMorning = clock.DateKey(now)
	}
	return true
}
