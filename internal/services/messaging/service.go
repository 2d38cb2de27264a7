package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var errUnknownReminderKind = errors.New("unknown reminder kind")

// service implements the Service interface
type service struct {
	// Random number generator for selecting encouragement lines
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetReminderMessage returns the title and body for a reminder
func (s *service) GetReminderMessage(ctx context.Context, input *GetReminderMessageInput) (*GetReminderMessageOutput, error) {
	if input == nil {
		return nil, errUnknownReminderKind
	}

	switch input.Kind {
	case ReminderKindScheduled:
		return &GetReminderMessageOutput{
			Title:   "Hydration Time!",
			Message: "It's time for your scheduled water break. 💧",
		}, nil
	case ReminderKindInterval:
		return &GetReminderMessageOutput{
			Title:   "Time to hydrate!",
			Message: "It's been a while since your last drink. 💧",
		}, nil
	case ReminderKindMorning:
		return &GetReminderMessageOutput{
			Title:   "Morning Hydration",
			Message: "Start your day with a fresh glass of water! 🌊",
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownReminderKind, input.Kind)
	}
}

// GetGoalReachedMessage returns the goal notification
func (s *service) GetGoalReachedMessage(ctx context.Context, input *GetGoalReachedMessageInput) (*GetGoalReachedMessageOutput, error) {
	return &GetGoalReachedMessageOutput{
		Title:   "Goal Reached!",
		Message: "Congratulations! You've reached your hydration goal for today. 🥳",
	}, nil
}

// GetBadgeUnlockedMessage returns the toast for a newly unlocked achievement
func (s *service) GetBadgeUnlockedMessage(ctx context.Context, input *GetBadgeUnlockedMessageInput) (*GetBadgeUnlockedMessageOutput, error) {
	if input == nil || input.Achievement == nil {
		return nil, errors.New("achievement cannot be nil")
	}

	return &GetBadgeUnlockedMessageOutput{
		Title:   "Badge Unlocked!",
		Message: fmt.Sprintf("You earned the %s achievement! %s", input.Achievement.Title, input.Achievement.Icon),
	}, nil
}

// GetSyncFailedMessage returns the toast shown when a record only saved locally
func (s *service) GetSyncFailedMessage(ctx context.Context, input *GetSyncFailedMessageInput) (*GetSyncFailedMessageOutput, error) {
	return &GetSyncFailedMessageOutput{
		Title:   "Local Sync Only",
		Message: "Couldn't save to cloud. Record stored locally.",
	}, nil
}

// GetProgressMessage returns a short encouragement matching the day's progress
func (s *service) GetProgressMessage(ctx context.Context, input *GetProgressMessageInput) (*GetProgressMessageOutput, error) {
	if input == nil {
		input = &GetProgressMessageInput{}
	}

	var messages []string
	var tone MessageTone

	switch {
	case input.Percentage >= 100:
		tone = ToneCelebration
		messages = []string{
			"Goal smashed! Your cells are throwing a pool party. 🎉",
			"100% hydrated. Take a bow.",
			"You hit your goal! Anything more is a bonus round.",
		}
	case input.Percentage >= 50:
		tone = ToneEncouraging
		messages = []string{
			"Over halfway there, keep the glass moving!",
			"Solid progress. A couple more glasses and you're done.",
			"The finish line is in sight. 💧",
		}
	case input.Percentage > 0:
		tone = ToneEncouraging
		messages = []string{
			"Good start! Keep sipping.",
			"Every glass counts. Grab another one soon.",
			"You're on the board. Let's build on it.",
		}
	default:
		tone = ToneNeutral
		messages = []string{
			"Nothing logged yet today. Start with a glass of water!",
			"Your bottle misses you. Time for a first sip.",
		}
	}

	message := s.pick(messages)
	if input.Streak >= 3 {
		message = fmt.Sprintf("%s 🔥 %d-day streak!", message, input.Streak)
	}

	return &GetProgressMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
