package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/models"
	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	"github.com/KirkDiggler/hydroflow/internal/services/achievement"
	"github.com/KirkDiggler/hydroflow/internal/services/insights"
	"github.com/KirkDiggler/hydroflow/internal/services/reminder"
	"github.com/KirkDiggler/hydroflow/internal/services/tracker"
)

// SessionManager issues sessions and guards the authenticated routes
type SessionManager interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Guest(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
	Middleware(next http.Handler) http.Handler
}

// EventStream upgrades a request into a profile's event subscription
type EventStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request, profileID string)
}

// Config holds the dependencies of the HTTP API
type Config struct {
	Tracker      tracker.Service
	Achievements achievement.Service
	Insights     insights.Service
	ProfileRepo  profileRepo.Repository
	Sessions     SessionManager

	// Reminders is optional; when set, deleted profiles have their reminder state dropped
	Reminders reminder.Service

	// Events is optional; without it /ws is not served
	Events EventStream

	AllowedOrigins []string
	Logger         *zap.Logger
}

type addRecordRequest struct {
	Amount int    `json:"amount"`
	Type   string `json:"type"`
	Note   string `json:"note"`
}

type addRecordResponse struct {
	Record        *models.WaterRecord   `json:"record"`
	Stats         *models.DailyStats    `json:"stats"`
	GoalReached   bool                  `json:"goalReached"`
	Synced        bool                  `json:"synced"`
	Streak        int                   `json:"streak"`
	NewlyUnlocked []*models.Achievement `json:"newlyUnlocked"`
}

type statsResponse struct {
	Stats       *models.DailyStats `json:"stats"`
	Total       int                `json:"total"`
	Percentage  int                `json:"percentage"`
	Remaining   int                `json:"remaining"`
	WaterPurity int                `json:"waterPurity"`
	Source      tracker.Source     `json:"source"`
}

type historyResponse struct {
	Days []*models.DailyStats `json:"days"`
}

type statisticsResponse struct {
	Week              []*tracker.DayTotal      `json:"week"`
	Distribution      map[models.DrinkType]int `json:"distribution"`
	WeeklyTotal       int                      `json:"weeklyTotal"`
	DailyAverage      int                      `json:"dailyAverage"`
	BestDay           *tracker.DayTotal        `json:"bestDay"`
	Streak            int                      `json:"streak"`
	UnlockedCount     int                      `json:"unlockedCount"`
	AchievementsCount int                      `json:"achievementsCount"`
}

type specificTimeRequest struct {
	Time string `json:"time"`
}

type calculateGoalRequest struct {
	WeightKg float64 `json:"weightKg"`
	Gender   string  `json:"gender"`
	Activity string  `json:"activity"`
}

type calculateGoalResponse struct {
	DailyGoal int `json:"dailyGoal"`
}

type achievementsResponse struct {
	Achievements  []*models.Achievement `json:"achievements"`
	UnlockedCount int                   `json:"unlockedCount"`
	Streak        int                   `json:"streak"`
}

type insightResponse struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

type preferencesBody struct {
	DarkMode bool `json:"darkMode"`
}

type profileRequest struct {
	Name      *string `json:"name"`
	Avatar    *string `json:"avatar"`
	DiscordID *string `json:"discordId"`
}

type profileResponse struct {
	*models.User
	Guest bool `json:"guest"`
}

type errorResponse struct {
	Error string `json:"error"`
}
