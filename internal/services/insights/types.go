package insights

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/llm"
	"github.com/KirkDiggler/hydroflow/internal/models"
)

const (
	// DefaultWeather is used when the caller does not know the weather
	DefaultWeather = "Sunny, 25°C"

	AdviceEmptyFallback = "Stay hydrated and keep up the good work!"
	AdviceErrorFallback = "Remember to drink water regularly throughout the day!"

	ReportEmptyFallback = "Great job tracking your water this week! Keep consistent to build a healthy habit."
	ReportErrorFallback = "Unable to generate report right now. Keep drinking water!"
)

// Config holds the dependencies of the insights service
type Config struct {
	LLM    llm.LLM
	Logger *zap.Logger
}

type GetAdviceInput struct {
	Intake  int
	Target  int
	Weather string
}

type GetAdviceOutput struct {
	Text string

	// Fallback is true when Text is fixed copy rather than model output
	Fallback bool
}

type GetWeeklyReportInput struct {
	History []*models.DailyStats
}

type GetWeeklyReportOutput struct {
	Text     string
	Fallback bool
}

// daySummary is the compact shape of a day sent to the model
type daySummary struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
	Goal  int    `json:"goal"`
}
