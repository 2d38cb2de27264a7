package insights

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hydroflow/internal/services/insights Service

import "context"

// Service produces generated hydration advice. It never fails because of the model,
// every model failure is replaced by fixed copy
type Service interface {
	// GetAdvice returns a short tip for the day's progress
	GetAdvice(ctx context.Context, input *GetAdviceInput) (*GetAdviceOutput, error)

	// GetWeeklyReport summarizes a week of daily stats
	GetWeeklyReport(ctx context.Context, input *GetWeeklyReportInput) (*GetWeeklyReportOutput, error)
}
