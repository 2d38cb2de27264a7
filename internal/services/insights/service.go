package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/llm"
)

var ErrNilConfig = errors.New("config cannot be nil")

const advicePrompt = `I am building a water tracking app. The user has consumed %dml out of their %dml goal today.
The current weather is %s.

Provide a short, encouraging, and scientifically accurate hydration tip or message (max 2 sentences).
If they are low on water, encourage them nicely. If they are doing well, congratulate them.
Do not use markdown. Just plain text.`

const reportPrompt = `Analyze the following weekly hydration data for a user:
%s

Please provide a concise, friendly, and motivational analysis (max 100 words).
1. Highlight their best day.
2. Identify any pattern (e.g., "You tend to drink less on weekends").
3. Give one specific actionable tip for next week.

Format the response as plain text, but use emojis to make it fun.`

type service struct {
	llm llm.LLM
	log *zap.Logger
}

// New creates a new insights service. A nil LLM behaves like a disabled provider
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	model := cfg.LLM
	if model == nil {
		model = llm.Disabled{}
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{llm: model, log: log}, nil
}

func (s *service) GetAdvice(ctx context.Context, input *GetAdviceInput) (*GetAdviceOutput, error) {
	if input == nil {
		input = &GetAdviceInput{}
	}

	weather := input.Weather
	if weather == "" {
		weather = DefaultWeather
	}

	text, err := s.llm.GenerateResponse(ctx, fmt.Sprintf(advicePrompt, input.Intake, input.Target, weather))
	if err != nil {
		s.logFailure("advice", err)
		return &GetAdviceOutput{Text: AdviceErrorFallback, Fallback: true}, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return &GetAdviceOutput{Text: AdviceEmptyFallback, Fallback: true}, nil
	}

	return &GetAdviceOutput{Text: text}, nil
}

func (s *service) GetWeeklyReport(ctx context.Context, input *GetWeeklyReportInput) (*GetWeeklyReportOutput, error) {
	summary := []daySummary{}
	if input != nil {
		for _, day := range input.History {
			if day == nil {
				continue
			}
			summary = append(summary, daySummary{
				Date:  day.Date,
				Total: day.Total(),
				Goal:  day.Target,
			})
		}
	}

	data, err := json.Marshal(summary)
	if err != nil {
		s.logFailure("weekly report", err)
		return &GetWeeklyReportOutput{Text: ReportErrorFallback, Fallback: true}, nil
	}

	text, err := s.llm.GenerateResponse(ctx, fmt.Sprintf(reportPrompt, data))
	if err != nil {
		s.logFailure("weekly report", err)
		return &GetWeeklyReportOutput{Text: ReportErrorFallback, Fallback: true}, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return &GetWeeklyReportOutput{Text: ReportEmptyFallback, Fallback: true}, nil
	}

	return &GetWeeklyReportOutput{Text: text}, nil
}

func (s *service) logFailure(what string, err error) {
	if errors.Is(err, llm.ErrDisabled) {
		return
	}
	s.log.Warn("text generation failed, using fallback", zap.String("kind", what), zap.Error(err))
}
