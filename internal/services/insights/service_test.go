package insights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	llmMocks "github.com/KirkDiggler/hydroflow/internal/llm/mocks"
	"github.com/KirkDiggler/hydroflow/internal/models"
)

type InsightsServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockLLM  *llmMocks.MockLLM
	service  *service
	ctx      context.Context
}

func (s *InsightsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLLM = llmMocks.NewMockLLM(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{LLM: s.mockLLM})
	s.Require().NoError(err)
	s.service = svc
}

func (s *InsightsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInsightsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsightsServiceTestSuite))
}

func (s *InsightsServiceTestSuite) TestAdvicePromptUsesDefaultWeather() {
	s.mockLLM.EXPECT().GenerateResponse(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string) (string, error) {
			s.Contains(prompt, "consumed 750ml out of their 2000ml goal")
			s.Contains(prompt, "The current weather is Sunny, 25°C.")
			s.Contains(prompt, "max 2 sentences")
			return "  Great start, keep going!  ", nil
		})

	out, err := s.service.GetAdvice(s.ctx, &GetAdviceInput{Intake: 750, Target: 2000})
	s.Require().NoError(err)
	s.Equal("Great start, keep going!", out.Text)
	s.False(out.Fallback)
}

func (s *InsightsServiceTestSuite) TestAdviceFallbacks() {
	s.mockLLM.EXPECT().GenerateResponse(s.ctx, gomock.Any()).Return("", nil)
	out, err := s.service.GetAdvice(s.ctx, &GetAdviceInput{Intake: 0, Target: 2000, Weather: "Rainy"})
	s.Require().NoError(err)
	s.Equal(AdviceEmptyFallback, out.Text)
	s.True(out.Fallback)

	s.mockLLM.EXPECT().GenerateResponse(s.ctx, gomock.Any()).Return("", errors.New("timeout"))
	out, err = s.service.GetAdvice(s.ctx, &GetAdviceInput{Intake: 0, Target: 2000})
	s.Require().NoError(err)
	s.Equal(AdviceErrorFallback, out.Text)
}

func (s *InsightsServiceTestSuite) TestWeeklyReportSummarizesDays() {
	day := models.NewDailyStats("2025-04-18", 2000)
	day.Prepend(&models.WaterRecord{Amount: 500})
	day.Prepend(&models.WaterRecord{Amount: 300})

	s.mockLLM.EXPECT().GenerateResponse(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, prompt string) (string, error) {
			s.True(strings.Contains(prompt, `[{"date":"2025-04-18","total":800,"goal":2000}]`), prompt)
			s.Contains(prompt, "max 100 words")
			return "Best day was Friday 💧", nil
		})

	out, err := s.service.GetWeeklyReport(s.ctx, &GetWeeklyReportInput{History: []*models.DailyStats{day, nil}})
	s.Require().NoError(err)
	s.Equal("Best day was Friday 💧", out.Text)
}

func (s *InsightsServiceTestSuite) TestWeeklyReportFallbacks() {
	s.mockLLM.EXPECT().GenerateResponse(s.ctx, gomock.Any()).Return("   ", nil)
	out, err := s.service.GetWeeklyReport(s.ctx, &GetWeeklyReportInput{})
	s.Require().NoError(err)
	s.Equal(ReportEmptyFallback, out.Text)

	s.mockLLM.EXPECT().GenerateResponse(s.ctx, gomock.Any()).Return("", errors.New("quota"))
	out, err = s.service.GetWeeklyReport(s.ctx, &GetWeeklyReportInput{})
	s.Require().NoError(err)
	s.Equal(ReportErrorFallback, out.Text)
}

func (s *InsightsServiceTestSuite) TestDisabledProviderAlwaysFallsBack() {
	svc, err := New(&Config{})
	s.Require().NoError(err)

	out, err := svc.GetAdvice(s.ctx, &GetAdviceInput{Intake: 100, Target: 2000})
	s.Require().NoError(err)
	s.Equal(AdviceErrorFallback, out.Text)
	s.True(out.Fallback)
}
