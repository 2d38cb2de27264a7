package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/models"
	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	"github.com/KirkDiggler/hydroflow/internal/services/achievement"
	"github.com/KirkDiggler/hydroflow/internal/services/insights"
	"github.com/KirkDiggler/hydroflow/internal/services/tracker"
)

// POST /api/v1/records
func (h *Handler) AddRecord(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req addRecordRequest
	if !decode(w, r, &req) {
		return
	}

	drinkType, ok := models.ParseDrinkType(req.Type)
	if !ok {
		writeError(w, http.StatusBadRequest, tracker.ErrInvalidDrinkType)
		return
	}

	out, err := h.tracker.AddRecord(r.Context(), &tracker.AddRecordInput{
		Identity: identity,
		Amount:   req.Amount,
		Type:     drinkType,
		Note:     req.Note,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, &addRecordResponse{
		Record:        out.Record,
		Stats:         out.Stats,
		GoalReached:   out.GoalReached,
		Synced:        out.Synced,
		Streak:        out.Streak,
		NewlyUnlocked: out.NewlyUnlocked,
	})
}

// DELETE /api/v1/records/{date}/{id}
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	out, err := h.tracker.DeleteRecord(r.Context(), &tracker.DeleteRecordInput{
		Identity: identity,
		Date:     vars["date"],
		RecordID: vars["id"],
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Stats)
}

// GET /api/v1/stats/{date}, today when the date is omitted
func (h *Handler) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	out, err := h.tracker.GetDailyStats(r.Context(), &tracker.GetDailyStatsInput{
		Identity: identity,
		Date:     mux.Vars(r)["date"],
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &statsResponse{
		Stats:       out.Stats,
		Total:       out.Total,
		Percentage:  out.Percentage,
		Remaining:   out.Remaining,
		WaterPurity: out.WaterPurity,
		Source:      out.Source,
	})
}

// GET /api/v1/history?days=N
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, errors.New("days must be a positive integer"))
			return
		}
		days = n
	}

	out, err := h.tracker.GetHistory(r.Context(), &tracker.GetHistoryInput{Identity: identity, Days: days})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &historyResponse{Days: out.Days})
}

// GET /api/v1/statistics
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	out, err := h.tracker.GetStatistics(r.Context(), &tracker.GetStatisticsInput{Identity: identity})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &statisticsResponse{
		Week:              out.Week,
		Distribution:      out.Distribution,
		WeeklyTotal:       out.WeeklyTotal,
		DailyAverage:      out.DailyAverage,
		BestDay:           out.BestDay,
		Streak:            out.Streak,
		UnlockedCount:     out.UnlockedCount,
		AchievementsCount: out.AchievementsCount,
	})
}

// GET /api/v1/settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	out, err := h.tracker.GetSettings(r.Context(), &tracker.GetSettingsInput{Identity: identity})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Settings)
}

// PATCH /api/v1/settings
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var patch models.SettingsPatch
	if !decode(w, r, &patch) {
		return
	}

	out, err := h.tracker.UpdateSettings(r.Context(), &tracker.UpdateSettingsInput{Identity: identity, Patch: &patch})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Settings)
}

// POST /api/v1/settings/times
func (h *Handler) AddSpecificTime(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req specificTimeRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.tracker.AddSpecificTime(r.Context(), &tracker.AddSpecificTimeInput{Identity: identity, Time: req.Time})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Settings)
}

// DELETE /api/v1/settings/times/{time}
func (h *Handler) RemoveSpecificTime(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	out, err := h.tracker.RemoveSpecificTime(r.Context(), &tracker.RemoveSpecificTimeInput{
		Identity: identity,
		Time:     mux.Vars(r)["time"],
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Settings)
}

// POST /api/v1/goal/calculate
func (h *Handler) CalculateGoal(w http.ResponseWriter, r *http.Request) {
	var req calculateGoalRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.tracker.CalculateGoal(r.Context(), &tracker.CalculateGoalInput{
		WeightKg: req.WeightKg,
		Gender:   tracker.Gender(req.Gender),
		Activity: tracker.ActivityLevel(req.Activity),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &calculateGoalResponse{DailyGoal: out.DailyGoal})
}

// GET /api/v1/achievements
func (h *Handler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	out, err := h.achievements.GetAchievements(r.Context(), &achievement.GetAchievementsInput{ProfileID: identity.ProfileID})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &achievementsResponse{
		Achievements:  out.Achievements,
		UnlockedCount: out.UnlockedCount,
		Streak:        out.Streak,
	})
}

// GET /api/v1/insights/advice?weather=...
func (h *Handler) GetAdvice(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	today, err := h.tracker.GetDailyStats(r.Context(), &tracker.GetDailyStatsInput{Identity: identity})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out, err := h.insights.GetAdvice(r.Context(), &insights.GetAdviceInput{
		Intake:  today.Total,
		Target:  today.Stats.EffectiveTarget(),
		Weather: r.URL.Query().Get("weather"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &insightResponse{Text: out.Text, Fallback: out.Fallback})
}

// GET /api/v1/insights/weekly
func (h *Handler) GetWeeklyReport(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	history, err := h.tracker.GetHistory(r.Context(), &tracker.GetHistoryInput{
		Identity: identity,
		Days:     tracker.StatisticsDays,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out, err := h.insights.GetWeeklyReport(r.Context(), &insights.GetWeeklyReportInput{History: history.Days})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &insightResponse{Text: out.Text, Fallback: out.Fallback})
}

// GET /api/v1/preferences
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	dark, err := h.profiles.GetDarkMode(r.Context(), &profileRepo.GetDarkModeInput{ProfileID: identity.ProfileID})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &preferencesBody{DarkMode: dark})
}

// PUT /api/v1/preferences
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req preferencesBody
	if !decode(w, r, &req) {
		return
	}

	if err := h.profiles.SetDarkMode(r.Context(), &profileRepo.SetDarkModeInput{
		ProfileID: identity.ProfileID,
		Enabled:   req.DarkMode,
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &req)
}

// GET /api/v1/profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	user, err := h.loadUser(r, identity.ProfileID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	guest, err := h.profiles.IsGuestMode(r.Context(), &profileRepo.IsGuestModeInput{ProfileID: identity.ProfileID})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &profileResponse{User: user, Guest: guest})
}

// PUT /api/v1/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req profileRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.loadUser(r, identity.ProfileID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.DiscordID != nil {
		user.DiscordID = *req.DiscordID
	}

	if err := h.profiles.SaveUser(r.Context(), &profileRepo.SaveUserInput{
		ProfileID: identity.ProfileID,
		User:      user,
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.Debug("profile updated", zap.String("profile_id", identity.ProfileID))
	writeJSON(w, http.StatusOK, user)
}

// DELETE /api/v1/profile removes the profile details and registry entry, stops its
// reminders and ends the session. Logged days stay in the store
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	if err := h.profiles.DeleteProfile(r.Context(), &profileRepo.DeleteProfileInput{ProfileID: identity.ProfileID}); err != nil {
		h.fail(w, r, err)
		return
	}

	if h.reminders != nil {
		h.reminders.Forget(identity.ProfileID)
	}

	h.sessions.Logout(w, r)
}

// loadUser returns the stored user or an empty one
func (h *Handler) loadUser(r *http.Request, profileID string) (*models.User, error) {
	user, err := h.profiles.GetUser(r.Context(), &profileRepo.GetUserInput{ProfileID: profileID})
	if err != nil {
		if errors.Is(err, profileRepo.ErrUserNotFound) {
			return &models.User{}, nil
		}
		return nil, err
	}
	return user, nil
}
