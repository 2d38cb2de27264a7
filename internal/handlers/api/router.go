package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/auth"
	"github.com/KirkDiggler/hydroflow/internal/models"
	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	"github.com/KirkDiggler/hydroflow/internal/services/achievement"
	"github.com/KirkDiggler/hydroflow/internal/services/insights"
	"github.com/KirkDiggler/hydroflow/internal/services/reminder"
	"github.com/KirkDiggler/hydroflow/internal/services/tracker"
)

// Handler serves the JSON API
type Handler struct {
	tracker      tracker.Service
	achievements achievement.Service
	insights     insights.Service
	profiles     profileRepo.Repository
	sessions     SessionManager
	reminders    reminder.Service
	events       EventStream
	origins      []string
	log          *zap.Logger
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Tracker == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.Achievements == nil {
		return nil, errors.New("achievement service cannot be nil")
	}

	if cfg.Insights == nil {
		return nil, errors.New("insights service cannot be nil")
	}

	if cfg.ProfileRepo == nil {
		return nil, errors.New("profile repository cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session manager cannot be nil")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Handler{
		tracker:      cfg.Tracker,
		achievements: cfg.Achievements,
		insights:     cfg.Insights,
		profiles:     cfg.ProfileRepo,
		sessions:     cfg.Sessions,
		reminders:    cfg.Reminders,
		events:       cfg.Events,
		origins:      cfg.AllowedOrigins,
		log:          log,
	}, nil
}

// Router builds the routes wrapped in CORS handling
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	authRoutes := r.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/signup", h.sessions.Signup).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", h.sessions.Login).Methods(http.MethodPost)
	authRoutes.HandleFunc("/guest", h.sessions.Guest).Methods(http.MethodPost)
	authRoutes.HandleFunc("/logout", h.sessions.Logout).Methods(http.MethodPost)
	authRoutes.HandleFunc("/session", h.sessions.Session).Methods(http.MethodGet)

	if h.events != nil {
		r.Handle("/ws", h.sessions.Middleware(http.HandlerFunc(h.Events))).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(h.sessions.Middleware)

	api.HandleFunc("/records", h.AddRecord).Methods(http.MethodPost)
	api.HandleFunc("/records/{date}/{id}", h.DeleteRecord).Methods(http.MethodDelete)

	api.HandleFunc("/stats", h.GetDailyStats).Methods(http.MethodGet)
	api.HandleFunc("/stats/{date}", h.GetDailyStats).Methods(http.MethodGet)
	api.HandleFunc("/history", h.GetHistory).Methods(http.MethodGet)
	api.HandleFunc("/statistics", h.GetStatistics).Methods(http.MethodGet)

	api.HandleFunc("/settings", h.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings", h.UpdateSettings).Methods(http.MethodPatch)
	api.HandleFunc("/settings/times", h.AddSpecificTime).Methods(http.MethodPost)
	api.HandleFunc("/settings/times/{time}", h.RemoveSpecificTime).Methods(http.MethodDelete)
	api.HandleFunc("/goal/calculate", h.CalculateGoal).Methods(http.MethodPost)

	api.HandleFunc("/achievements", h.GetAchievements).Methods(http.MethodGet)

	api.HandleFunc("/insights/advice", h.GetAdvice).Methods(http.MethodGet)
	api.HandleFunc("/insights/weekly", h.GetWeeklyReport).Methods(http.MethodGet)

	api.HandleFunc("/preferences", h.GetPreferences).Methods(http.MethodGet)
	api.HandleFunc("/preferences", h.UpdatePreferences).Methods(http.MethodPut)
	api.HandleFunc("/profile", h.GetProfile).Methods(http.MethodGet)
	api.HandleFunc("/profile", h.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/profile", h.DeleteProfile).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins:   h.origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Events subscribes the caller to toast and sound events
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, auth.ErrUnauthenticated)
		return
	}

	h.events.ServeWS(w, r, identity.ProfileID)
}

// identity returns the caller or writes a 401
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, auth.ErrUnauthenticated)
		return models.Identity{}, false
	}
	return *identity, true
}

// fail maps service errors onto status codes
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var trackerErr tracker.TrackerError

	switch {
	case errors.Is(err, tracker.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, profileRepo.ErrDiscordIDTaken):
		writeError(w, http.StatusConflict, err)
	case errors.As(err, &trackerErr):
		writeError(w, http.StatusBadRequest, err)
	default:
		h.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func decode(w http.ResponseWriter, r *http.Request, into interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, &errorResponse{Error: err.Error()})
}
