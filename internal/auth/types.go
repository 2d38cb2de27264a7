package auth

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	"github.com/KirkDiggler/hydroflow/internal/common/uuid"
	"github.com/KirkDiggler/hydroflow/internal/models"
	accountRepo "github.com/KirkDiggler/hydroflow/internal/repositories/account"
	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	"github.com/KirkDiggler/hydroflow/internal/services/tracker"
)

const (
	// SessionName is the cookie carrying the session
	SessionName = "hydroflow-session"

	sessionProfileID = "profile_id"
	sessionKind      = "kind"

	// sessionMaxAge keeps a sign in for 30 days
	sessionMaxAge = 30 * 24 * 60 * 60

	minPasswordLength = 6

	avatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="
)

// Config holds the dependencies of the auth handlers
type Config struct {
	SessionSecret string
	SecureCookies bool

	// Accounts is optional, without it only guest mode is offered
	Accounts accountRepo.Repository

	ProfileRepo   profileRepo.Repository
	Tracker       tracker.Service
	UUIDGenerator uuid.UUID
	Clock         clock.Clock
	Logger        *zap.Logger
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse describes the signed in profile
type SessionResponse struct {
	ProfileID string             `json:"profileId"`
	Kind      models.ProfileKind `json:"kind"`
	User      *models.User       `json:"user,omitempty"`
}
