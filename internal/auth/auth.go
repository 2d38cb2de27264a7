package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	"github.com/KirkDiggler/hydroflow/internal/common/uuid"
	"github.com/KirkDiggler/hydroflow/internal/models"
	accountRepo "github.com/KirkDiggler/hydroflow/internal/repositories/account"
	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	"github.com/KirkDiggler/hydroflow/internal/services/tracker"
)

type contextKey struct{}

// Manager issues cookie sessions and resolves them back to identities
type Manager struct {
	store    *sessions.CookieStore
	accounts accountRepo.Repository
	profiles profileRepo.Repository
	tracker  tracker.Service
	uuidGen  uuid.UUID
	clock    clock.Clock
	log      *zap.Logger
}

// New creates a new auth manager
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionSecret == "" {
		return nil, ErrEmptySecret
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	if cfg.Tracker == nil {
		return nil, ErrNilTracker
	}

	uuidGen := cfg.UUIDGenerator
	if uuidGen == nil {
		uuidGen = uuid.New()
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New(time.UTC)
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store:    store,
		accounts: cfg.Accounts,
		profiles: cfg.ProfileRepo,
		tracker:  cfg.Tracker,
		uuidGen:  uuidGen,
		clock:    clk,
		log:      log,
	}, nil
}

// Signup creates an account and signs it in
func (m *Manager) Signup(w http.ResponseWriter, r *http.Request) {
	if m.accounts == nil {
		writeError(w, http.StatusServiceUnavailable, ErrAccountsDisabled)
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	email := strings.TrimSpace(req.Email)
	if !strings.Contains(email, "@") {
		writeError(w, http.StatusBadRequest, ErrInvalidEmail)
		return
	}

	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, ErrWeakPassword)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	acct := &models.Account{
		ID:        m.uuidGen.NewUUID(),
		Email:     email,
		Name:      name,
		Avatar:    avatarURL + email,
		CreatedAt: m.clock.Now().UTC().Format(time.RFC3339),
	}
	if err := acct.SetPassword(req.Password); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := m.accounts.CreateUser(r.Context(), &accountRepo.CreateUserInput{Account: acct}); err != nil {
		if errors.Is(err, accountRepo.ErrEmailTaken) {
			writeError(w, http.StatusConflict, err)
			return
		}
		m.log.Error("failed to create account", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	m.signIn(w, r, acct)
}

// Login verifies a password and signs the account in
func (m *Manager) Login(w http.ResponseWriter, r *http.Request) {
	if m.accounts == nil {
		writeError(w, http.StatusServiceUnavailable, ErrAccountsDisabled)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	acct, err := m.accounts.GetUserByEmail(r.Context(), &accountRepo.GetUserByEmailInput{Email: req.Email})
	if err != nil {
		if !errors.Is(err, accountRepo.ErrAccountNotFound) {
			m.log.Error("failed to look up account", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeError(w, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if !acct.CheckPassword(req.Password) {
		writeError(w, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	m.signIn(w, r, acct)
}

// Guest starts a local-only profile
func (m *Manager) Guest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := &models.Identity{ProfileID: m.uuidGen.NewUUID(), Kind: models.ProfileKindGuest}
	user := &models.User{Name: "Guest", Email: "Guest Mode", Avatar: avatarURL + "guest"}

	if err := m.register(ctx, identity, user); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := m.save(w, r, identity); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, &SessionResponse{ProfileID: identity.ProfileID, Kind: identity.Kind, User: user})
}

// Logout clears the session. Local data stays behind
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := m.store.Get(r, SessionName)
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Session reports the current identity
func (m *Manager) Session(w http.ResponseWriter, r *http.Request) {
	identity, ok := m.identity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, ErrUnauthenticated)
		return
	}

	user, err := m.profiles.GetUser(r.Context(), &profileRepo.GetUserInput{ProfileID: identity.ProfileID})
	if err != nil && !errors.Is(err, profileRepo.ErrUserNotFound) {
		m.log.Warn("failed to load user", zap.String("profile_id", identity.ProfileID), zap.Error(err))
	}

	writeJSON(w, http.StatusOK, &SessionResponse{ProfileID: identity.ProfileID, Kind: identity.Kind, User: user})
}

// Middleware rejects requests without a session and puts the identity on the context
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := m.identity(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// WithIdentity returns a context carrying the identity
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// IdentityFromContext returns the identity put there by Middleware
func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(*models.Identity)
	return identity, ok && identity != nil
}

func (m *Manager) identity(r *http.Request) (*models.Identity, bool) {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		return nil, false
	}

	profileID, _ := session.Values[sessionProfileID].(string)
	kind, _ := session.Values[sessionKind].(string)
	if profileID == "" {
		return nil, false
	}

	identity := &models.Identity{ProfileID: profileID, Kind: models.ProfileKind(kind)}
	if identity.Kind != models.ProfileKindUser {
		identity.Kind = models.ProfileKindGuest
	}
	return identity, true
}

func (m *Manager) signIn(w http.ResponseWriter, r *http.Request, acct *models.Account) {
	ctx := r.Context()
	identity := &models.Identity{ProfileID: acct.ID, Kind: models.ProfileKindUser}

	user, err := m.profiles.GetUser(ctx, &profileRepo.GetUserInput{ProfileID: acct.ID})
	if err != nil {
		user = &models.User{Name: acct.Name, Email: acct.Email, Avatar: acct.Avatar}
	}

	if err := m.register(ctx, identity, user); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	// A signed in profile takes its settings from the remote copy when one exists
	if _, err := m.tracker.LoadRemoteSettings(ctx, &tracker.LoadRemoteSettingsInput{Identity: *identity}); err != nil {
		m.log.Warn("failed to load remote settings", zap.String("profile_id", acct.ID), zap.Error(err))
	}

	if err := m.save(w, r, identity); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, &SessionResponse{ProfileID: identity.ProfileID, Kind: identity.Kind, User: user})
}

func (m *Manager) register(ctx context.Context, identity *models.Identity, user *models.User) error {
	if err := m.profiles.RegisterProfile(ctx, &profileRepo.RegisterProfileInput{
		ProfileID: identity.ProfileID,
		Kind:      identity.Kind,
	}); err != nil {
		m.log.Error("failed to register profile", zap.String("profile_id", identity.ProfileID), zap.Error(err))
		return err
	}

	if err := m.profiles.SaveUser(ctx, &profileRepo.SaveUserInput{
		ProfileID: identity.ProfileID,
		User:      user,
	}); err != nil {
		m.log.Error("failed to save user", zap.String("profile_id", identity.ProfileID), zap.Error(err))
		return err
	}

	return nil
}

func (m *Manager) save(w http.ResponseWriter, r *http.Request, identity *models.Identity) error {
	// A stale or foreign cookie decodes with an error, a fresh session replaces it
	session, _ := m.store.Get(r, SessionName)
	session.Values[sessionProfileID] = identity.ProfileID
	session.Values[sessionKind] = string(identity.Kind)

	if err := session.Save(r, w); err != nil {
		m.log.Error("failed to save session", zap.Error(err))
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
