package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/hydroflow/internal/common/clock/mocks"
	"github.com/KirkDiggler/hydroflow/internal/common/keyspace"
	uuidMocks "github.com/KirkDiggler/hydroflow/internal/common/uuid/mocks"
	"github.com/KirkDiggler/hydroflow/internal/models"
	accountRepo "github.com/KirkDiggler/hydroflow/internal/repositories/account"
	accountMocks "github.com/KirkDiggler/hydroflow/internal/repositories/account/mocks"
	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	"github.com/KirkDiggler/hydroflow/internal/services/tracker"
	trackerMocks "github.com/KirkDiggler/hydroflow/internal/services/tracker/mocks"
)

type AuthTestSuite struct {
	suite.Suite
	mr           *miniredis.Miniredis
	client       *redis.Client
	mockCtrl     *gomock.Controller
	mockAccounts *accountMocks.MockRepository
	mockTracker  *trackerMocks.MockService
	mockUUID     *uuidMocks.MockUUID
	mockClock    *clockMocks.MockClock
	profiles     profileRepo.Repository
	manager      *Manager
}

func (s *AuthTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	profiles, err := profileRepo.NewRedis(&profileRepo.Config{RedisClient: s.client, Keyspace: keyspace.New("")})
	s.Require().NoError(err)
	s.profiles = profiles

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAccounts = accountMocks.NewMockRepository(s.mockCtrl)
	s.mockTracker = trackerMocks.NewMockService(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 10, 0, 0, 0, time.UTC)).AnyTimes()

	manager, err := New(&Config{
		SessionSecret: "test-secret-test-secret-test-sec",
		Accounts:      s.mockAccounts,
		ProfileRepo:   s.profiles,
		Tracker:       s.mockTracker,
		UUIDGenerator: s.mockUUID,
		Clock:         s.mockClock,
	})
	s.Require().NoError(err)
	s.manager = manager
}

func (s *AuthTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (s *AuthTestSuite) post(handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// sessionRequest replays the cookies of a previous response
func (s *AuthTestSuite) sessionRequest(from *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	for _, cookie := range from.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func (s *AuthTestSuite) decode(rec *httptest.ResponseRecorder) *SessionResponse {
	var resp SessionResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	return &resp
}

func (s *AuthTestSuite) TestGuest() {
	s.mockUUID.EXPECT().NewUUID().Return("guest-1")

	rec := s.post(s.manager.Guest, nil)
	s.Require().Equal(http.StatusCreated, rec.Code)

	resp := s.decode(rec)
	s.Equal("guest-1", resp.ProfileID)
	s.Equal(models.ProfileKindGuest, resp.Kind)
	s.Equal("Guest", resp.User.Name)

	guest, err := s.profiles.IsGuestMode(s.T().Context(), &profileRepo.IsGuestModeInput{ProfileID: "guest-1"})
	s.Require().NoError(err)
	s.True(guest)

	var seen *models.Identity
	handler := s.manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), s.sessionRequest(rec))

	s.Require().NotNil(seen)
	s.Equal("guest-1", seen.ProfileID)
	s.False(seen.SignedIn())
}

func (s *AuthTestSuite) TestSignupSignsInAndLoadsRemoteSettings() {
	s.mockUUID.EXPECT().NewUUID().Return("user-1")
	s.mockAccounts.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, input *accountRepo.CreateUserInput) error {
			s.Equal("alex@example.com", input.Account.Email)
			s.Equal("alex", input.Account.Name)
			s.True(input.Account.CheckPassword("secret1"))
			return nil
		})
	s.mockTracker.EXPECT().LoadRemoteSettings(gomock.Any(), &tracker.LoadRemoteSettingsInput{
		Identity: models.Identity{ProfileID: "user-1", Kind: models.ProfileKindUser},
	}).Return(&tracker.LoadRemoteSettingsOutput{}, nil)

	rec := s.post(s.manager.Signup, &SignupRequest{Email: "alex@example.com", Password: "secret1"})
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := s.decode(rec)
	s.Equal(models.ProfileKindUser, resp.Kind)
	s.Equal("https://api.dicebear.com/7.x/avataaars/svg?seed=alex@example.com", resp.User.Avatar)

	list, err := s.profiles.ListProfiles(s.T().Context(), &profileRepo.ListProfilesInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Profiles, 1)
	s.Equal(models.ProfileKindUser, list.Profiles[0].Kind)
}

func (s *AuthTestSuite) TestSignupValidation() {
	rec := s.post(s.manager.Signup, &SignupRequest{Email: "nope", Password: "secret1"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.post(s.manager.Signup, &SignupRequest{Email: "a@b.c", Password: "123"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AuthTestSuite) TestSignupEmailTaken() {
	s.mockUUID.EXPECT().NewUUID().Return("user-1")
	s.mockAccounts.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(accountRepo.ErrEmailTaken)

	rec := s.post(s.manager.Signup, &SignupRequest{Email: "a@b.c", Password: "secret1"})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *AuthTestSuite) TestLogin() {
	acct := &models.Account{ID: "user-1", Email: "a@b.c", Name: "A"}
	s.Require().NoError(acct.SetPassword("secret1"))

	s.mockAccounts.EXPECT().GetUserByEmail(gomock.Any(), &accountRepo.GetUserByEmailInput{Email: "a@b.c"}).
		Return(acct, nil).Times(2)

	rec := s.post(s.manager.Login, &LoginRequest{Email: "a@b.c", Password: "wrong"})
	s.Equal(http.StatusUnauthorized, rec.Code)

	// A failed settings load does not block the sign in
	s.mockTracker.EXPECT().LoadRemoteSettings(gomock.Any(), gomock.Any()).Return(nil, errors.New("offline"))

	rec = s.post(s.manager.Login, &LoginRequest{Email: "a@b.c", Password: "secret1"})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("user-1", s.decode(rec).ProfileID)
}

func (s *AuthTestSuite) TestLoginUnknownAccount() {
	s.mockAccounts.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, accountRepo.ErrAccountNotFound)

	rec := s.post(s.manager.Login, &LoginRequest{Email: "x@y.z", Password: "secret1"})
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthTestSuite) TestAccountsDisabled() {
	manager, err := New(&Config{SessionSecret: "secret", ProfileRepo: s.profiles, Tracker: s.mockTracker})
	s.Require().NoError(err)

	rec := s.post(manager.Login, &LoginRequest{Email: "a@b.c", Password: "secret1"})
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *AuthTestSuite) TestMiddlewareRejectsMissingSession() {
	called := false
	handler := s.manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/2025-04-19", nil))

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(called)
}

func (s *AuthTestSuite) TestLogoutExpiresCookie() {
	s.mockUUID.EXPECT().NewUUID().Return("guest-1")
	login := s.post(s.manager.Guest, nil)

	rec := httptest.NewRecorder()
	s.manager.Logout(rec, s.sessionRequest(login))
	s.Equal(http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.True(cookies[0].MaxAge < 0)
}

func (s *AuthTestSuite) TestNew() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrEmptySecret, err)

	_, err = New(&Config{SessionSecret: "x"})
	s.Equal(ErrNilProfileRepo, err)
}
