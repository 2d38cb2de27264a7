package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/hydroflow/internal/common/keyspace"
	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Keyspace:    keyspace.New(""),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetUser() {
	user := &models.User{
		Name:   "Alex",
		Email:  "alex@example.com",
		Avatar: "https://example.com/a.png",
	}

	err := s.repo.SaveUser(s.ctx, &SaveUserInput{ProfileID: "profile-1", User: user})
	s.Require().NoError(err)

	got, err := s.repo.GetUser(s.ctx, &GetUserInput{ProfileID: "profile-1"})
	s.Require().NoError(err)
	s.Equal(user, got)

	_, err = s.repo.GetUser(s.ctx, &GetUserInput{ProfileID: "profile-2"})
	s.True(errors.Is(err, ErrUserNotFound))
}

func (s *RedisRepositoryTestSuite) TestDiscordLinkFollowsUser() {
	s.Require().NoError(s.repo.RegisterProfile(s.ctx, &RegisterProfileInput{
		ProfileID: "profile-1",
		Kind:      models.ProfileKindUser,
	}))

	err := s.repo.SaveUser(s.ctx, &SaveUserInput{
		ProfileID: "profile-1",
		User:      &models.User{Name: "Alex", DiscordID: "111"},
	})
	s.Require().NoError(err)

	identity, err := s.repo.GetProfileByDiscordID(s.ctx, &GetProfileByDiscordIDInput{DiscordID: "111"})
	s.Require().NoError(err)
	s.Equal("profile-1", identity.ProfileID)
	s.Equal(models.ProfileKindUser, identity.Kind)

	// Relinking drops the old pointer
	err = s.repo.SaveUser(s.ctx, &SaveUserInput{
		ProfileID: "profile-1",
		User:      &models.User{Name: "Alex", DiscordID: "222"},
	})
	s.Require().NoError(err)

	_, err = s.repo.GetProfileByDiscordID(s.ctx, &GetProfileByDiscordIDInput{DiscordID: "111"})
	s.True(errors.Is(err, ErrProfileNotFound))

	_, err = s.repo.GetProfileByDiscordID(s.ctx, &GetProfileByDiscordIDInput{DiscordID: "222"})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestDiscordIDCannotBeClaimedTwice() {
	for _, id := range []string{"owner", "other"} {
		s.Require().NoError(s.repo.RegisterProfile(s.ctx, &RegisterProfileInput{ProfileID: id, Kind: models.ProfileKindUser}))
	}

	s.Require().NoError(s.repo.SaveUser(s.ctx, &SaveUserInput{
		ProfileID: "owner",
		User:      &models.User{Name: "Alex", DiscordID: "111"},
	}))

	err := s.repo.SaveUser(s.ctx, &SaveUserInput{
		ProfileID: "other",
		User:      &models.User{Name: "Sam", DiscordID: "111"},
	})
	s.True(errors.Is(err, ErrDiscordIDTaken))

	identity, err := s.repo.GetProfileByDiscordID(s.ctx, &GetProfileByDiscordIDInput{DiscordID: "111"})
	s.Require().NoError(err)
	s.Equal("owner", identity.ProfileID)

	// The rejected save stores nothing
	_, err = s.repo.GetUser(s.ctx, &GetUserInput{ProfileID: "other"})
	s.True(errors.Is(err, ErrUserNotFound))

	// Saving again with the same link is allowed
	s.Require().NoError(s.repo.SaveUser(s.ctx, &SaveUserInput{
		ProfileID: "owner",
		User:      &models.User{Name: "Alex B", DiscordID: "111"},
	}))
}

func (s *RedisRepositoryTestSuite) TestUnlinkKeepsLinkOwnedByAnotherProfile() {
	// A stale record from before links were exclusive
	s.Require().NoError(s.mr.Set(keyspace.New("").Discord("111"), "owner"))
	s.Require().NoError(s.mr.Set(keyspace.New("").User("stale"), `{"name":"Sam","discordId":"111"}`))

	s.Require().NoError(s.repo.SaveUser(s.ctx, &SaveUserInput{
		ProfileID: "stale",
		User:      &models.User{Name: "Sam"},
	}))

	value, err := s.mr.Get(keyspace.New("").Discord("111"))
	s.Require().NoError(err)
	s.Equal("owner", value)
}

func (s *RedisRepositoryTestSuite) TestDarkMode() {
	enabled, err := s.repo.GetDarkMode(s.ctx, &GetDarkModeInput{ProfileID: "profile-1"})
	s.Require().NoError(err)
	s.False(enabled)

	s.Require().NoError(s.repo.SetDarkMode(s.ctx, &SetDarkModeInput{ProfileID: "profile-1", Enabled: true}))

	enabled, err = s.repo.GetDarkMode(s.ctx, &GetDarkModeInput{ProfileID: "profile-1"})
	s.Require().NoError(err)
	s.True(enabled)

	value, err := s.mr.Get("profile-1:hydroflow_darkmode")
	s.Require().NoError(err)
	s.Equal("true", value)
}

func (s *RedisRepositoryTestSuite) TestRegisterAndListProfiles() {
	s.Require().NoError(s.repo.RegisterProfile(s.ctx, &RegisterProfileInput{ProfileID: "b-guest", Kind: models.ProfileKindGuest}))
	s.Require().NoError(s.repo.RegisterProfile(s.ctx, &RegisterProfileInput{ProfileID: "a-user", Kind: models.ProfileKindUser}))

	out, err := s.repo.ListProfiles(s.ctx, &ListProfilesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Profiles, 2)
	s.Equal("a-user", out.Profiles[0].ProfileID)
	s.Equal(models.ProfileKindUser, out.Profiles[0].Kind)
	s.Equal(models.ProfileKindGuest, out.Profiles[1].Kind)

	guest, err := s.repo.IsGuestMode(s.ctx, &IsGuestModeInput{ProfileID: "b-guest"})
	s.Require().NoError(err)
	s.True(guest)

	guest, err = s.repo.IsGuestMode(s.ctx, &IsGuestModeInput{ProfileID: "a-user"})
	s.Require().NoError(err)
	s.False(guest)

	err = s.repo.RegisterProfile(s.ctx, &RegisterProfileInput{ProfileID: "c", Kind: "robot"})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestDeleteProfile() {
	s.Require().NoError(s.repo.RegisterProfile(s.ctx, &RegisterProfileInput{ProfileID: "profile-1", Kind: models.ProfileKindGuest}))
	s.Require().NoError(s.repo.SaveUser(s.ctx, &SaveUserInput{
		ProfileID: "profile-1",
		User:      &models.User{Name: "Guest", DiscordID: "111"},
	}))
	s.Require().NoError(s.mr.Set("profile-1:hydroflow_stats_2025-04-05", "{}"))

	s.Require().NoError(s.repo.DeleteProfile(s.ctx, &DeleteProfileInput{ProfileID: "profile-1"}))

	s.False(s.mr.Exists("profile-1:hydroflow_user"))
	s.False(s.mr.Exists("profile-1:hydroflow_guest_mode"))
	s.False(s.mr.Exists("hydroflow_discord_111"))
	s.True(s.mr.Exists("profile-1:hydroflow_stats_2025-04-05"))

	out, err := s.repo.ListProfiles(s.ctx, &ListProfilesInput{})
	s.Require().NoError(err)
	s.Empty(out.Profiles)
}
