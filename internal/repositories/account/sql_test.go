package account

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/hydroflow/internal/database"
	"github.com/KirkDiggler/hydroflow/internal/models"
	"github.com/stretchr/testify/suite"
)

type SQLRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo Repository
	ctx  context.Context
}

func (s *SQLRepositoryTestSuite) SetupTest() {
	db, err := database.NewDB(database.DriverSQLite, ":memory:")
	s.Require().NoError(err)
	s.db = db

	repo, err := NewSQL(&Config{DB: db})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *SQLRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestSQLRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLRepositoryTestSuite))
}

func (s *SQLRepositoryTestSuite) newAccount(id, email string) *models.Account {
	acct := &models.Account{
		ID:        id,
		Email:     email,
		Name:      "Alex",
		CreatedAt: "2025-04-05T10:00:00.000Z",
	}
	s.Require().NoError(acct.SetPassword("correct horse"))
	return acct
}

func (s *SQLRepositoryTestSuite) TestCreateAndGetUser() {
	err := s.repo.CreateUser(s.ctx, &CreateUserInput{Account: s.newAccount("user-1", " Alex@Example.com ")})
	s.Require().NoError(err)

	byEmail, err := s.repo.GetUserByEmail(s.ctx, &GetUserByEmailInput{Email: "alex@example.COM"})
	s.Require().NoError(err)
	s.Equal("user-1", byEmail.ID)
	s.Equal("alex@example.com", byEmail.Email)
	s.True(byEmail.CheckPassword("correct horse"))
	s.False(byEmail.CheckPassword("wrong"))

	byID, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(byEmail, byID)
}

func (s *SQLRepositoryTestSuite) TestDuplicateEmail() {
	s.Require().NoError(s.repo.CreateUser(s.ctx, &CreateUserInput{Account: s.newAccount("user-1", "alex@example.com")}))

	err := s.repo.CreateUser(s.ctx, &CreateUserInput{Account: s.newAccount("user-2", "ALEX@example.com")})
	s.True(errors.Is(err, ErrEmailTaken))
}

func (s *SQLRepositoryTestSuite) TestMissingUser() {
	_, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "nobody"})
	s.True(errors.Is(err, ErrAccountNotFound))
}
