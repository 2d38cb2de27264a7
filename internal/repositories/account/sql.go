package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/hydroflow/internal/database"
	"github.com/KirkDiggler/hydroflow/internal/models"
)

var (
	// ErrAccountNotFound is returned when no account matches
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailTaken is returned when the sign in address is already registered
	ErrEmailTaken = errors.New("email already registered")
)

// Config holds configuration for the SQL account repository
type Config struct {
	DB *database.DB
}

// sqlRepository implements the Repository interface using sqlx
type sqlRepository struct {
	db *database.DB
}

// NewSQL creates a new SQL-backed account repository
func NewSQL(cfg *Config) (*sqlRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	return &sqlRepository{
		db: cfg.DB,
	}, nil
}

// CreateUser inserts a new account. Emails are compared case-insensitively
func (r *sqlRepository) CreateUser(ctx context.Context, input *CreateUserInput) error {
	if input == nil || input.Account == nil {
		return errors.New("input and account cannot be nil")
	}

	acct := input.Account
	if acct.ID == "" || acct.Email == "" || acct.PasswordHash == "" {
		return errors.New("account ID, email and password hash cannot be empty")
	}
	acct.Email = normalizeEmail(acct.Email)

	if _, err := r.GetUserByEmail(ctx, &GetUserByEmailInput{Email: acct.Email}); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, ErrAccountNotFound) {
		return err
	}

	query := `
		INSERT INTO users (id, email, name, avatar, password_hash, created_at)
		VALUES (:id, :email, :name, :avatar, :password_hash, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, acct); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves an account by sign in address
func (r *sqlRepository) GetUserByEmail(ctx context.Context, input *GetUserByEmailInput) (*models.Account, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	return r.getOne(ctx, `SELECT id, email, name, avatar, password_hash, created_at FROM users WHERE email = ?`, normalizeEmail(input.Email))
}

// GetUser retrieves an account by ID
func (r *sqlRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.Account, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	return r.getOne(ctx, `SELECT id, email, name, avatar, password_hash, created_at FROM users WHERE id = ?`, input.UserID)
}

func (r *sqlRepository) getOne(ctx context.Context, query string, arg string) (*models.Account, error) {
	var acct models.Account
	err := r.db.GetContext(ctx, &acct, r.db.Rebind(query), arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &acct, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
