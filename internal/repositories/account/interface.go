package account

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hydroflow/internal/repositories/account Repository

import (
	"context"

	"github.com/KirkDiggler/hydroflow/internal/models"
)

// Repository defines the interface for remote user accounts
type Repository interface {
	// CreateUser inserts a new account
	CreateUser(ctx context.Context, input *CreateUserInput) error

	// GetUserByEmail retrieves an account by sign in address
	GetUserByEmail(ctx context.Context, input *GetUserByEmailInput) (*models.Account, error)

	// GetUser retrieves an account by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.Account, error)
}
