package account

import "github.com/KirkDiggler/hydroflow/internal/models"

type CreateUserInput struct {
	Account *models.Account
}

type GetUserByEmailInput struct {
	Email string
}

type GetUserInput struct {
	UserID string
}
