package response

import (
	"time"

	"electronics-store/internal/data/entity"
)

type RegisterResponse struct {
	Detail string `json:"detail"`
	Email  string `json:"email"`
}

type TokenPairResponse struct {
	Refresh  string `json:"refresh"`
	Access   string `json:"access"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AccessTokenResponse struct {
	Access string `json:"access"`
}

type AccountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters
func AccountToResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Username:  account.Email,
		Email:     account.Email,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
	}
}
