package middlewares

import (
	"context"
	"finboard/internal/api"
	"finboard/internal/models"
)

//go:generate mockgen -source=api_provider.go -destination=../mocks/api.go -package=mocks

// APIProvider is the upstream portfolio/auth REST API surface.
type APIProvider interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	FetchCurrentUser(ctx context.Context, token string) *models.User
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	Logout(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error
	Holdings(ctx context.Context, token string) ([]models.Holding, error)
	Summary(ctx context.Context, token string) (*models.PortfolioSummary, error)
	Analysis(ctx context.Context, token string) (*models.Analysis, error)
	LinkedAccounts(ctx context.Context, token string) ([]models.LinkedAccount, error)
	ExchangePublicToken(ctx context.Context, token, publicToken string) (*models.LinkedAccount, error)
}
