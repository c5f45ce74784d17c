package ports

import (
	"context"

	"github.com/gatekeep/auth-service/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService defines the registration and login use cases. Both return a
// freshly minted bearer token alongside the user; tokens are never persisted.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
