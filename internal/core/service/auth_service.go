package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gatekeep/auth-service/internal/core/domain"
	"github.com/gatekeep/auth-service/internal/core/ports"
)

// TokenIssuer mints bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens TokenIssuer
	events ports.AuthEventSink
	logger zerolog.Logger
}

// NewAuthService wires the auth use cases. events may be nil when no audit
// trail is attached (tests).
func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens TokenIssuer, events ports.AuthEventSink, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, events: events, logger: logger}
}

// Register creates an account and returns it with a fresh token.
// The email is lowercased before the duplicate check and before storage.
// The check-then-create sequence is best effort; the repository's unique
// index closes the race against a concurrent duplicate registration.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return nil, "", domain.ErrInvalidInput
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Issue(created.ID, created.Email)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	s.emit(ports.EventRegistered, created.Email)

	return created, tok, nil
}

// Login authenticates by email and password and returns a fresh token.
// Unknown email and wrong password both yield domain.ErrInvalidCredentials
// so a caller cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	normalized := strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.emit(ports.EventLoginFailed, normalized)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.emit(ports.EventLoginFailed, normalized)
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user logged in")
	s.emit(ports.EventLoginOK, user.Email)

	return tok, user, nil
}

func (s *AuthService) emit(eventType, email string) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(ports.AuthEvent{Type: eventType, Email: email, At: time.Now().UTC()})
}
