package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gatekeep/auth-service/internal/core/domain"
)

const defaultTTL = time.Hour

// Claims is the identity carried inside a signed token.
type Claims struct {
	UserID string
	Email  string
}

// Service mints and verifies HS256-signed bearer tokens. Verification is
// stateless: integrity and expiry are checked cryptographically on every
// call, so no server-side session table exists.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token Service. A zero ttl falls back to one hour;
// a negative ttl is kept as-is and mints tokens that are already expired.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the user identity with expiry now+ttl.
func (s *Service) Issue(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Failure modes are distinct sentinels so the transport can signal them
// separately: domain.ErrMissingToken for an empty input,
// domain.ErrExpiredToken for a stale token, domain.ErrInvalidToken for
// anything else (bad signature, malformed payload, wrong algorithm).
func (s *Service) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, domain.ErrMissingToken
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	return &Claims{UserID: userID, Email: email}, nil
}
