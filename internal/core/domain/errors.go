package domain

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or empty.
	ErrInvalidInput = errors.New("missing required field")

	// ErrUserExists is returned on registration with an already-taken email.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned by the repository when no user matches.
	// Login folds it into ErrInvalidCredentials before it reaches a client.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so a caller cannot tell which one occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken means the request carried no token at all.
	// Kept distinct from ErrInvalidToken so the transport can signal the
	// two cases with different status codes.
	ErrMissingToken = errors.New("a token is required for authentication")

	// ErrInvalidToken means the token was malformed or its signature did
	// not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken means the token verified but its expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrNotWhitelisted means the token is valid but has not been opted
	// into the elevated-access tier.
	ErrNotWhitelisted = errors.New("token not whitelisted")
)
