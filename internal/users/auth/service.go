// Copyright (c) 2026 Tutoria. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutoria-app/tutoria/internal/platform/apperr"
	"github.com/tutoria-app/tutoria/internal/platform/dberr"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
)

// # Contracts & Types

// TokenIssuer defines the contract for issuing session tokens.
type TokenIssuer interface {
	// Encode creates a signed session token for the given identity.
	Encode(identity sec.Identity, timeToLive time.Duration) (string, error)
}

// Service implements the session lifecycle use cases: registration, login
// (token issuance), and logout.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenIssuer    TokenIssuer
	tokenTTL       time.Duration
}

// NewService constructs a new [Service] with necessary dependencies.
//
// tokenTTL is process-wide immutable configuration, loaded once at startup
// and threaded through explicitly.
func NewService(userRepo UserRepository, issuer TokenIssuer, tokenTTL time.Duration) *Service {
	return &Service{
		userRepository: userRepo,
		tokenIssuer:    issuer,
		tokenTTL:       tokenTTL,
	}
}

// TokenTTL returns the configured session token lifetime.
// The session cookie's Max-Age mirrors it.
func (service *Service) TokenTTL() time.Duration {
	return service.tokenTTL
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

New accounts always start at the lowest privilege tier and active; promotion
is a separate, admin-only operation.

Returns:
  - *User: Created entity
  - error: Conflict (if name or email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify name uniqueness. Return a client-safe Conflict error.
	_, err := service.userRepository.FindByName(context, input.Name)
	if err == nil {
		return nil, apperr.Conflict("User name is already taken")
	}

	// Verify email uniqueness. Return a client-safe Conflict error.
	_, err = service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Credential:   sec.CredentialUser,
		IsActive:     true,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Name     string
	Password string
}

// LoginSession represents a successfully established stateless session.
type LoginSession struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *User
}

/*
Login validates user credentials and issues a session token.

Description: Looks up the account by name, performs constant-time password
comparison, and encodes a signed token carrying the user's identity claim.

The same [sec.ErrIncorrectCredentials] covers an unknown user name and a
wrong password so a caller cannot probe which accounts exist.

Returns:
  - *LoginSession: Transport-ready session token
  - error: sec.ErrIncorrectCredentials or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.userRepository.FindByName(context, input.Name)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, sec.ErrIncorrectCredentials
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// Constant-time comparison inside bcrypt prevents timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, sec.ErrIncorrectCredentials
	}

	// A deactivated account can authenticate its password but never receives
	// a usable session.
	if !user.IsActive {
		return nil, sec.ErrIncorrectCredentials
	}

	accessToken, err := service.tokenIssuer.Encode(user.Identity(), service.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginSession{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(service.tokenTTL),
		User:        user,
	}, nil
}

/*
Logout validates that a session token was presented.

Sessions are stateless: a logged-out token remains cryptographically valid
until natural expiry, and "logout" only instructs the caller to clear the
cookie. A missing token fails with [sec.ErrTokenNotFound].
*/
func (service *Service) Logout(tokenPresent bool) error {
	if !tokenPresent {
		return sec.ErrTokenNotFound
	}
	return nil
}
