// Copyright (c) 2026 Tutoria. All rights reserved.

/*
Package account provides profile management on top of the identity layer.

It covers reading public profiles, editing one's own account, and the
admin-only status operations (activation and credential changes). Every
mutation passes through a guard shape before touching storage.
*/
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tutoria-app/tutoria/internal/platform/sec"
	"github.com/tutoria-app/tutoria/internal/users/auth"
)

// Service implements account management use cases.
type Service struct {
	userRepository auth.UserRepository
	logger         *slog.Logger
}

// NewService constructs a new account [Service].
func NewService(userRepo auth.UserRepository, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		logger:         logger,
	}
}

// Profile is the public view of a user record.
//
// The credential appears only in decoded display form; the numeric tier and
// password hash never leave the server.
type Profile struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Credential string `json:"credential"`
	IsActive   bool   `json:"is_active"`
	Rating     int    `json:"rating"`
}

// GetProfile returns the public profile for a user.
func (service *Service) GetProfile(context context.Context, userID int64) (*Profile, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		ID:         user.ID,
		Name:       user.Name,
		Credential: user.DecodedCredential(),
		IsActive:   user.IsActive,
		Rating:     user.Rating,
	}, nil
}

// UpdateProfileInput holds the editable account fields.
type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string
}

/*
UpdateProfile replaces the account's name, email, and password.

The caller must already have passed a self-or-admin guard; this method only
performs the mechanical update, including re-hashing the new password.
*/
func (service *Service) UpdateProfile(context context.Context, userID int64, input UpdateProfileInput) (*auth.User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	user.Name = input.Name
	user.Email = input.Email
	user.PasswordHash = hashedPassword

	if err := service.userRepository.UpdateProfile(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	return user, nil
}

/*
UpdateStatus sets the account's activity flag and privilege tier.

Deactivation fails every subsequent role-gated check for the account, even
when its stored credential is admin.
*/
func (service *Service) UpdateStatus(context context.Context, userID int64, isActive bool, credential sec.Credential) error {
	if err := service.userRepository.UpdateStatus(context, userID, isActive, credential); err != nil {
		return fmt.Errorf("account_service_status_update_failed: %w", err)
	}

	service.logger.Info("user_status_updated",
		slog.Int64("user_id", userID),
		slog.Bool("is_active", isActive),
		slog.String("credential", credential.String()),
	)
	return nil
}

// Delete removes the account permanently.
func (service *Service) Delete(context context.Context, userID int64) error {
	if err := service.userRepository.Delete(context, userID); err != nil {
		return err
	}

	service.logger.Info("user_deleted", slog.Int64("user_id", userID))
	return nil
}
