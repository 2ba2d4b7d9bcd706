// Copyright (c) 2026 Tutoria. All rights reserved.

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutoria-app/tutoria/internal/platform/dberr"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
	"github.com/tutoria-app/tutoria/internal/users/account"
	"github.com/tutoria-app/tutoria/internal/users/auth"
)

// memoryUserRepository keeps accounts in a map, indexed by id.
type memoryUserRepository struct {
	users map[int64]*auth.User
}

func (r *memoryUserRepository) FindByID(_ context.Context, id int64) (*auth.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryUserRepository) FindByName(_ context.Context, name string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Name == name {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) UpdateProfile(_ context.Context, user *auth.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return dberr.ErrNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepository) UpdateStatus(_ context.Context, id int64, isActive bool, credential sec.Credential) error {
	user, ok := r.users[id]
	if !ok {
		return dberr.ErrNotFound
	}
	user.IsActive = isActive
	user.Credential = credential
	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestService(t *testing.T) (*account.Service, *memoryUserRepository) {
	t.Helper()
	repo := &memoryUserRepository{users: map[int64]*auth.User{
		7: {
			ID: 7, Name: "alice", Email: "alice@example.com",
			PasswordHash: "$2a$10$invalidhashforseeding000000000000000000000000000000",
			Credential:   sec.CredentialUser, IsActive: true, Rating: 12,
		},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.NewService(repo, logger), repo
}

func TestService_GetProfile(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	profile, err := service.GetProfile(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, "alice", profile.Name)
	assert.Equal(t, "user", profile.Credential)
	assert.Equal(t, 12, profile.Rating)

	_, err = service.GetProfile(ctx, 404)
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestService_UpdateProfile(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	updated, err := service.UpdateProfile(ctx, 7, account.UpdateProfileInput{
		Name:     "alice-renamed",
		Email:    "renamed@example.com",
		Password: "new-password-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice-renamed", updated.Name)

	// The new password is stored hashed and verifies.
	stored := repo.users[7]
	assert.NotEqual(t, "new-password-123", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("new-password-123", stored.PasswordHash))

	_, err = service.UpdateProfile(ctx, 404, account.UpdateProfileInput{Password: "x"})
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.UpdateStatus(ctx, 7, false, sec.CredentialModerator))
	assert.False(t, repo.users[7].IsActive)
	assert.Equal(t, sec.CredentialModerator, repo.users[7].Credential)

	assert.Error(t, service.UpdateStatus(ctx, 404, true, sec.CredentialUser))
}

func TestService_Delete(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.Delete(ctx, 7))
	assert.Empty(t, repo.users)

	assert.ErrorIs(t, service.Delete(ctx, 7), dberr.ErrNotFound)
}
