// Copyright (c) 2026 Tutoria. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutoria-app/tutoria/internal/platform/constants"
	"github.com/tutoria-app/tutoria/internal/platform/dberr"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
	"github.com/tutoria-app/tutoria/internal/users/auth"
)

// # Test Fakes

// memoryUserRepository keeps accounts in a map, indexed by id.
type memoryUserRepository struct {
	users  map[int64]*auth.User
	nextID int64
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: map[int64]*auth.User{}, nextID: 1}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id int64) (*auth.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
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
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) UpdateProfile(_ context.Context, user *auth.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return dberr.ErrNotFound
	}
	r.users[user.ID] = user
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

func newTestService(t *testing.T) (*auth.Service, *memoryUserRepository) {
	t.Helper()
	codec, err := sec.NewTokenCodec("test-secret-key-for-tests-only", constants.AuthIssuer)
	require.NoError(t, err)

	repo := newMemoryUserRepository()
	return auth.NewService(repo, codec, time.Hour), repo
}

// registerUser enrolls an account through the real registration path so the
// stored hash is genuine.
func registerUser(t *testing.T, service *auth.Service, name, password string) *auth.User {
	t.Helper()
	user, err := service.Register(context.Background(), auth.RegisterInput{
		Name:     name,
		Email:    name + "@example.com",
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// # Registration

func TestService_Register(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	user := registerUser(t, service, "John", "1234567890")

	// New accounts start at the lowest tier and active.
	assert.Equal(t, sec.CredentialUser, user.Credential)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "1234567890", user.PasswordHash)

	t.Run("duplicate_name", func(t *testing.T) {
		_, err := service.Register(ctx, auth.RegisterInput{
			Name: "John", Email: "other@example.com", Password: "1234567890",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is already taken")
	})

	t.Run("duplicate_email", func(t *testing.T) {
		_, err := service.Register(ctx, auth.RegisterInput{
			Name: "Johnny", Email: "John@example.com", Password: "1234567890",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})
}

// # Login

func TestService_Login(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	user := registerUser(t, service, "John", "1234567890")

	t.Run("success", func(t *testing.T) {
		session, err := service.Login(ctx, auth.LoginInput{Name: "John", Password: "1234567890"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.AccessToken)
		assert.Equal(t, user.ID, session.User.ID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
	})

	t.Run("issued_token_decodes_to_identity", func(t *testing.T) {
		session, err := service.Login(ctx, auth.LoginInput{Name: "John", Password: "1234567890"})
		require.NoError(t, err)

		codec, err := sec.NewTokenCodec("test-secret-key-for-tests-only", constants.AuthIssuer)
		require.NoError(t, err)
		identity, err := codec.Decode(session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, identity.ID)
		assert.Equal(t, "John", identity.Name)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(ctx, auth.LoginInput{Name: "John", Password: "1234567891"})
		assert.ErrorIs(t, err, sec.ErrIncorrectCredentials)
	})

	t.Run("unknown_user_indistinguishable_from_wrong_password", func(t *testing.T) {
		_, unknownErr := service.Login(ctx, auth.LoginInput{Name: "Nobody", Password: "1234567890"})
		_, wrongErr := service.Login(ctx, auth.LoginInput{Name: "John", Password: "wrong-password"})
		assert.ErrorIs(t, unknownErr, sec.ErrIncorrectCredentials)
		assert.Equal(t, unknownErr, wrongErr)
	})

	t.Run("deactivated_account", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, user.ID, false, user.Credential))
		_, err := service.Login(ctx, auth.LoginInput{Name: "John", Password: "1234567890"})
		assert.ErrorIs(t, err, sec.ErrIncorrectCredentials)
	})
}

// # Logout

func TestService_Logout(t *testing.T) {
	service, _ := newTestService(t)

	assert.NoError(t, service.Logout(true))
	assert.ErrorIs(t, service.Logout(false), sec.ErrTokenNotFound)
}
