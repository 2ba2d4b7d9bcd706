// Copyright (c) 2026 Tutoria. All rights reserved.

package guard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutoria-app/tutoria/internal/platform/dberr"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
	"github.com/tutoria-app/tutoria/internal/users/auth"
	"github.com/tutoria-app/tutoria/internal/users/guard"
)

// # Test Fakes

// stubDecoder maps raw token strings to identities.
type stubDecoder struct {
	identities map[string]*sec.Identity
}

func (d *stubDecoder) Decode(token string) (*sec.Identity, error) {
	if identity, ok := d.identities[token]; ok {
		return identity, nil
	}
	return nil, sec.ErrTokenInvalid
}

// stubDirectory maps user ids to records.
type stubDirectory struct {
	users map[int64]*auth.User
	err   error
}

func (d *stubDirectory) FindByID(_ context.Context, id int64) (*auth.User, error) {
	if d.err != nil {
		return nil, d.err
	}
	if user, ok := d.users[id]; ok {
		return user, nil
	}
	return nil, dberr.ErrNotFound
}

// stubOwners maps resource ids to owner ids.
type stubOwners struct {
	owners map[int64]int64
}

func (o *stubOwners) OwnerID(_ context.Context, resourceID int64) (int64, error) {
	if ownerID, ok := o.owners[resourceID]; ok {
		return ownerID, nil
	}
	return 0, dberr.ErrNotFound
}

// newTestGuard wires a guard over three fixed accounts:
// id 7 is a regular user, id 8 a moderator, id 9 an admin, id 10 a
// deactivated admin, and id 11 a user renamed after token issuance.
func newTestGuard() (*guard.Guard, *stubOwners) {
	decoder := &stubDecoder{identities: map[string]*sec.Identity{
		"token-user":      {ID: 7, Name: "alice"},
		"token-moderator": {ID: 8, Name: "bob"},
		"token-admin":     {ID: 9, Name: "carol"},
		"token-inactive":  {ID: 10, Name: "dave"},
		"token-stale":     {ID: 11, Name: "old-name"},
		"token-ghost":     {ID: 99, Name: "ghost"},
	}}
	directory := &stubDirectory{users: map[int64]*auth.User{
		7:  {ID: 7, Name: "alice", Credential: sec.CredentialUser, IsActive: true},
		8:  {ID: 8, Name: "bob", Credential: sec.CredentialModerator, IsActive: true},
		9:  {ID: 9, Name: "carol", Credential: sec.CredentialAdmin, IsActive: true},
		10: {ID: 10, Name: "dave", Credential: sec.CredentialAdmin, IsActive: false},
		11: {ID: 11, Name: "new-name", Credential: sec.CredentialUser, IsActive: true},
	}}
	owners := &stubOwners{owners: map[int64]int64{
		100: 7, // resource 100 belongs to the regular user
	}}
	return guard.New(decoder, directory), owners
}

// # RequireRole

func TestGuard_RequireRole(t *testing.T) {
	authGuard, _ := newTestGuard()
	ctx := context.Background()

	t.Run("sufficient_credential", func(t *testing.T) {
		user, err := authGuard.RequireRole(ctx, "token-admin", sec.CredentialModerator)
		require.NoError(t, err)
		assert.Equal(t, int64(9), user.ID)
	})

	t.Run("exact_credential", func(t *testing.T) {
		_, err := authGuard.RequireRole(ctx, "token-moderator", sec.CredentialModerator)
		assert.NoError(t, err)
	})

	t.Run("insufficient_credential", func(t *testing.T) {
		_, err := authGuard.RequireRole(ctx, "token-user", sec.CredentialModerator)
		assert.ErrorIs(t, err, sec.ErrAccessDenied)
	})

	t.Run("invalid_token_propagates", func(t *testing.T) {
		_, err := authGuard.RequireRole(ctx, "no-such-token", sec.CredentialUser)
		assert.ErrorIs(t, err, sec.ErrTokenInvalid)
	})

	t.Run("missing_token_is_its_own_failure", func(t *testing.T) {
		// An absent cookie must not be reported as a tampered token.
		_, err := authGuard.RequireRole(ctx, "", sec.CredentialUser)
		assert.ErrorIs(t, err, sec.ErrTokenNotFound)
		assert.NotErrorIs(t, err, sec.ErrTokenInvalid)
	})

	t.Run("deactivated_account_fails_closed", func(t *testing.T) {
		// Even an admin credential is worthless on a deactivated record.
		_, err := authGuard.RequireRole(ctx, "token-inactive", sec.CredentialUser)
		assert.ErrorIs(t, err, sec.ErrAccessDenied)
	})

	t.Run("stale_identity_fails_closed", func(t *testing.T) {
		// Token subject no longer matches the stored name.
		_, err := authGuard.RequireRole(ctx, "token-stale", sec.CredentialUser)
		assert.ErrorIs(t, err, sec.ErrAccessDenied)
	})

	t.Run("deleted_account_fails_closed", func(t *testing.T) {
		_, err := authGuard.RequireRole(ctx, "token-ghost", sec.CredentialUser)
		assert.ErrorIs(t, err, sec.ErrAccessDenied)
	})

	t.Run("directory_failure_propagates", func(t *testing.T) {
		infraErr := errors.New("connection reset")
		broken := guard.New(
			&stubDecoder{identities: map[string]*sec.Identity{"token": {ID: 7, Name: "alice"}}},
			&stubDirectory{err: infraErr},
		)
		_, err := broken.RequireRole(ctx, "token", sec.CredentialUser)
		assert.ErrorIs(t, err, infraErr)
	})
}

// # RequireSelf / RequireSelfOrRole

func TestGuard_RequireSelf(t *testing.T) {
	authGuard, _ := newTestGuard()

	assert.True(t, authGuard.RequireSelf("token-user", 7))
	assert.False(t, authGuard.RequireSelf("token-user", 8))
	assert.False(t, authGuard.RequireSelf("no-such-token", 7))
}

func TestGuard_RequireSelfOrRole(t *testing.T) {
	authGuard, _ := newTestGuard()
	ctx := context.Background()

	t.Run("self_without_privilege", func(t *testing.T) {
		identity, err := authGuard.RequireSelfOrRole(ctx, "token-user", 7, sec.CredentialAdmin)
		require.NoError(t, err)
		assert.Equal(t, int64(7), identity.ID)
	})

	t.Run("privilege_without_self", func(t *testing.T) {
		identity, err := authGuard.RequireSelfOrRole(ctx, "token-admin", 7, sec.CredentialAdmin)
		require.NoError(t, err)
		assert.Equal(t, int64(9), identity.ID)
	})

	t.Run("neither_self_nor_privilege", func(t *testing.T) {
		_, err := authGuard.RequireSelfOrRole(ctx, "token-user", 8, sec.CredentialAdmin)
		assert.ErrorIs(t, err, sec.ErrAccessDenied)
	})

	t.Run("invalid_token", func(t *testing.T) {
		_, err := authGuard.RequireSelfOrRole(ctx, "no-such-token", 7, sec.CredentialAdmin)
		assert.ErrorIs(t, err, sec.ErrTokenInvalid)
	})

	t.Run("missing_token", func(t *testing.T) {
		_, err := authGuard.RequireSelfOrRole(ctx, "", 7, sec.CredentialAdmin)
		assert.ErrorIs(t, err, sec.ErrTokenNotFound)
	})
}

// # RequireOwnerOrRole / CanEditResource

func TestGuard_RequireOwnerOrRole(t *testing.T) {
	authGuard, owners := newTestGuard()
	ctx := context.Background()

	t.Run("owner_without_privilege", func(t *testing.T) {
		resourceID, err := authGuard.RequireOwnerOrRole(ctx, "token-user", 100, sec.CredentialModerator, owners)
		require.NoError(t, err)
		assert.Equal(t, int64(100), resourceID)
	})

	t.Run("moderator_over_foreign_resource", func(t *testing.T) {
		_, err := authGuard.RequireOwnerOrRole(ctx, "token-moderator", 100, sec.CredentialModerator, owners)
		assert.NoError(t, err)
	})

	t.Run("admin_over_foreign_resource", func(t *testing.T) {
		_, err := authGuard.RequireOwnerOrRole(ctx, "token-admin", 100, sec.CredentialModerator, owners)
		assert.NoError(t, err)
	})

	t.Run("stranger_denied", func(t *testing.T) {
		// Resource 100 reassigned to the moderator; the regular user neither
		// owns it nor holds the tier.
		_, err := authGuard.RequireOwnerOrRole(ctx, "token-user", 100, sec.CredentialModerator, &stubOwners{owners: map[int64]int64{100: 8}})
		assert.ErrorIs(t, err, sec.ErrAccessDenied)
	})

	t.Run("missing_resource_is_not_found", func(t *testing.T) {
		_, err := authGuard.RequireOwnerOrRole(ctx, "token-admin", 404, sec.CredentialModerator, owners)
		assert.ErrorIs(t, err, dberr.ErrNotFound)
		assert.NotErrorIs(t, err, sec.ErrAccessDenied)
	})

	t.Run("inactive_owner_denied", func(t *testing.T) {
		// Ownership does not override a deactivated account.
		_, err := authGuard.RequireOwnerOrRole(ctx, "token-inactive", 100, sec.CredentialModerator, &stubOwners{owners: map[int64]int64{100: 10}})
		assert.ErrorIs(t, err, sec.ErrAccessDenied)
	})
}

func TestGuard_CanEditResource(t *testing.T) {
	authGuard, owners := newTestGuard()
	ctx := context.Background()

	assert.True(t, authGuard.CanEditResource(ctx, "token-user", 100, sec.CredentialModerator, owners))
	assert.True(t, authGuard.CanEditResource(ctx, "token-moderator", 100, sec.CredentialModerator, owners))
	assert.False(t, authGuard.CanEditResource(ctx, "", 100, sec.CredentialModerator, owners))
	assert.False(t, authGuard.CanEditResource(ctx, "no-such-token", 100, sec.CredentialModerator, owners))
	assert.False(t, authGuard.CanEditResource(ctx, "token-admin", 404, sec.CredentialModerator, owners))
}
