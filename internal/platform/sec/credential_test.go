// Copyright (c) 2026 Tutoria. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutoria-app/tutoria/internal/platform/sec"
)

/*
TestCredential_Satisfies exercises the full privilege ordering.
*/
func TestCredential_Satisfies(t *testing.T) {
	tests := []struct {
		name      string
		have      sec.Credential
		required  sec.Credential
		satisfies bool
	}{
		{"user_meets_user", sec.CredentialUser, sec.CredentialUser, true},
		{"user_fails_moderator", sec.CredentialUser, sec.CredentialModerator, false},
		{"user_fails_admin", sec.CredentialUser, sec.CredentialAdmin, false},
		{"moderator_meets_user", sec.CredentialModerator, sec.CredentialUser, true},
		{"moderator_meets_moderator", sec.CredentialModerator, sec.CredentialModerator, true},
		{"moderator_fails_admin", sec.CredentialModerator, sec.CredentialAdmin, false},
		{"admin_meets_user", sec.CredentialAdmin, sec.CredentialUser, true},
		{"admin_meets_moderator", sec.CredentialAdmin, sec.CredentialModerator, true},
		{"admin_meets_admin", sec.CredentialAdmin, sec.CredentialAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.satisfies, tt.have.Satisfies(tt.required))
		})
	}
}

/*
TestCredential_IsValid verifies that only the known tiers are accepted.
*/
func TestCredential_IsValid(t *testing.T) {
	assert.True(t, sec.CredentialUser.IsValid())
	assert.True(t, sec.CredentialModerator.IsValid())
	assert.True(t, sec.CredentialAdmin.IsValid())

	// Values between and outside the known tiers are rejected.
	assert.False(t, sec.Credential(0).IsValid())
	assert.False(t, sec.Credential(3).IsValid())
	assert.False(t, sec.Credential(6).IsValid())
	assert.False(t, sec.Credential(-1).IsValid())
}

/*
TestCredential_String verifies display names round-trip through parsing.
*/
func TestCredential_String(t *testing.T) {
	tiers := []sec.Credential{sec.CredentialUser, sec.CredentialModerator, sec.CredentialAdmin}

	for _, tier := range tiers {
		parsed, err := sec.ParseCredential(tier.String())
		require.NoError(t, err)
		assert.Equal(t, tier, parsed)
	}

	_, err := sec.ParseCredential("superuser")
	assert.Error(t, err)
}
