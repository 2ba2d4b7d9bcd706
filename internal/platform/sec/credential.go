// Copyright (c) 2026 Tutoria. All rights reserved.

package sec

import "fmt"

// # User Credentials

// Credential represents the privilege tier granted to an account.
//
// The numeric values are stored in the database and embedded in ordering
// comparisons, so they must never be renumbered. The gap between moderator
// and admin leaves room for intermediate tiers.
type Credential int

const (
	// CredentialUser is the default tier for registered members.
	CredentialUser Credential = 1

	// CredentialModerator can manage catalog reference data and any tutorial.
	CredentialModerator Credential = 2

	// CredentialAdmin has unrestricted access, including account management.
	CredentialAdmin Credential = 5
)

// # Privilege Hierarchy

// Satisfies reports whether the credential meets or exceeds the required tier.
//
// Privilege is monotonic: an admin passes every check a moderator passes.
// Checks are numeric ordering, never per-tier equality, so adding a tier
// above an existing one can never lock it out of lower-tier operations.
func (c Credential) Satisfies(required Credential) bool {
	return c >= required
}

// IsValid reports whether the value is one of the known tiers.
func (c Credential) IsValid() bool {
	switch c {
	case CredentialUser, CredentialModerator, CredentialAdmin:
		return true
	}
	return false
}

// String returns the display name of the tier ("user", "moderator", "admin").
// It is purely presentational and must never be used for security decisions.
func (c Credential) String() string {
	switch c {
	case CredentialUser:
		return "user"
	case CredentialModerator:
		return "moderator"
	case CredentialAdmin:
		return "admin"
	}
	return fmt.Sprintf("credential(%d)", int(c))
}

// ParseCredential maps a display name back to its [Credential] tier.
func ParseCredential(name string) (Credential, error) {
	switch name {
	case "user":
		return CredentialUser, nil
	case "moderator":
		return CredentialModerator, nil
	case "admin":
		return CredentialAdmin, nil
	}
	return 0, fmt.Errorf("sec: unknown credential %q", name)
}
