// Copyright (c) 2026 Tutoria. All rights reserved.

/*
Package guard implements the authorization layer of the platform.

Every mutating endpoint passes through exactly one of the guard shapes below
before executing. The guard composes token verification, the credential
hierarchy, and fresh user/resource lookups; it never trusts a role or owner
id supplied by a client.

# Request State Machine

Each check walks Unauthenticated → TokenPresent → IdentityResolved →
{Authorized | Denied}. Authentication failures (the token cannot establish an
identity) propagate unchanged from the codec; authorization failures
(identity established, privilege lacking) surface as [sec.ErrAccessDenied];
a missing resource during an ownership check is a not-found condition and is
never converted into a denial.

# Concurrency

Guards hold no state beyond their injected dependencies. Checks for different
requests are independent: no locks, no retries, no side effects to roll back
when the enclosing request is cancelled mid-lookup.
*/
package guard

import (
	"context"
	"errors"

	"github.com/tutoria-app/tutoria/internal/platform/dberr"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
	"github.com/tutoria-app/tutoria/internal/users/auth"
)

// # Collaborator Contracts

// TokenDecoder verifies a session token and returns the identity it carries.
type TokenDecoder interface {
	Decode(token string) (*sec.Identity, error)
}

// UserDirectory is the user record lookup the guard re-derives privilege from.
// Satisfied by [auth.UserRepository].
type UserDirectory interface {
	FindByID(context context.Context, id int64) (*auth.User, error)
}

// OwnerDirectory resolves the owner of a guarded resource.
//
// Implementations return the storage layer's not-found error when the
// resource does not exist; the guard propagates that distinctly from a
// denial.
type OwnerDirectory interface {
	OwnerID(context context.Context, resourceID int64) (int64, error)
}

// Guard answers the three authorization questions: "is this the
// authenticated user?", "does this user hold at least this role?", and
// "does this user own or may edit this resource?".
type Guard struct {
	decoder TokenDecoder
	users   UserDirectory
}

// New constructs a [Guard] from its collaborators.
func New(decoder TokenDecoder, users UserDirectory) *Guard {
	return &Guard{
		decoder: decoder,
		users:   users,
	}
}

// # Guard Operations

/*
RequireRole authorizes the token holder if their stored credential meets or
exceeds the required tier.

Flow:
 1. Decode the token. An absent token is [sec.ErrTokenNotFound]; other
    authentication failures ([sec.ErrTokenExpired], [sec.ErrTokenInvalid])
    propagate unchanged from the decoder.
 2. Look up the user record by the identity's id AND confirm the stored name
    matches the token subject. A token whose subject was renamed after
    issuance is stale and must not be honored.
 3. A missing or deactivated record fails closed with [sec.ErrAccessDenied]
    regardless of the stored credential.
 4. The credential comparison is numeric ordering: an admin passes every
    check a moderator passes.

Returns the re-validated user record on success so callers can reuse it
without a second lookup.
*/
func (guard *Guard) RequireRole(context context.Context, token string, required sec.Credential) (*auth.User, error) {
	user, err := guard.resolveActiveUser(context, token)
	if err != nil {
		return nil, err
	}

	if !user.Credential.Satisfies(required) {
		return nil, sec.ErrAccessDenied
	}

	return user, nil
}

/*
RequireSelf reports whether the token's identity matches the target user id.

Self-access needs no elevated privilege and no record lookup — only an
identity match against a verified token.
*/
func (guard *Guard) RequireSelf(token string, targetUserID int64) bool {
	identity, err := guard.decoder.Decode(token)
	if err != nil {
		return false
	}
	return identity.ID == targetUserID
}

/*
RequireSelfOrRole authorizes the token holder if they are the target user OR
hold at least the required role.

The OR is short-circuit with the self check first, since it needs no database
lookup. A failed self check never vetoes a passing role check.
*/
func (guard *Guard) RequireSelfOrRole(context context.Context, token string, targetUserID int64, required sec.Credential) (*sec.Identity, error) {
	if token == "" {
		return nil, sec.ErrTokenNotFound
	}

	identity, err := guard.decoder.Decode(token)
	if err != nil {
		return nil, err
	}

	if identity.ID == targetUserID {
		return identity, nil
	}

	if _, err := guard.RequireRole(context, token, required); err != nil {
		return nil, err
	}
	return identity, nil
}

/*
RequireOwnerOrRole authorizes the token holder if they own the resource OR
hold at least the required role (typically moderator, granting moderators and
admins edit rights over any resource).

A resource that does not exist surfaces as the owner lookup's not-found
error, untouched: a missing resource is not a privilege question.

Returns the resource id on success.
*/
func (guard *Guard) RequireOwnerOrRole(context context.Context, token string, resourceID int64, required sec.Credential, owners OwnerDirectory) (int64, error) {
	user, err := guard.resolveActiveUser(context, token)
	if err != nil {
		return 0, err
	}

	ownerID, err := owners.OwnerID(context, resourceID)
	if err != nil {
		return 0, err
	}

	if user.ID == ownerID || user.Credential.Satisfies(required) {
		return resourceID, nil
	}

	return 0, sec.ErrAccessDenied
}

/*
CanEditResource is the negative-result twin of [Guard.RequireOwnerOrRole],
used for read-only UI-affordance decisions ("should this visitor see an edit
button?").

Every failure — missing token, expired token, missing resource, insufficient
privilege — yields false instead of an error, so a page can render its
non-editor view rather than fail the whole load.
*/
func (guard *Guard) CanEditResource(context context.Context, token string, resourceID int64, required sec.Credential, owners OwnerDirectory) bool {
	if token == "" {
		return false
	}
	_, err := guard.RequireOwnerOrRole(context, token, resourceID, required, owners)
	return err == nil
}

// # Internals

// resolveActiveUser decodes the token and re-validates the identity against
// a fresh user record: the record must exist, carry the same name as the
// token subject, and be active.
//
// An absent token is a distinct authentication failure from a tampered one
// and is classified before decoding.
func (guard *Guard) resolveActiveUser(context context.Context, token string) (*auth.User, error) {
	if token == "" {
		return nil, sec.ErrTokenNotFound
	}

	identity, err := guard.decoder.Decode(token)
	if err != nil {
		return nil, err
	}

	user, err := guard.users.FindByID(context, identity.ID)
	if err != nil {
		// A dangling identity fails closed; infrastructure errors propagate.
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, sec.ErrAccessDenied
		}
		return nil, err
	}

	if user.Name != identity.Name || !user.IsActive {
		return nil, sec.ErrAccessDenied
	}

	return user, nil
}
