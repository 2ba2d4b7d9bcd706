// Copyright (c) 2026 Tutoria. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutoria-app/tutoria/internal/platform/ctxutil"
	"github.com/tutoria-app/tutoria/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Identity verifies that a decoded identity can be stored in context.
*/
func TestContext_Identity(t *testing.T) {
	ctx := context.Background()
	identity := &sec.Identity{ID: 42, Name: "John"}

	// 1. Initially should be nil (anonymous request)
	assert.Nil(t, ctxutil.GetIdentity(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithIdentity(ctx, identity)
	assert.Equal(t, identity, ctxutil.GetIdentity(ctx))
}

/*
TestContext_Token verifies that the raw session token travels with the
decoded identity.
*/
func TestContext_Token(t *testing.T) {
	ctx := context.Background()

	// 1. Initially should be empty (anonymous request)
	assert.Empty(t, ctxutil.GetToken(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithToken(ctx, "raw-token")
	assert.Equal(t, "raw-token", ctxutil.GetToken(ctx))
}
