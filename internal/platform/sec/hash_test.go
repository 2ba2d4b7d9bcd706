// Copyright (c) 2026 Tutoria. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutoria-app/tutoria/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies that a hashed password verifies against
its original and nothing else.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("1234567890")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The plain text never appears inside the hash.
	assert.NotContains(t, hash, "1234567890")

	assert.True(t, sec.CheckPasswordHash("1234567890", hash))
	assert.False(t, sec.CheckPasswordHash("1234567891", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
}

/*
TestHashPassword_SaltedPerCall verifies that two hashes of the same password
differ but both verify.
*/
func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	second, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", first))
	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", second))
}

/*
TestCheckPasswordHash_MalformedHash verifies that a garbage hash is a
mismatch, never an error or a panic.
*/
func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	assert.False(t, sec.CheckPasswordHash("anything", ""))
}
