// Copyright (c) 2026 Tutoria. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutoria-app/tutoria/internal/platform/apperr"
	"github.com/tutoria-app/tutoria/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Tutoria", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_URL checks the absolute http(s) URL rule used on source links.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		isValid bool
	}{
		{"https", "https://example.com/course", true},
		{"http", "http://example.com", true},
		{"missing_scheme", "example.com/course", false},
		{"ftp_scheme", "ftp://example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("source_link", tt.url)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Lengths checks Unicode-aware MinLen and MaxLen.
*/
func TestValidator_Lengths(t *testing.T) {
	v := &validate.Validator{}
	v.MinLen("password", "short", 10)
	assert.True(t, v.HasErrors())

	v = &validate.Validator{}
	// Multibyte characters count as single runes, not bytes.
	v.MaxLen("title", "héllo", 5).MinLen("title", "héllo", 5)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Positive checks the positive integer rule.
*/
func TestValidator_Positive(t *testing.T) {
	v := &validate.Validator{}
	v.Positive("lang_code", 1)
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.Positive("lang_code", 0).Positive("word_code", -5)
	require.True(t, v.HasErrors())

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
}

/*
TestValidator_Chaining verifies that multiple failures accumulate in order.
*/
func TestValidator_Chaining(t *testing.T) {
	v := &validate.Validator{}
	v.Required("name", "").
		Email("email", "nope").
		MinLen("password", "123", 10)

	err := v.Err()
	require.NotNil(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 3)
	assert.Equal(t, "name", ae.Details[0].Field)
	assert.Equal(t, "email", ae.Details[1].Field)
	assert.Equal(t, "password", ae.Details[2].Field)
}
