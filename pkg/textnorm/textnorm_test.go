// Copyright (c) 2026 Tutoria. All rights reserved.

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutoria-app/tutoria/pkg/textnorm"
)

/*
TestKey verifies accent stripping, case folding, and whitespace collapsing.
*/
func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"uppercase", "HELLO", "hello"},
		{"accents", "Héllo Wörld", "hello world"},
		{"whitespace_runs", "  hello   world  ", "hello world"},
		{"tabs_and_newlines", "hello\t\nworld", "hello world"},
		{"cyrillic", "Привет", "привет"},
		{"empty", "", ""},
		{"only_whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textnorm.Key(tt.input))
		})
	}
}

/*
TestKey_Idempotent verifies that folding an already folded key is a no-op.
*/
func TestKey_Idempotent(t *testing.T) {
	folded := textnorm.Key("Crème Brûlée  Recipe")
	assert.Equal(t, folded, textnorm.Key(folded))
	assert.Equal(t, "creme brulee recipe", folded)
}
