package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc.def.ghi")
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)

	// Scheme comparison is case-insensitive per RFC 7235.
	token, ok = BearerToken("bearer abc.def.ghi")
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)

	token, ok = BearerToken("  Bearer  abc.def.ghi  ")
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestBearerTokenRejectsMalformedHeaders(t *testing.T) {
	for _, header := range []string{
		"",
		"Bearer",
		"Bearer ",
		"Bearer   ",
		"abc.def.ghi",
		"Basic dXNlcjpwYXNz",
		"Bearerabc.def.ghi",
	} {
		token, ok := BearerToken(header)
		assert.False(t, ok, "header %q should be rejected", header)
		assert.Empty(t, token)
	}
}
