package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityCodeValid(t *testing.T) {
	for _, code := range ActivityCodes {
		assert.True(t, code.Valid(), "expected %s to be valid", code)
	}
	assert.False(t, ActivityCode("INVALID").Valid())
	assert.False(t, ActivityCode("learn").Valid())
	assert.False(t, ActivityCode("").Valid())
}

func TestParseActivityCode(t *testing.T) {
	code, err := ParseActivityCode("AMPLIFY")
	assert.NoError(t, err)
	assert.Equal(t, ActivityAmplify, code)

	_, err = ParseActivityCode("SPARKLE")
	assert.Error(t, err)
}

func TestActivityPointsCoverAllCodes(t *testing.T) {
	for _, code := range ActivityCodes {
		assert.Greater(t, ActivityPoints[code], 0, "no point value for %s", code)
	}
}

func TestSubmissionStatusValid(t *testing.T) {
	for _, status := range []SubmissionStatus{StatusPending, StatusApproved, StatusRejected, StatusRevoked} {
		assert.True(t, status.Valid())
	}
	assert.False(t, SubmissionStatus("DRAFT").Valid())
}

func TestValidateHandle(t *testing.T) {
	assert.NoError(t, ValidateHandle("abc"))
	assert.NoError(t, ValidateHandle("Teacher_01"))
	assert.NoError(t, ValidateHandle("some-handle-with-dashes"))

	cases := []string{
		"",
		"ab",
		"this-handle-is-way-too-long-to-be-accepted",
		"has space",
		"dot.dot",
		"émile",
	}
	for _, handle := range cases {
		err := ValidateHandle(handle)
		assert.Error(t, err, "expected %q to be rejected", handle)
		// Downstream consumers display this text; it must stay stable.
		assert.Equal(t, ErrInvalidHandle.Error(), err.Error())
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("teacher@school.edu.my"))
	assert.NoError(t, ValidateEmail("a.b@example.com"))

	for _, email := range []string{"", "no-at-sign", "double..dot@example.com", "@example.com", "user@"} {
		assert.Error(t, ValidateEmail(email), "expected %q to be rejected", email)
	}
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://www.linkedin.com/posts/abc123"))
	assert.NoError(t, ValidateURL("http://example.com"))

	for _, raw := range []string{"", "linkedin.com/posts/abc123", "www.example.com", "/relative/path"} {
		assert.Error(t, ValidateURL(raw), "expected %q to be rejected", raw)
	}
}

func TestValidatorsArePure(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, ErrInvalidHandle, ValidateHandle("!"))
		assert.NoError(t, ValidateHandle("abc"))
	}
}
