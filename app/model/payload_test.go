package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAmplifyAPIBody() []byte {
	return []byte(`{
		"activityCode": "AMPLIFY",
		"data": {"peersTrained": 25, "studentsTrained": 150, "sessionDate": "2024-02-01"}
	}`)
}

func TestParseAPIEnvelopeAmplify(t *testing.T) {
	env, err := ParseAPIEnvelope(validAmplifyAPIBody())
	assert.NoError(t, err)
	assert.Equal(t, ActivityAmplify, env.ActivityCode)

	payload, ok := env.Data.(*AmplifyAPIPayload)
	assert.True(t, ok)
	assert.Equal(t, 25, *payload.PeersTrained)
	assert.Equal(t, 150, *payload.StudentsTrained)
	assert.Equal(t, "2024-02-01", payload.SessionDate)
	assert.Nil(t, payload.Location)
}

func TestParseAPIEnvelopeRejectsStorageConvention(t *testing.T) {
	body := []byte(`{
		"activityCode": "AMPLIFY",
		"data": {"peers_trained": 25, "students_trained": 150, "session_date": "2024-02-01"}
	}`)
	env, err := ParseAPIEnvelope(body)
	assert.Nil(t, env)
	assert.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestParseStorageEnvelopeRejectsAPIConvention(t *testing.T) {
	body := []byte(`{
		"activityCode": "AMPLIFY",
		"data": {"peersTrained": 25, "studentsTrained": 150}
	}`)
	env, err := ParseStorageEnvelope(body)
	assert.Nil(t, env)
	assert.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCrossConventionRejectionAllActivities(t *testing.T) {
	apiBodies := map[ActivityCode]string{
		ActivityLearn:   `{"provider": "COURSERA", "courseName": "Intro to AI", "completedAt": "2024-01-15T10:00:00Z"}`,
		ActivityExplore: `{"reflection": "` + strings.Repeat("r", 150) + `", "classDate": "2024-02-01"}`,
		ActivityAmplify: `{"peersTrained": 5, "studentsTrained": 20, "sessionDate": "2024-02-01"}`,
		ActivityPresent: `{"linkedinUrl": "https://www.linkedin.com/posts/x", "caption": "sharing my LEAPS journey"}`,
		ActivityShine:   `{"ideaTitle": "Solar club", "ideaSummary": "` + strings.Repeat("s", 50) + `"}`,
	}
	storageBodies := map[ActivityCode]string{
		ActivityLearn:   `{"provider": "COURSERA", "course_name": "Intro to AI", "completed_at": "2024-01-15T10:00:00Z"}`,
		ActivityExplore: `{"reflection": "` + strings.Repeat("r", 150) + `", "class_date": "2024-02-01"}`,
		ActivityAmplify: `{"peers_trained": 5, "students_trained": 20, "session_date": "2024-02-01"}`,
		ActivityPresent: `{"linkedin_url": "https://www.linkedin.com/posts/x", "caption": "sharing my LEAPS journey"}`,
		ActivityShine:   `{"idea_title": "Solar club", "idea_summary": "` + strings.Repeat("s", 50) + `"}`,
	}

	for code, body := range apiBodies {
		_, err := ParseAPIPayload(code, json.RawMessage(body))
		assert.NoError(t, err, "API shape should accept API body for %s", code)

		_, err = ParseStoragePayload(code, json.RawMessage(body))
		assert.Error(t, err, "storage shape should reject API body for %s", code)
	}
	for code, body := range storageBodies {
		_, err := ParseStoragePayload(code, json.RawMessage(body))
		assert.NoError(t, err, "storage shape should accept storage body for %s", code)

		_, err = ParseAPIPayload(code, json.RawMessage(body))
		assert.Error(t, err, "API shape should reject storage body for %s", code)
	}
}

func TestAmplifyRangeEnforcement(t *testing.T) {
	over := []byte(`{
		"activityCode": "AMPLIFY",
		"data": {"peersTrained": 100, "studentsTrained": 150, "sessionDate": "2024-02-01"}
	}`)
	_, err := ParseAPIEnvelope(over)
	assert.Error(t, err)

	over = []byte(`{
		"activityCode": "AMPLIFY",
		"data": {"peersTrained": 25, "studentsTrained": 300, "sessionDate": "2024-02-01"}
	}`)
	_, err = ParseAPIEnvelope(over)
	assert.Error(t, err)

	_, err = ParseAPIEnvelope(validAmplifyAPIBody())
	assert.NoError(t, err)

	// Zero counts are legitimate values, not missing fields.
	zero := []byte(`{
		"activityCode": "AMPLIFY",
		"data": {"peersTrained": 0, "studentsTrained": 0, "sessionDate": "2024-02-01"}
	}`)
	env, err := ParseAPIEnvelope(zero)
	assert.NoError(t, err)
	assert.Equal(t, 0, *env.Data.(*AmplifyAPIPayload).PeersTrained)

	missing := []byte(`{
		"activityCode": "AMPLIFY",
		"data": {"studentsTrained": 20, "sessionDate": "2024-02-01"}
	}`)
	_, err = ParseAPIEnvelope(missing)
	assert.Error(t, err)
}

func TestExploreReflectionMinimumLength(t *testing.T) {
	short := []byte(`{
		"activityCode": "EXPLORE",
		"data": {"reflection": "too short", "classDate": "2024-02-01"}
	}`)
	_, err := ParseAPIEnvelope(short)
	assert.Error(t, err)

	long := []byte(`{
		"activityCode": "EXPLORE",
		"data": {"reflection": "` + strings.Repeat("a", 150) + `", "classDate": "2024-02-01"}
	}`)
	_, err = ParseAPIEnvelope(long)
	assert.NoError(t, err)
}

func TestLearnProviderAndCourseName(t *testing.T) {
	badProvider := []byte(`{
		"activityCode": "LEARN",
		"data": {"provider": "SKILLSHARE", "courseName": "AI Basics", "completedAt": "2024-01-15T10:00:00Z"}
	}`)
	_, err := ParseAPIEnvelope(badProvider)
	assert.Error(t, err)

	shortName := []byte(`{
		"activityCode": "LEARN",
		"data": {"provider": "COURSERA", "courseName": "A", "completedAt": "2024-01-15T10:00:00Z"}
	}`)
	_, err = ParseAPIEnvelope(shortName)
	assert.Error(t, err)
}

func TestPresentURLAndCaption(t *testing.T) {
	bareDomain := []byte(`{
		"activityCode": "PRESENT",
		"data": {"linkedinUrl": "linkedin.com/posts/abc", "caption": "sharing my LEAPS journey"}
	}`)
	_, err := ParseAPIEnvelope(bareDomain)
	assert.Error(t, err)

	shortCaption := []byte(`{
		"activityCode": "PRESENT",
		"data": {"linkedinUrl": "https://www.linkedin.com/posts/abc", "caption": "short"}
	}`)
	_, err = ParseAPIEnvelope(shortCaption)
	assert.Error(t, err)
}

func TestShineMinimumLengths(t *testing.T) {
	shortTitle := []byte(`{
		"activityCode": "SHINE",
		"data": {"ideaTitle": "abc", "ideaSummary": "` + strings.Repeat("s", 50) + `"}
	}`)
	_, err := ParseAPIEnvelope(shortTitle)
	assert.Error(t, err)

	shortSummary := []byte(`{
		"activityCode": "SHINE",
		"data": {"ideaTitle": "Solar club", "ideaSummary": "not fifty characters"}
	}`)
	_, err = ParseAPIEnvelope(shortSummary)
	assert.Error(t, err)
}

func TestUnknownActivityCodeRejectedByBothParsers(t *testing.T) {
	body := []byte(`{"activityCode": "INVALID", "data": {}}`)

	env, err := ParseAPIEnvelope(body)
	assert.Nil(t, env)
	assert.Error(t, err)
	assert.True(t, IsValidationError(err))

	storageEnv, err := ParseStorageEnvelope(body)
	assert.Nil(t, storageEnv)
	assert.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestParseAPIEnvelopeMissingData(t *testing.T) {
	_, err := ParseAPIEnvelope([]byte(`{"activityCode": "LEARN"}`))
	assert.Error(t, err)

	_, err = ParseAPIEnvelope([]byte(`{"activityCode": "LEARN", "data": null}`))
	assert.Error(t, err)

	_, err = ParseAPIEnvelope([]byte(`not json`))
	assert.Error(t, err)
}
