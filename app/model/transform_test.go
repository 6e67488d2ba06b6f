package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func sampleAPIPayloads() map[ActivityCode]APIPayload {
	return map[ActivityCode]APIPayload{
		ActivityLearn: &LearnAPIPayload{
			Provider:       "COURSERA",
			CourseName:     "Intro to AI",
			CertificateURL: strPtr("https://coursera.org/cert/abc"),
			CompletedAt:    "2024-01-15T10:00:00Z",
		},
		ActivityExplore: &ExploreAPIPayload{
			Reflection:    "a reflection long enough for the schema in real traffic",
			ClassDate:     "2024-02-01",
			SchoolName:    strPtr("SMK Taman Melawati"),
			EvidenceFiles: []string{"evidence/class-photo.jpg"},
		},
		ActivityAmplify: &AmplifyAPIPayload{
			PeersTrained:         intPtr(25),
			StudentsTrained:      intPtr(150),
			AttendanceProofFiles: []string{},
			SessionDate:          "2024-02-01",
			SessionStartTime:     strPtr("14:00"),
			DurationMinutes:      intPtr(90),
			Location:             strPtr("School hall"),
			SessionTitle:         strPtr("AI for everyone"),
			CoFacilitators:       []string{"handle-two"},
			Notes:                strPtr("went well"),
		},
		ActivityPresent: &PresentAPIPayload{
			LinkedinURL:   "https://www.linkedin.com/posts/abc123",
			ScreenshotURL: strPtr("https://cdn.example.com/shot.png"),
			Caption:       "sharing my LEAPS journey",
		},
		ActivityShine: &ShineAPIPayload{
			IdeaTitle:   "Solar powered study lamps",
			IdeaSummary: "a summary of the idea that comfortably clears fifty characters",
			Attachments: nil,
		},
	}
}

// toStorage(toAPI(toStorage(p))) must equal toStorage(p) for every activity
// code, and the API-side round trip must reproduce the original payload.
func TestRoundTripAllActivities(t *testing.T) {
	for code, payload := range sampleAPIPayloads() {
		apiEnv := &APIEnvelope{ActivityCode: code, Data: payload}

		storageEnv, err := ToStorageEnvelope(apiEnv)
		assert.NoError(t, err)
		assert.Equal(t, code, storageEnv.ActivityCode)

		backEnv, err := ToAPIEnvelope(storageEnv)
		assert.NoError(t, err)
		assert.Equal(t, payload, backEnv.Data, "API round trip changed payload for %s", code)

		againEnv, err := ToStorageEnvelope(backEnv)
		assert.NoError(t, err)
		assert.Equal(t, storageEnv.Data, againEnv.Data, "storage round trip changed payload for %s", code)
	}
}

func TestRoundTripPreservesAbsentOptionals(t *testing.T) {
	payload := &AmplifyAPIPayload{
		PeersTrained:    intPtr(3),
		StudentsTrained: intPtr(10),
		SessionDate:     "2024-02-01",
	}
	stored := AmplifyToStorage(payload)
	back := AmplifyToAPI(stored)

	assert.Nil(t, back.Location)
	assert.Nil(t, back.Notes)
	assert.Nil(t, back.AttendanceProofFiles)
	assert.Nil(t, back.CoFacilitators)
	assert.Equal(t, payload, back)
}

func TestRoundTripPreservesEmptySlices(t *testing.T) {
	payload := &ExploreAPIPayload{
		Reflection:    "reflection text",
		ClassDate:     "2024-02-01",
		EvidenceFiles: []string{},
	}
	back := ExploreToAPI(ExploreToStorage(payload))

	// Empty stays empty; it must not collapse to absent.
	assert.NotNil(t, back.EvidenceFiles)
	assert.Len(t, back.EvidenceFiles, 0)

	absent := &ExploreAPIPayload{
		Reflection: "reflection text",
		ClassDate:  "2024-02-01",
	}
	back = ExploreToAPI(ExploreToStorage(absent))
	assert.Nil(t, back.EvidenceFiles)
}

type rogueAPIPayload struct{}

func (rogueAPIPayload) Activity() ActivityCode { return ActivityCode("ROGUE") }

type rogueStoragePayload struct{}

func (rogueStoragePayload) Activity() ActivityCode { return ActivityCode("ROGUE") }

// A payload variant the dispatcher does not know means validation was
// bypassed; that is a contract violation, not bad input.
func TestDispatcherFailsHardOnUnknownVariant(t *testing.T) {
	env := &APIEnvelope{ActivityCode: ActivityCode("ROGUE"), Data: rogueAPIPayload{}}
	storageEnv, err := ToStorageEnvelope(env)
	assert.Nil(t, storageEnv)
	assert.ErrorIs(t, err, ErrUnknownActivityCode)
	assert.False(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "ROGUE")

	back, err := ToAPIEnvelope(&StorageEnvelope{ActivityCode: ActivityCode("ROGUE"), Data: rogueStoragePayload{}})
	assert.Nil(t, back)
	assert.ErrorIs(t, err, ErrUnknownActivityCode)
}

func TestTransformFieldMappings(t *testing.T) {
	learn := &LearnAPIPayload{
		Provider:    "UDEMY",
		CourseName:  "Go for educators",
		CompletedAt: "2024-03-01T09:00:00Z",
	}
	stored := LearnToStorage(learn)
	assert.Equal(t, learn.Provider, stored.Provider)
	assert.Equal(t, learn.CourseName, stored.CourseName)
	assert.Equal(t, learn.CompletedAt, stored.CompletedAt)
	assert.Nil(t, stored.CertificateURL)

	present := &PresentStoragePayload{
		LinkedinURL: "https://www.linkedin.com/posts/xyz",
		Caption:     "a long enough caption",
	}
	api := PresentToAPI(present)
	assert.Equal(t, present.LinkedinURL, api.LinkedinURL)
	assert.Equal(t, present.Caption, api.Caption)
	assert.Nil(t, api.ScreenshotURL)
}
