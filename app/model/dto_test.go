package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func keysOf(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// The internal user record carries email, is_public, raw timestamps and
// icon_url; none of those may survive into a leaderboard entry under their
// internal names, and the key set is fixed by the allow-list.
func TestLeaderboardEntryAllowList(t *testing.T) {
	school := "SMK Taman Melawati"
	avatar := "https://cdn.example.com/avatar.png"
	icon := "https://cdn.example.com/badges/learn.png"

	user := &User{
		ID:        uuid.New(),
		Handle:    "teacher_01",
		Email:     "secret@example.com",
		Name:      "Aisyah",
		School:    &school,
		AvatarURL: &avatar,
		Role:      RoleParticipant,
		IsPublic:  true,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EarnedBadges: []EarnedBadge{
			{
				EarnedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				Badge:    Badge{Code: "LEARN_STAR", Name: "Learn Star", IconURL: &icon},
			},
		},
	}
	points := 95
	agg := &PointsAggregate{Sum: &PointsSum{Points: &points}}

	entry := ToLeaderboardEntryDTO(3, user, agg)
	assert.Equal(t, 3, entry.Rank)
	assert.Equal(t, 95, entry.User.TotalPoints)

	raw, err := json.Marshal(entry)
	assert.NoError(t, err)

	var top map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw, &top))
	assert.ElementsMatch(t, []string{"rank", "user"}, keysOf(top))

	var userKeys map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(top["user"], &userKeys))
	assert.ElementsMatch(t,
		[]string{"id", "handle", "name", "school", "avatarUrl", "earnedBadges", "totalPoints"},
		keysOf(userKeys))

	assert.NotContains(t, string(raw), "secret@example.com")
	assert.NotContains(t, string(raw), "is_public")
	assert.NotContains(t, string(raw), "icon_url")
	assert.Contains(t, string(raw), "iconUrl")
}

func TestLeaderboardNullAvatarBecomesAbsent(t *testing.T) {
	user := &User{
		ID:        uuid.New(),
		Handle:    "teacher_02",
		Name:      "Ben",
		AvatarURL: nil,
		CreatedAt: time.Now(),
	}

	entry := ToLeaderboardEntryDTO(1, user, nil)
	assert.Nil(t, entry.User.AvatarURL)
	assert.Equal(t, 0, entry.User.TotalPoints)
	// Present but empty, never null.
	assert.NotNil(t, entry.User.EarnedBadges)

	raw, err := json.Marshal(entry)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "avatarUrl")
	assert.Contains(t, string(raw), `"earnedBadges":[]`)
}

func TestExtractPointsDefaults(t *testing.T) {
	assert.Equal(t, 0, ExtractPoints(nil))
	assert.Equal(t, 0, ExtractPoints(&PointsAggregate{}))
	assert.Equal(t, 0, ExtractPoints(&PointsAggregate{Sum: &PointsSum{}}))
	assert.Equal(t, 0, ExtractPoints(&PointsAggregate{Sum: &PointsSum{Points: nil}}))

	points := 120
	assert.Equal(t, 120, ExtractPoints(&PointsAggregate{Sum: &PointsSum{Points: &points}}))
}

func TestUserProfileDTOTimestamps(t *testing.T) {
	created := time.Date(2024, 3, 15, 8, 30, 0, 0, time.FixedZone("MYT", 8*3600))
	user := &User{
		ID:        uuid.New(),
		Handle:    "teacher_03",
		Email:     "t3@example.com",
		Name:      "Chen",
		CreatedAt: created,
	}

	dto := ToUserProfileDTO(user)
	assert.Equal(t, "2024-03-15T00:30:00Z", dto.CreatedAt)

	parsed, err := time.Parse(time.RFC3339, dto.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(created))
}

func TestSubmissionDTOHidesInternalFields(t *testing.T) {
	reviewerID := uuid.New()
	note := "checked the attendance sheet personally"
	reason := "attendance proof unreadable"
	reviewedAt := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

	ref := &SubmissionRef{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		ActivityCode:    ActivityAmplify,
		Status:          StatusRejected,
		Visibility:      VisibilityPrivate,
		MongoPayloadID:  "65f0c0ffee0000000000aaaa",
		ReviewerID:      &reviewerID,
		ReviewNote:      &note,
		RejectionReason: &reason,
		CreatedAt:       time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC),
		ReviewedAt:      &reviewedAt,
	}
	env := &StorageEnvelope{
		ActivityCode: ActivityAmplify,
		Data: &AmplifyStoragePayload{
			PeersTrained:    intPtr(25),
			StudentsTrained: intPtr(150),
			SessionDate:     "2024-02-01",
		},
	}

	dto, err := ToSubmissionDTO(ref, env)
	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, dto.Status)
	assert.Equal(t, reason, *dto.RejectionReason)
	assert.Equal(t, "2024-02-10T12:00:00Z", *dto.ReviewedAt)

	// The payload flips back to the API naming convention.
	payload, ok := dto.Payload.(*AmplifyAPIPayload)
	assert.True(t, ok)
	assert.Equal(t, 25, *payload.PeersTrained)

	raw, err := json.Marshal(dto)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), reviewerID.String())
	assert.NotContains(t, string(raw), note)
	assert.NotContains(t, string(raw), "mongo")
	assert.Contains(t, string(raw), `"peersTrained":25`)
	assert.NotContains(t, string(raw), "peers_trained")
}

func TestSubmissionDTOFailsOnUnknownVariant(t *testing.T) {
	ref := &SubmissionRef{ID: uuid.New(), ActivityCode: ActivityCode("ROGUE")}
	env := &StorageEnvelope{ActivityCode: ActivityCode("ROGUE"), Data: rogueStoragePayload{}}

	dto, err := ToSubmissionDTO(ref, env)
	assert.Nil(t, dto)
	assert.ErrorIs(t, err, ErrUnknownActivityCode)
}

func TestAuditLogDTO(t *testing.T) {
	entry := &AuditLog{
		ActorID:     "abc",
		ActorHandle: "admin_01",
		Action:      "submission.approve",
		TargetKind:  "submission",
		TargetID:    "def",
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	dto := ToAuditLogDTO(entry)
	assert.Equal(t, "submission.approve", dto.Action)
	assert.Equal(t, "2024-05-01T10:00:00Z", dto.CreatedAt)
}
